package report

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/cargodash/cargodash/internal/agg"
	"github.com/cargodash/cargodash/internal/model"
)

// RenderSummary writes the headline stat cards for the filtered set.
func RenderSummary(w io.Writer, records []model.Record) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No shipments match the active filters.")
		return err
	}
	totalPackages := 0
	totalCost := decimal.Zero
	var totalTime float64
	onTime := 0
	for _, r := range records {
		totalPackages += r.PackageCount
		totalCost = totalCost.Add(decimal.NewFromFloat(r.Cost))
		totalTime += r.DeliveryTime
		if model.OnTime(r) {
			onTime++
		}
	}
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Shipments: %d\n", len(records)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Packages: %d\n", totalPackages); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Total Cost: $%s\n", totalCost.StringFixed(2)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg Delivery Time: %.1fh\n", totalTime/float64(len(records))); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "On-Time Rate: %.1f%%\n", float64(onTime)/float64(len(records))*100); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderCarrierTable writes the per-carrier performance table.
func RenderCarrierTable(w io.Writer, records []model.Record, grouping agg.CarrierGrouping) error {
	rows := agg.CarrierPerformanceRows(records, grouping)
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No carrier data.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Carrier Performance"); err != nil {
		return err
	}
	headers := []string{"Carrier", "Packages", "Avg Cost", "On-Time %", "Avg Time"}
	table := make([][]string, 0, len(rows))
	for _, row := range rows {
		table = append(table, []string{
			row.Carrier,
			strconv.Itoa(row.TotalPackages),
			"$" + row.AvgCost.StringFixed(2),
			fmt.Sprintf("%.1f", row.OnTimeRate),
			fmt.Sprintf("%.1fh", row.AvgDeliveryTime),
		})
	}
	return writeLines(w, formatTable(headers, table, map[int]bool{1: true, 2: true, 3: true, 4: true}))
}

// RenderRegionalTable writes the geographic rollup table.
func RenderRegionalTable(w io.Writer, records []model.Record, bucket agg.GeoBucket, rnd *rand.Rand) error {
	rows := agg.RegionalRows(records, bucket, rnd)
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No regional data.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Regional Distribution"); err != nil {
		return err
	}
	headers := []string{"Region", "Shipments", "Weight", "Distance", "Cost"}
	table := make([][]string, 0, len(rows))
	for _, row := range rows {
		table = append(table, []string{
			row.Region,
			strconv.Itoa(row.TotalShipments),
			fmt.Sprintf("%.0fkg", row.TotalWeight),
			fmt.Sprintf("%.0fkm", row.TotalDistance),
			"$" + row.TotalCost.StringFixed(2),
		})
	}
	return writeLines(w, formatTable(headers, table, map[int]bool{1: true, 2: true, 3: true, 4: true}))
}

// RenderStatusTable writes the package-volume status distribution with
// proportional bars.
func RenderStatusTable(w io.Writer, records []model.Record, barWidth int) error {
	slices := agg.StatusDistribution(records)
	if len(slices) == 0 {
		_, err := fmt.Fprintln(w, "No status data.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Status Overview"); err != nil {
		return err
	}
	var max float64
	for _, s := range slices {
		if float64(s.Count) > max {
			max = float64(s.Count)
		}
	}
	headers := []string{"Status", "Packages", "Share", ""}
	table := make([][]string, 0, len(slices))
	for _, s := range slices {
		table = append(table, []string{
			s.Status,
			strconv.Itoa(s.Count),
			fmt.Sprintf("%.1f%%", s.Percentage),
			bar(float64(s.Count), max, barWidth),
		})
	}
	return writeLines(w, formatTable(headers, table, map[int]bool{1: true, 2: true}))
}

// RenderVolumeSeries writes the shipment-volume trend per time bucket.
func RenderVolumeSeries(w io.Writer, records []model.Record, bucket agg.TimeBucket, barWidth int) error {
	points := agg.TimeSeries(records, bucket)
	if len(points) == 0 {
		_, err := fmt.Fprintln(w, "No volume data.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Shipment Volume"); err != nil {
		return err
	}
	var max float64
	for _, p := range points {
		if float64(p.Packages) > max {
			max = float64(p.Packages)
		}
	}
	headers := []string{"Period", "Shipments", "Packages", ""}
	table := make([][]string, 0, len(points))
	for _, p := range points {
		table = append(table, []string{
			p.Date,
			strconv.Itoa(p.Shipments),
			strconv.Itoa(p.Packages),
			bar(float64(p.Packages), max, barWidth),
		})
	}
	return writeLines(w, formatTable(headers, table, map[int]bool{1: true, 2: true}))
}

// RenderCostTable writes the cost-analysis buckets.
func RenderCostTable(w io.Writer, records []model.Record, bucket agg.TimeBucket) error {
	points := agg.CostAnalysis(records, bucket)
	if len(points) == 0 {
		_, err := fmt.Fprintln(w, "No cost data.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Cost Analysis"); err != nil {
		return err
	}
	headers := []string{"Period", "Shipments", "Total Cost", "Avg Cost"}
	table := make([][]string, 0, len(points))
	for _, p := range points {
		table = append(table, []string{
			p.Date,
			strconv.Itoa(p.Count),
			"$" + p.TotalCost.StringFixed(2),
			"$" + p.AvgCost.StringFixed(2),
		})
	}
	return writeLines(w, formatTable(headers, table, map[int]bool{1: true, 2: true, 3: true}))
}

// RenderHistogram writes the delivery-time histogram for the given mode.
func RenderHistogram(w io.Writer, records []model.Record, mode agg.HistogramMode, barWidth int) error {
	bins := agg.DeliveryTimeHistogram(records, mode)
	if _, err := fmt.Fprintln(w, "Delivery Time"); err != nil {
		return err
	}
	var max float64
	for _, b := range bins {
		if float64(b.Count) > max {
			max = float64(b.Count)
		}
	}
	headers := []string{"Bucket", "Count", ""}
	table := make([][]string, 0, len(bins))
	for _, b := range bins {
		table = append(table, []string{
			b.Range,
			strconv.Itoa(b.Count),
			bar(float64(b.Count), max, barWidth),
		})
	}
	return writeLines(w, formatTable(headers, table, map[int]bool{1: true}))
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}
