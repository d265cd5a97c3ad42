package dashui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/cargodash/cargodash/internal/agg"
	"github.com/cargodash/cargodash/internal/filter"
	"github.com/cargodash/cargodash/internal/model"
	"github.com/cargodash/cargodash/internal/state"
	"github.com/cargodash/cargodash/internal/widget"
)

// refresh recomputes the active widget's content from the store. Every
// widget's records run through the same pipeline: global filters first,
// then the widget's drill-down tag. Narrowing tags shrink the set before
// aggregation; bucketing tags pass through the drill step unchanged and
// only select the aggregation dimension.
func (m *Model) refresh() {
	w := m.active()
	if m.tabular() {
		columns, rows, actions := m.buildTabular(w)
		m.dataTable.SetColumns(columns)
		m.dataTable.SetRows(rows)
		m.rowActions = actions
		if cursor := m.dataTable.Cursor(); cursor >= len(rows) {
			m.dataTable.GotoTop()
		}
		return
	}
	m.viewport.SetContent(m.renderCards(w))
}

func (m *Model) buildTabular(w widget.Widget) ([]table.Column, []table.Row, []func(*state.Store) error) {
	switch w.ID {
	case widget.CarrierPerformance:
		return m.buildCarrierTable(w)
	case widget.RegionalDistribution:
		return m.buildRegionalTable(w)
	case widget.StatusOverview:
		return m.buildStatusTable(w)
	case widget.PriorityBreakdown:
		return m.buildPriorityTable(w)
	case widget.ShipmentVolume:
		return m.buildVolumeTable(w)
	case widget.CostAnalysis:
		return m.buildCostTable(w)
	case widget.DeliveryTime:
		return m.buildHistogramTable(w)
	case widget.WeightDistribution:
		return m.buildScatterTable(w)
	}
	return nil, nil, nil
}

func (m *Model) buildCarrierTable(w widget.Widget) ([]table.Column, []table.Row, []func(*state.Store) error) {
	columns := []table.Column{
		{Title: "Carrier", Width: 10},
		{Title: "Packages", Width: 9},
		{Title: "Deliveries", Width: 10},
		{Title: "Avg Cost", Width: 10},
		{Title: "On-Time %", Width: 9},
		{Title: "Avg Time", Width: 8},
	}
	perf := agg.CarrierPerformanceRows(m.st.FilteredFor(w), widget.CarrierGroupingFor(m.st.Grouping(w)))
	rows := make([]table.Row, 0, len(perf))
	actions := make([]func(*state.Store) error, 0, len(perf))
	for _, p := range perf {
		rows = append(rows, table.Row{
			p.Carrier,
			strconv.Itoa(p.TotalPackages),
			strconv.Itoa(p.DeliveryCount),
			"$" + p.AvgCost.StringFixed(2),
			fmt.Sprintf("%.1f", p.OnTimeRate),
			fmt.Sprintf("%.1fh", p.AvgDeliveryTime),
		})
		carrier := p.Carrier
		actions = append(actions, func(st *state.Store) error {
			st.ToggleCategory(filter.CategoryCarriers, carrier)
			return nil
		})
	}
	return columns, rows, actions
}

func (m *Model) buildRegionalTable(w widget.Widget) ([]table.Column, []table.Row, []func(*state.Store) error) {
	bucket := widget.GeoBucketFor(m.st.Grouping(w))
	columns := []table.Column{
		{Title: "Region", Width: 16},
		{Title: "Shipments", Width: 9},
		{Title: "Weight", Width: 9},
		{Title: "Distance", Width: 10},
		{Title: "Cost", Width: 12},
	}
	regional := agg.RegionalRows(m.st.FilteredFor(w), bucket, m.rnd)
	rows := make([]table.Row, 0, len(regional))
	actions := make([]func(*state.Store) error, 0, len(regional))
	for _, r := range regional {
		rows = append(rows, table.Row{
			r.Region,
			strconv.Itoa(r.TotalShipments),
			fmt.Sprintf("%.0fkg", r.TotalWeight),
			fmt.Sprintf("%.0fkm", r.TotalDistance),
			"$" + r.TotalCost.StringFixed(2),
		})
		// Country and city buckets are synthetic, so only the region
		// rollup supports click-to-filter.
		if bucket == agg.GeoRegion {
			region := r.Region
			actions = append(actions, func(st *state.Store) error {
				st.ToggleCategory(filter.CategoryRegions, region)
				return nil
			})
		} else {
			actions = append(actions, nil)
		}
	}
	return columns, rows, actions
}

func (m *Model) buildStatusTable(w widget.Widget) ([]table.Column, []table.Row, []func(*state.Store) error) {
	columns := []table.Column{
		{Title: "Status", Width: 18},
		{Title: "Packages", Width: 9},
		{Title: "Share", Width: 7},
		{Title: "", Width: 24},
	}
	slices := agg.StatusDistribution(m.st.FilteredFor(w))
	var max float64
	for _, s := range slices {
		if float64(s.Count) > max {
			max = float64(s.Count)
		}
	}
	rows := make([]table.Row, 0, len(slices))
	actions := make([]func(*state.Store) error, 0, len(slices))
	for _, s := range slices {
		rows = append(rows, table.Row{
			s.Status,
			strconv.Itoa(s.Count),
			fmt.Sprintf("%.1f%%", s.Percentage),
			textBar(float64(s.Count), max, 24),
		})
		status := s.Status
		actions = append(actions, func(st *state.Store) error {
			st.ToggleCategory(filter.CategoryStatuses, status)
			return nil
		})
	}
	return columns, rows, actions
}

func (m *Model) buildPriorityTable(w widget.Widget) ([]table.Column, []table.Row, []func(*state.Store) error) {
	columns := []table.Column{
		{Title: "Priority", Width: 10},
		{Title: "Shipments", Width: 9},
		{Title: "Share", Width: 7},
		{Title: "", Width: 24},
	}
	slices := agg.PriorityBreakdown(m.st.FilteredFor(w))
	var max float64
	for _, s := range slices {
		if float64(s.Count) > max {
			max = float64(s.Count)
		}
	}
	rows := make([]table.Row, 0, len(slices))
	actions := make([]func(*state.Store) error, 0, len(slices))
	for _, s := range slices {
		rows = append(rows, table.Row{
			s.Priority,
			strconv.Itoa(s.Count),
			fmt.Sprintf("%.1f%%", s.Percentage),
			textBar(float64(s.Count), max, 24),
		})
		priority := s.Priority
		actions = append(actions, func(st *state.Store) error {
			st.ToggleCategory(filter.CategoryPriorities, priority)
			return nil
		})
	}
	return columns, rows, actions
}

func (m *Model) buildVolumeTable(w widget.Widget) ([]table.Column, []table.Row, []func(*state.Store) error) {
	bucket := widget.TimeBucketFor(m.st.Grouping(w), agg.BucketDay)
	columns := []table.Column{
		{Title: "Period", Width: 12},
		{Title: "Shipments", Width: 9},
		{Title: "Packages", Width: 9},
		{Title: "", Width: 24},
	}
	points := agg.TimeSeries(m.st.FilteredFor(w), bucket)
	var max float64
	for _, p := range points {
		if float64(p.Packages) > max {
			max = float64(p.Packages)
		}
	}
	rows := make([]table.Row, 0, len(points))
	actions := make([]func(*state.Store) error, 0, len(points))
	for _, p := range points {
		rows = append(rows, table.Row{
			p.Date,
			strconv.Itoa(p.Shipments),
			strconv.Itoa(p.Packages),
			textBar(float64(p.Packages), max, 24),
		})
		actions = append(actions, spanAction(bucket, p.Date))
	}
	return columns, rows, actions
}

func (m *Model) buildCostTable(w widget.Widget) ([]table.Column, []table.Row, []func(*state.Store) error) {
	bucket := widget.TimeBucketFor(m.st.Grouping(w), agg.BucketDay)
	columns := []table.Column{
		{Title: "Period", Width: 12},
		{Title: "Shipments", Width: 9},
		{Title: "Total Cost", Width: 12},
		{Title: "Avg Cost", Width: 10},
	}
	points := agg.CostAnalysis(m.st.FilteredFor(w), bucket)
	rows := make([]table.Row, 0, len(points))
	actions := make([]func(*state.Store) error, 0, len(points))
	for _, p := range points {
		rows = append(rows, table.Row{
			p.Date,
			strconv.Itoa(p.Count),
			"$" + p.TotalCost.StringFixed(2),
			"$" + p.AvgCost.StringFixed(2),
		})
		actions = append(actions, spanAction(bucket, p.Date))
	}
	return columns, rows, actions
}

// spanAction narrows the date range to the clicked bucket. Quarter and year
// buckets have no span mapping and stay inert.
func spanAction(bucket agg.TimeBucket, key string) func(*state.Store) error {
	start, end, ok := agg.BucketSpan(bucket, key)
	if !ok {
		return nil
	}
	return func(st *state.Store) error {
		return st.SetDateRange(start, end)
	}
}

func (m *Model) buildHistogramTable(w widget.Widget) ([]table.Column, []table.Row, []func(*state.Store) error) {
	mode := widget.HistogramModeFor(m.st.Grouping(w))
	columns := []table.Column{
		{Title: "Bucket", Width: 24},
		{Title: "Count", Width: 6},
		{Title: "", Width: 24},
	}
	bins := agg.DeliveryTimeHistogram(m.st.FilteredFor(w), mode)
	var max float64
	for _, b := range bins {
		if float64(b.Count) > max {
			max = float64(b.Count)
		}
	}
	rows := make([]table.Row, 0, len(bins))
	actions := make([]func(*state.Store) error, 0, len(bins))
	for _, b := range bins {
		rows = append(rows, table.Row{
			b.Range,
			strconv.Itoa(b.Count),
			textBar(float64(b.Count), max, 24),
		})
		actions = append(actions, nil)
	}
	return columns, rows, actions
}

func (m *Model) buildScatterTable(w widget.Widget) ([]table.Column, []table.Row, []func(*state.Store) error) {
	mode := widget.ScatterModeFor(m.st.Grouping(w))
	var columns []table.Column
	switch mode {
	case agg.ScatterPackageCost:
		columns = []table.Column{
			{Title: "Packages", Width: 10},
			{Title: "Cost ($)", Width: 10},
			{Title: "Weight (kg)", Width: 11},
		}
	case agg.ScatterDistanceWeight:
		columns = []table.Column{
			{Title: "Distance (km)", Width: 13},
			{Title: "Weight (kg)", Width: 11},
			{Title: "Cost ($)", Width: 10},
		}
	default:
		columns = []table.Column{
			{Title: "Weight (kg)", Width: 11},
			{Title: "Cost ($)", Width: 10},
			{Title: "Packages", Width: 10},
		}
	}
	points := agg.ScatterPoints(m.st.FilteredFor(w), mode)
	rows := make([]table.Row, 0, len(points))
	actions := make([]func(*state.Store) error, 0, len(points))
	for _, p := range points {
		rows = append(rows, table.Row{
			fmt.Sprintf("%.1f", p.Weight),
			fmt.Sprintf("%.1f", p.Cost),
			fmt.Sprintf("%.1f", p.Packages),
		})
		point := p
		actions = append(actions, func(st *state.Store) error {
			kind, r := agg.ScatterRangeCommand(mode, point)
			return st.SetRange(kind, r)
		})
	}
	return columns, rows, actions
}

// renderCards builds the stat-card body for the non-tabular widgets.
func (m *Model) renderCards(w widget.Widget) string {
	records := m.st.FilteredFor(w)
	if len(records) == 0 {
		return "No shipments match the active filters."
	}
	var cards []string
	switch w.ID {
	case widget.PerformanceMetrics:
		cards = performanceCards(records)
	case widget.LiveStats:
		cards = liveStatsCards(records)
	case widget.HighPriority:
		cards = highPriorityCards(records)
	case widget.Capacity:
		cards = capacityCards(records)
	}
	return joinCards(cards, m.width)
}

func performanceCards(records []model.Record) []string {
	onTime := 0
	var totalTime float64
	totalCost := decimal.Zero
	for _, r := range records {
		if model.OnTime(r) {
			onTime++
		}
		totalTime += r.DeliveryTime
		totalCost = totalCost.Add(decimal.NewFromFloat(r.Cost))
	}
	count := float64(len(records))
	avgCost := totalCost.Div(decimal.NewFromInt(int64(len(records)))).Round(2)
	return []string{
		metricCard("Shipments", strconv.Itoa(len(records))),
		metricCard("On-Time", fmt.Sprintf("%.1f%%", float64(onTime)/count*100)),
		metricCard("Avg Delivery", fmt.Sprintf("%.1fh", totalTime/count)),
		metricCard("Avg Cost", "$"+avgCost.StringFixed(2)),
	}
}

func liveStatsCards(records []model.Record) []string {
	packages := 0
	inTransit := 0
	delayed := 0
	for _, r := range records {
		packages += r.PackageCount
		if r.Status == model.StatusInTransit {
			inTransit++
		}
		if r.Status == model.StatusDelayed {
			delayed++
		}
	}
	return []string{
		metricCard("Shipments", strconv.Itoa(len(records))),
		metricCard("Packages", strconv.Itoa(packages)),
		metricCard("In Transit", strconv.Itoa(inTransit)),
		metricCard("Delayed", strconv.Itoa(delayed)),
	}
}

func highPriorityCards(records []model.Record) []string {
	high := 0
	delayed := 0
	exceptions := 0
	pending := 0
	for _, r := range records {
		if r.Priority != model.PriorityHigh {
			continue
		}
		high++
		switch r.Status {
		case model.StatusDelayed:
			delayed++
		case model.StatusException:
			exceptions++
		case model.StatusPending:
			pending++
		}
	}
	return []string{
		metricCard("High Priority", strconv.Itoa(high)),
		metricCard("Delayed", strconv.Itoa(delayed)),
		metricCard("Exceptions", strconv.Itoa(exceptions)),
		metricCard("Pending", strconv.Itoa(pending)),
	}
}

// maxShipmentWeight is the generator's weight ceiling, used as the per-
// shipment capacity baseline.
const maxShipmentWeight = 50.0

func capacityCards(records []model.Record) []string {
	packages := 0
	var weight float64
	for _, r := range records {
		packages += r.PackageCount
		weight += r.Weight
	}
	count := float64(len(records))
	utilization := weight / (count * maxShipmentWeight) * 100
	return []string{
		metricCard("Packages", strconv.Itoa(packages)),
		metricCard("Total Weight", fmt.Sprintf("%.0fkg", weight)),
		metricCard("Avg Load", fmt.Sprintf("%.1fkg", weight/count)),
		metricCard("Utilization", fmt.Sprintf("%.1f%%", utilization)),
	}
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

func joinCards(cards []string, width int) string {
	if len(cards) == 0 {
		return ""
	}
	if width < 80 {
		return strings.Join(cards, "\n")
	}
	half := (len(cards) + 1) / 2
	row1 := lipgloss.JoinHorizontal(lipgloss.Top, cards[:half]...)
	row2 := lipgloss.JoinHorizontal(lipgloss.Top, cards[half:]...)
	return lipgloss.JoinVertical(lipgloss.Left, row1, row2)
}

func textBar(value, max float64, width int) string {
	if max <= 0 || width <= 0 {
		return ""
	}
	cells := int(value / max * float64(width))
	if cells > width {
		cells = width
	}
	if cells < 1 && value > 0 {
		cells = 1
	}
	return strings.Repeat("█", cells)
}
