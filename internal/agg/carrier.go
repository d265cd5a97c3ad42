// Package agg turns filtered record sets into chart-ready series.
package agg

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/cargodash/cargodash/internal/model"
)

// CarrierGrouping selects the carrier-performance row filter.
type CarrierGrouping int

const (
	// CarrierAll keeps every carrier present in the filtered set.
	CarrierAll CarrierGrouping = iota
	// CarrierTop3 keeps the three carriers with the most package volume,
	// ties broken by first-encountered order.
	CarrierTop3
	// CarrierReliable keeps carriers with an on-time rate above 80%.
	CarrierReliable
)

// CarrierPerformance is one output row per carrier present in the set.
type CarrierPerformance struct {
	Carrier         string
	TotalPackages   int
	DeliveredOnTime int
	DeliveryCount   int
	TotalCost       decimal.Decimal
	AvgCost         decimal.Decimal // per package, 2 decimals
	OnTimeRate      float64         // percent of package volume, 1 decimal
	AvgDeliveryTime float64         // hours, 1 decimal
}

// CarrierPerformanceRows aggregates per-carrier package volume, on-time
// rate, and cost. On-time volume counts whole-record package counts for
// records delivered within 48 hours.
func CarrierPerformanceRows(records []model.Record, grouping CarrierGrouping) []CarrierPerformance {
	type tally struct {
		packages     int
		onTime       int
		cost         decimal.Decimal
		deliveryTime float64
		count        int
	}
	perCarrier := map[string]*tally{}
	order := []string{}
	for _, r := range records {
		t := perCarrier[r.Carrier]
		if t == nil {
			t = &tally{}
			perCarrier[r.Carrier] = t
			order = append(order, r.Carrier)
		}
		t.packages += r.PackageCount
		t.cost = t.cost.Add(decimal.NewFromFloat(r.Cost))
		t.deliveryTime += r.DeliveryTime
		t.count++
		if model.OnTime(r) {
			t.onTime += r.PackageCount
		}
	}

	rows := make([]CarrierPerformance, 0, len(order))
	for _, carrier := range order {
		t := perCarrier[carrier]
		row := CarrierPerformance{
			Carrier:         carrier,
			TotalPackages:   t.packages,
			DeliveredOnTime: t.onTime,
			DeliveryCount:   t.count,
			TotalCost:       t.cost,
			AvgCost:         decimal.Zero,
		}
		if t.packages > 0 {
			row.OnTimeRate = round1(float64(t.onTime) / float64(t.packages) * 100)
			row.AvgCost = t.cost.Div(decimal.NewFromInt(int64(t.packages))).Round(2)
		}
		if t.count > 0 {
			row.AvgDeliveryTime = round1(t.deliveryTime / float64(t.count))
		}
		rows = append(rows, row)
	}

	switch grouping {
	case CarrierTop3:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].TotalPackages > rows[j].TotalPackages
		})
		if len(rows) > 3 {
			rows = rows[:3]
		}
	case CarrierReliable:
		filtered := rows[:0]
		for _, row := range rows {
			if row.OnTimeRate > 80 {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}
	return rows
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
