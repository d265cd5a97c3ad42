package agg

import "github.com/cargodash/cargodash/internal/model"

// HistogramMode selects the fixed bucket edges for delivery-time analysis.
type HistogramMode int

const (
	// HistogramDefault buckets delivery time into 24-hour blocks.
	HistogramDefault HistogramMode = iota
	// HistogramHours buckets sub-day deliveries into 6-hour blocks;
	// deliveries over 24h fall outside every bin.
	HistogramHours
	// HistogramDays buckets by delivery time in days.
	HistogramDays
	// HistogramRoute buckets by route distance instead of time.
	HistogramRoute
)

// HistogramBin is one fixed-edge bucket.
type HistogramBin struct {
	Range string
	Count int
}

// DeliveryTimeHistogram counts records into the mode's fixed bins. Bins are
// always present, zero counts included.
func DeliveryTimeHistogram(records []model.Record, mode HistogramMode) []HistogramBin {
	switch mode {
	case HistogramHours:
		bins := []HistogramBin{{Range: "0-6h"}, {Range: "6-12h"}, {Range: "12-18h"}, {Range: "18-24h"}}
		for _, r := range records {
			switch {
			case r.DeliveryTime <= 6:
				bins[0].Count++
			case r.DeliveryTime <= 12:
				bins[1].Count++
			case r.DeliveryTime <= 18:
				bins[2].Count++
			case r.DeliveryTime <= 24:
				bins[3].Count++
			}
		}
		return bins
	case HistogramDays:
		bins := []HistogramBin{{Range: "1-2 days"}, {Range: "2-3 days"}, {Range: "3-5 days"}, {Range: "5+ days"}}
		for _, r := range records {
			days := r.DeliveryTime / 24
			switch {
			case days <= 2:
				bins[0].Count++
			case days <= 3:
				bins[1].Count++
			case days <= 5:
				bins[2].Count++
			default:
				bins[3].Count++
			}
		}
		return bins
	case HistogramRoute:
		bins := []HistogramBin{
			{Range: "Local (<100km)"},
			{Range: "Regional (100-500km)"},
			{Range: "National (500-2000km)"},
			{Range: "International (2000km+)"},
		}
		for _, r := range records {
			switch {
			case r.Distance < 100:
				bins[0].Count++
			case r.Distance < 500:
				bins[1].Count++
			case r.Distance < 2000:
				bins[2].Count++
			default:
				bins[3].Count++
			}
		}
		return bins
	}
	bins := []HistogramBin{{Range: "0-24h"}, {Range: "24-48h"}, {Range: "48-72h"}, {Range: "72h+"}}
	for _, r := range records {
		switch {
		case r.DeliveryTime <= 24:
			bins[0].Count++
		case r.DeliveryTime <= 48:
			bins[1].Count++
		case r.DeliveryTime <= 72:
			bins[2].Count++
		default:
			bins[3].Count++
		}
	}
	return bins
}
