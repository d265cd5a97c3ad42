package agg

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/cargodash/cargodash/internal/model"
)

// CostPoint is one date bucket of spend.
type CostPoint struct {
	Date      string
	TotalCost decimal.Decimal
	AvgCost   decimal.Decimal // per record, 2 decimals
	Count     int
}

// CostAnalysis sums and averages cost per day/week/month/quarter bucket.
// Daily output is sorted by date; coarser buckets keep encounter order,
// matching the source widget.
func CostAnalysis(records []model.Record, bucket TimeBucket) []CostPoint {
	perKey := map[string]*CostPoint{}
	keys := []string{}
	for _, r := range records {
		key := BucketKey(r.DeliveryDate, bucket)
		point := perKey[key]
		if point == nil {
			point = &CostPoint{Date: key, TotalCost: decimal.Zero, AvgCost: decimal.Zero}
			perKey[key] = point
			keys = append(keys, key)
		}
		point.TotalCost = point.TotalCost.Add(decimal.NewFromFloat(r.Cost))
		point.Count++
	}
	if bucket == BucketDay {
		sort.Strings(keys)
	}
	points := make([]CostPoint, 0, len(keys))
	for _, key := range keys {
		point := *perKey[key]
		if point.Count > 0 {
			point.AvgCost = point.TotalCost.Div(decimal.NewFromInt(int64(point.Count))).Round(2)
		}
		points = append(points, point)
	}
	return points
}
