package agg

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cargodash/cargodash/internal/model"
)

// TimeBucket selects the calendar bucketing for time-keyed aggregations.
type TimeBucket int

const (
	BucketDay TimeBucket = iota
	BucketWeek
	BucketMonth
	BucketQuarter
	BucketYear
)

// TimeSeriesPoint is one date bucket of shipment volume.
type TimeSeriesPoint struct {
	Date      string
	Shipments int
	Packages  int
	Cost      decimal.Decimal
}

// TimeSeries sums shipment count, package count, and cost per date bucket,
// sorted ascending by bucket key. Every key shape used (YYYY-MM-DD,
// YYYY-MM-Wn, YYYY-MM, YYYY) is chronological under string order.
func TimeSeries(records []model.Record, bucket TimeBucket) []TimeSeriesPoint {
	perKey := map[string]*TimeSeriesPoint{}
	keys := []string{}
	for _, r := range records {
		key := BucketKey(r.DeliveryDate, bucket)
		point := perKey[key]
		if point == nil {
			point = &TimeSeriesPoint{Date: key, Cost: decimal.Zero}
			perKey[key] = point
			keys = append(keys, key)
		}
		point.Shipments++
		point.Packages += r.PackageCount
		point.Cost = point.Cost.Add(decimal.NewFromFloat(r.Cost))
	}
	sort.Strings(keys)
	points := make([]TimeSeriesPoint, 0, len(keys))
	for _, key := range keys {
		points = append(points, *perKey[key])
	}
	return points
}

// BucketKey derives the bucket key for a YYYY-MM-DD date. Week numbering is
// the simplified week-of-month, week = ceil(day-of-month / 7), keyed
// YYYY-MM-Wn; it is not an ISO calendar week. Unparseable dates fall back
// to the raw string for day/week so they still land in some bucket.
func BucketKey(date string, bucket TimeBucket) string {
	switch bucket {
	case BucketWeek:
		t, err := time.Parse(model.DateLayout, date)
		if err != nil || len(date) < 7 {
			return date
		}
		return fmt.Sprintf("%s-W%d", date[:7], (t.Day()+6)/7)
	case BucketMonth:
		if len(date) >= 7 {
			return date[:7]
		}
	case BucketQuarter:
		t, err := time.Parse(model.DateLayout, date)
		if err != nil {
			return date
		}
		return fmt.Sprintf("%d-Q%d", t.Year(), (int(t.Month())+2)/3)
	case BucketYear:
		if len(date) >= 4 {
			return date[:4]
		}
	}
	return date
}

// BucketSpan maps a day/week/month bucket key back to the [start, end]
// date range it covers, for click-to-filter. Week spans use the simplified
// 7-day blocks (days 7n-6 through 7n); month spans end on the 28th, same
// simplification as the source dashboard. Other buckets have no span.
func BucketSpan(bucket TimeBucket, key string) (start, end string, ok bool) {
	switch bucket {
	case BucketDay:
		return key, key, true
	case BucketWeek:
		var yearMonth string
		var week int
		if _, err := fmt.Sscanf(key, "%7s-W%d", &yearMonth, &week); err != nil || week < 1 {
			return "", "", false
		}
		return fmt.Sprintf("%s-%02d", yearMonth, week*7-6), fmt.Sprintf("%s-%02d", yearMonth, week*7), true
	case BucketMonth:
		if len(key) != 7 {
			return "", "", false
		}
		return key + "-01", key + "-28", true
	}
	return "", "", false
}
