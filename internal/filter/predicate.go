package filter

import (
	"time"

	"github.com/cargodash/cargodash/internal/model"
)

// Apply returns the subset of records matching every active global
// criterion, preserving input order. Criteria are AND-combined: legacy
// scalar filters, category sets, the date filter, then the five numeric
// ranges. dateCursor is the legacy single-date fallback (YYYY-MM-DD):
// while no explicit date range is set and the cursor is non-empty, only
// records sharing its year-month match. A malformed field is a non-match
// for that criterion only, never an error.
func Apply(g GlobalFilters, dateCursor string, records []model.Record) []model.Record {
	out := make([]model.Record, 0, len(records))
	for _, r := range records {
		if matches(g, dateCursor, r) {
			out = append(out, r)
		}
	}
	return out
}

func matches(g GlobalFilters, dateCursor string, r model.Record) bool {
	if g.Carrier != "" && r.Carrier != g.Carrier {
		return false
	}
	if g.Region != "" && r.Region != g.Region {
		return false
	}
	if g.Status != "" && r.Status != g.Status {
		return false
	}
	if g.Priority != "" && r.Priority != g.Priority {
		return false
	}

	if len(g.Carriers) > 0 && !contains(g.Carriers, r.Carrier) {
		return false
	}
	if len(g.Regions) > 0 && !contains(g.Regions, r.Region) {
		return false
	}
	if len(g.Statuses) > 0 && !contains(g.Statuses, r.Status) {
		return false
	}
	if len(g.Priorities) > 0 && !contains(g.Priorities, r.Priority) {
		return false
	}

	if g.DateRangeActive() {
		if !dateWithin(r.DeliveryDate, g.DateRange[0], g.DateRange[1]) {
			return false
		}
	} else if dateCursor != "" {
		if !sameYearMonth(r.DeliveryDate, dateCursor) {
			return false
		}
	}

	if !g.CostRange.Contains(r.Cost) {
		return false
	}
	if !g.WeightRange.Contains(r.Weight) {
		return false
	}
	if !g.PackageRange.Contains(float64(r.PackageCount)) {
		return false
	}
	if !g.DistanceRange.Contains(r.Distance) {
		return false
	}
	if !g.DeliveryTimeRange.Contains(r.DeliveryTime) {
		return false
	}
	return true
}

func contains(values []string, v string) bool {
	for _, existing := range values {
		if existing == v {
			return true
		}
	}
	return false
}

// dateWithin compares calendar dates inclusively. Unparseable dates never
// match.
func dateWithin(date, start, end string) bool {
	d, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return false
	}
	s, err := time.Parse(model.DateLayout, start)
	if err != nil {
		return false
	}
	e, err := time.Parse(model.DateLayout, end)
	if err != nil {
		return false
	}
	return !d.Before(s) && !d.After(e)
}

func sameYearMonth(date, cursor string) bool {
	if len(date) < 7 || len(cursor) < 7 {
		return false
	}
	return date[:7] == cursor[:7]
}
