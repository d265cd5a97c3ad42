package filter

import (
	"sort"
	"time"

	"github.com/cargodash/cargodash/internal/model"
)

// Tag is a drill-down grouping value. The tag namespace is shared across
// every widget: some tags narrow the filtered set (secondary filters), some
// only select an aggregation bucket and pass through here unchanged, and
// "projected" rewrites values instead of filtering.
type Tag string

const (
	TagAll        Tag = "all"
	TagHigh       Tag = "high"
	TagMediumHigh Tag = "medium_high"
	TagActive     Tag = "active"
	TagIssues     Tag = "issues"
	TagCritical   Tag = "critical"
	TagUrgent     Tag = "urgent"
	TagTop3       Tag = "top3"
	TagPerform    Tag = "performance"
	TagRealtime   Tag = "realtime"
	TagHour       Tag = "hour"
	TagToday      Tag = "today"
	TagRoute      Tag = "route"
	TagHours      Tag = "hours"
	TagDays       Tag = "days"
	TagWeight     Tag = "weight"
	TagPackage    Tag = "package"
	TagRegion     Tag = "region"
	TagCountry    Tag = "country"
	TagCity       Tag = "city"
	TagCurrent    Tag = "current"
	TagProjected  Tag = "projected"
	TagHistorical Tag = "historical"

	TagDay     Tag = "day"
	TagWeek    Tag = "week"
	TagMonth   Tag = "month"
	TagQuarter Tag = "quarter"
	TagYear    Tag = "year"
)

// Drill applies a widget's drill-down tag to an already globally filtered
// set. Time-window tags compare against now so callers control the clock.
// Unknown tags pass the set through unchanged.
func Drill(tag Tag, now time.Time, records []model.Record) []model.Record {
	switch tag {
	case TagHigh:
		return keep(records, func(r model.Record) bool {
			return r.Priority == model.PriorityHigh
		})
	case TagMediumHigh:
		return keep(records, func(r model.Record) bool {
			return r.Priority == model.PriorityHigh || r.Priority == model.PriorityMedium
		})
	case TagActive:
		return keep(records, func(r model.Record) bool {
			return r.Status == model.StatusInTransit || r.Status == model.StatusDelivered
		})
	case TagIssues:
		return keep(records, func(r model.Record) bool {
			return r.Status == model.StatusDelayed || r.Status == model.StatusException
		})
	case TagCritical:
		return keep(records, func(r model.Record) bool {
			return r.Priority == model.PriorityHigh &&
				(r.Status == model.StatusDelayed || r.Status == model.StatusException)
		})
	case TagUrgent:
		return keep(records, func(r model.Record) bool {
			return r.Priority == model.PriorityHigh || r.Status == model.StatusException
		})
	case TagTop3:
		return keepCarriers(records, topCarriersByCount(records, 3))
	case TagPerform:
		return keepCarriers(records, reliableCarriers(records))
	case TagRealtime:
		cutoff := now.Add(-15 * time.Minute)
		return keep(records, func(r model.Record) bool {
			return r.Timestamp.After(cutoff)
		})
	case TagHour:
		cutoff := now.Add(-time.Hour)
		return keep(records, func(r model.Record) bool {
			return r.Timestamp.After(cutoff)
		})
	case TagToday:
		today := now.Format(model.DateLayout)
		return keep(records, func(r model.Record) bool {
			return r.DeliveryDate == today
		})
	case TagRoute:
		return keep(records, func(r model.Record) bool {
			return r.Distance > 1000
		})
	case TagHours:
		return keep(records, func(r model.Record) bool {
			return r.DeliveryTime <= 24
		})
	case TagDays:
		return keep(records, func(r model.Record) bool {
			return r.DeliveryTime > 24
		})
	case TagWeight:
		return keep(records, func(r model.Record) bool {
			return r.Weight > 25
		})
	case TagPackage:
		return keep(records, func(r model.Record) bool {
			return r.PackageCount > 50
		})
	case TagCountry:
		return keep(records, func(r model.Record) bool {
			return r.Region == "North America" || r.Region == "Europe"
		})
	case TagCity:
		return keep(records, func(r model.Record) bool {
			return r.Carrier == "FedEx" || r.Carrier == "UPS"
		})
	case TagProjected:
		return project(records)
	case TagHistorical:
		cutoff := now.AddDate(0, 0, -7)
		return keep(records, func(r model.Record) bool {
			d, err := time.Parse(model.DateLayout, r.DeliveryDate)
			if err != nil {
				return false
			}
			return d.Before(cutoff)
		})
	}
	return records
}

func keep(records []model.Record, pred func(model.Record) bool) []model.Record {
	out := make([]model.Record, 0, len(records))
	for _, r := range records {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

func keepCarriers(records []model.Record, carriers map[string]bool) []model.Record {
	return keep(records, func(r model.Record) bool {
		return carriers[r.Carrier]
	})
}

// topCarriersByCount selects the n carriers with the most records, ties
// broken by first-encountered order.
func topCarriersByCount(records []model.Record, n int) map[string]bool {
	counts := map[string]int{}
	order := []string{}
	for _, r := range records {
		if _, seen := counts[r.Carrier]; !seen {
			order = append(order, r.Carrier)
		}
		counts[r.Carrier]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if n > len(order) {
		n = len(order)
	}
	top := map[string]bool{}
	for _, carrier := range order[:n] {
		top[carrier] = true
	}
	return top
}

// reliableCarriers selects carriers whose on-time share of their own
// records exceeds 0.8.
func reliableCarriers(records []model.Record) map[string]bool {
	type tally struct {
		total  int
		onTime int
	}
	perCarrier := map[string]*tally{}
	for _, r := range records {
		t := perCarrier[r.Carrier]
		if t == nil {
			t = &tally{}
			perCarrier[r.Carrier] = t
		}
		t.total++
		if model.OnTime(r) {
			t.onTime++
		}
	}
	good := map[string]bool{}
	for carrier, t := range perCarrier {
		if t.total > 0 && float64(t.onTime)/float64(t.total) > 0.8 {
			good[carrier] = true
		}
	}
	return good
}

// project scales every record for a 20% package growth and 15% cost
// increase. Records are copied; the input is never mutated.
func project(records []model.Record) []model.Record {
	out := make([]model.Record, len(records))
	for i, r := range records {
		r.PackageCount = int(float64(r.PackageCount) * 1.2)
		r.Cost = r.Cost * 1.15
		out[i] = r
	}
	return out
}
