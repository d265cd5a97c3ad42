package filter

import (
	"time"

	"github.com/cargodash/cargodash/internal/model"
)

// DisabledOptions computes which drill-down tags should be shown disabled
// for a widget given the current global filters. Purely a function of its
// inputs; unknown widget identities yield an empty set. There is no general
// formula, only a per-widget table of heuristics.
func DisabledOptions(widgetID string, g GlobalFilters, now time.Time) []Tag {
	var disabled []Tag
	add := func(tags ...Tag) {
		for _, tag := range tags {
			found := false
			for _, existing := range disabled {
				if existing == tag {
					found = true
					break
				}
			}
			if !found {
				disabled = append(disabled, tag)
			}
		}
	}

	switch widgetID {
	case "cost-analysis":
		if days, ok := dateRangeDays(g); ok {
			switch {
			case days < 7:
				add(TagWeek, TagMonth, TagQuarter)
			case days < 30:
				add(TagMonth, TagQuarter)
			case days < 90:
				add(TagQuarter)
			}
		}

	case "priority-breakdown":
		if len(g.Priorities) > 0 {
			hasHigh := contains(g.Priorities, model.PriorityHigh)
			hasMedium := contains(g.Priorities, model.PriorityMedium)
			hasLow := contains(g.Priorities, model.PriorityLow)
			switch {
			case len(g.Priorities) == 1 && hasHigh:
				add(TagAll, TagMediumHigh)
			case len(g.Priorities) == 2 && hasHigh && hasMedium:
				add(TagAll, TagHigh)
			case !hasHigh:
				add(TagHigh, TagMediumHigh)
			case !hasMedium && !hasLow:
				add(TagMediumHigh)
			}
		}

	case "carrier-performance":
		switch len(g.Carriers) {
		case 0:
		case 1:
			add(TagAll, TagTop3)
		case 2:
			add(TagTop3)
		}

	case "status-overview":
		if len(g.Statuses) > 0 {
			hasActive := contains(g.Statuses, model.StatusInTransit) || contains(g.Statuses, model.StatusDelivered)
			hasIssues := contains(g.Statuses, model.StatusDelayed) || contains(g.Statuses, model.StatusException)
			if !hasActive {
				add(TagActive)
			}
			if !hasIssues {
				add(TagIssues)
			}
			if len(g.Statuses) == 1 {
				add(TagAll)
			}
		}

	case "live-stats":
		if days, ok := dateRangeDays(g); ok {
			if days > 7 {
				add(TagRealtime, TagHour)
			}
			if days > 1 {
				add(TagToday)
			}
		}

	case "shipment-volume":
		if days, ok := dateRangeDays(g); ok {
			switch {
			case days < 7:
				add(TagWeek, TagMonth, TagYear)
			case days < 30:
				add(TagMonth, TagYear)
			case days < 365:
				add(TagYear)
			}
		}

	case "delivery-time":
		if g.DistanceRange.Span() < 500 {
			add(TagRoute)
		}

	case "weight-distribution":
		if g.WeightRange.Span() < 10 {
			add(TagWeight)
		}
		if g.PackageRange.Span() < 20 {
			add(TagPackage)
		}

	case "high-priority":
		if len(g.Priorities) > 0 && !contains(g.Priorities, model.PriorityHigh) {
			add(TagCritical, TagUrgent)
		}
		if len(g.Statuses) > 0 {
			hasProblem := contains(g.Statuses, model.StatusDelayed) || contains(g.Statuses, model.StatusException)
			if !hasProblem {
				add(TagCritical)
			}
		}

	case "capacity":
		if g.DateRangeActive() {
			if start, err := time.Parse(model.DateLayout, g.DateRange[0]); err == nil {
				if start.After(now.AddDate(0, 0, -7)) {
					add(TagHistorical)
				}
			}
		}

	case "performance-metrics":
		if g.DateRangeActive() {
			if end, err := time.Parse(model.DateLayout, g.DateRange[1]); err == nil {
				if end.Before(now.AddDate(0, 0, -1)) {
					add(TagRealtime)
				}
				if end.Before(now.Add(-time.Hour)) {
					add(TagHour)
				}
			}
		}
	}

	return disabled
}

// dateRangeDays returns the explicit date range span in whole days.
// Malformed dates behave like no range at all.
func dateRangeDays(g GlobalFilters) (int, bool) {
	if !g.DateRangeActive() {
		return 0, false
	}
	start, err := time.Parse(model.DateLayout, g.DateRange[0])
	if err != nil {
		return 0, false
	}
	end, err := time.Parse(model.DateLayout, g.DateRange[1])
	if err != nil {
		return 0, false
	}
	return int(end.Sub(start).Hours() / 24), true
}
