// Package filter implements the global filter state, the record predicate,
// per-widget drill-down tags, and drill-down option availability.
package filter

// RangeKind names one of the numeric range dimensions.
type RangeKind string

const (
	RangeCost         RangeKind = "cost"
	RangeWeight       RangeKind = "weight"
	RangePackage      RangeKind = "package"
	RangeDistance     RangeKind = "distance"
	RangeDeliveryTime RangeKind = "deliveryTime"
)

// RangeKinds lists the numeric range dimensions in their fixed display order.
var RangeKinds = []RangeKind{RangeCost, RangeWeight, RangePackage, RangeDistance, RangeDeliveryTime}

// Range is a closed numeric interval [Min, Max].
type Range struct {
	Min float64
	Max float64
}

// Span returns Max - Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Contains reports whether v lies within the interval, bounds inclusive.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Default range bounds. These literals drive "is this filter active"
// detection and must not drift.
var (
	DefaultCostRange         = Range{0, 1100}
	DefaultWeightRange       = Range{0, 55}
	DefaultPackageRange      = Range{0, 105}
	DefaultDistanceRange     = Range{0, 5500}
	DefaultDeliveryTimeRange = Range{0, 75}
)

// DefaultRange returns the documented default interval for a range kind.
func DefaultRange(kind RangeKind) Range {
	switch kind {
	case RangeCost:
		return DefaultCostRange
	case RangeWeight:
		return DefaultWeightRange
	case RangePackage:
		return DefaultPackageRange
	case RangeDistance:
		return DefaultDistanceRange
	case RangeDeliveryTime:
		return DefaultDeliveryTimeRange
	}
	return Range{}
}

// CategoryKind names one of the multi-select categorical dimensions.
type CategoryKind string

const (
	CategoryCarriers   CategoryKind = "carriers"
	CategoryRegions    CategoryKind = "regions"
	CategoryStatuses   CategoryKind = "statuses"
	CategoryPriorities CategoryKind = "priorities"
)

// CategoryKinds lists the categorical dimensions in their fixed display order.
var CategoryKinds = []CategoryKind{CategoryCarriers, CategoryRegions, CategoryStatuses, CategoryPriorities}

// GlobalFilters is the canonical UI-independent filter configuration shared
// by every widget. Category selections use insertion order; an empty
// selection means no restriction. A range counts as inactive while it equals
// its default. DateRange is either empty or exactly [start, end].
type GlobalFilters struct {
	Carriers   []string
	Regions    []string
	Statuses   []string
	Priorities []string

	DateRange         []string // empty or [start, end], YYYY-MM-DD inclusive
	CostRange         Range
	WeightRange       Range
	PackageRange      Range
	DistanceRange     Range
	DeliveryTimeRange Range

	// Legacy single-select filters, retained for backward compatibility.
	// Empty string = inactive; when set, AND-combined with everything else.
	Carrier  string
	Region   string
	Status   string
	Priority string
}

// NewGlobalFilters returns the default (fully inactive) filter state.
func NewGlobalFilters() GlobalFilters {
	return GlobalFilters{
		CostRange:         DefaultCostRange,
		WeightRange:       DefaultWeightRange,
		PackageRange:      DefaultPackageRange,
		DistanceRange:     DefaultDistanceRange,
		DeliveryTimeRange: DefaultDeliveryTimeRange,
	}
}

// Category returns the selected values for a categorical dimension.
func (g GlobalFilters) Category(kind CategoryKind) []string {
	switch kind {
	case CategoryCarriers:
		return g.Carriers
	case CategoryRegions:
		return g.Regions
	case CategoryStatuses:
		return g.Statuses
	case CategoryPriorities:
		return g.Priorities
	}
	return nil
}

// WithCategory returns a copy of g with one categorical selection replaced.
func (g GlobalFilters) WithCategory(kind CategoryKind, values []string) GlobalFilters {
	out := g
	switch kind {
	case CategoryCarriers:
		out.Carriers = values
	case CategoryRegions:
		out.Regions = values
	case CategoryStatuses:
		out.Statuses = values
	case CategoryPriorities:
		out.Priorities = values
	}
	return out
}

// RangeFor returns the interval for a numeric range dimension.
func (g GlobalFilters) RangeFor(kind RangeKind) Range {
	switch kind {
	case RangeCost:
		return g.CostRange
	case RangeWeight:
		return g.WeightRange
	case RangePackage:
		return g.PackageRange
	case RangeDistance:
		return g.DistanceRange
	case RangeDeliveryTime:
		return g.DeliveryTimeRange
	}
	return Range{}
}

// WithRange returns a copy of g with one numeric range replaced.
func (g GlobalFilters) WithRange(kind RangeKind, r Range) GlobalFilters {
	out := g
	switch kind {
	case RangeCost:
		out.CostRange = r
	case RangeWeight:
		out.WeightRange = r
	case RangePackage:
		out.PackageRange = r
	case RangeDistance:
		out.DistanceRange = r
	case RangeDeliveryTime:
		out.DeliveryTimeRange = r
	}
	return out
}

// RangeActive reports whether a numeric range differs from its default.
func (g GlobalFilters) RangeActive(kind RangeKind) bool {
	return g.RangeFor(kind) != DefaultRange(kind)
}

// DateRangeActive reports whether an explicit [start, end] date range is set.
func (g GlobalFilters) DateRangeActive() bool {
	return len(g.DateRange) == 2
}

// ToggleValue returns values with v appended if absent, or removed if
// present. Selection order is preserved for the remaining values.
func ToggleValue(values []string, v string) []string {
	for i, existing := range values {
		if existing == v {
			out := make([]string, 0, len(values)-1)
			out = append(out, values[:i]...)
			out = append(out, values[i+1:]...)
			return out
		}
	}
	out := make([]string, 0, len(values)+1)
	out = append(out, values...)
	out = append(out, v)
	return out
}

// RemoveValue returns values without v.
func RemoveValue(values []string, v string) []string {
	out := make([]string, 0, len(values))
	for _, existing := range values {
		if existing != v {
			out = append(out, existing)
		}
	}
	return out
}
