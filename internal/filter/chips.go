package filter

import "fmt"

// ChipKind distinguishes the three removable chip families.
type ChipKind int

const (
	ChipDate ChipKind = iota
	ChipCategory
	ChipRange
)

// Chip is one active-filter entry. Removing it restores exactly the
// corresponding default: category chips drop one value, range chips reset
// that range, the date chip empties the date range.
type Chip struct {
	Kind     ChipKind
	Category CategoryKind // set for ChipCategory
	Value    string       // set for ChipCategory
	Range    RangeKind    // set for ChipRange
	Label    string
}

// IsAnyActive reports whether any category set is non-empty, an explicit
// date range is set, or any numeric range differs from its default. The
// legacy scalar filters deliberately do not participate.
func IsAnyActive(g GlobalFilters) bool {
	for _, kind := range CategoryKinds {
		if len(g.Category(kind)) > 0 {
			return true
		}
	}
	if g.DateRangeActive() {
		return true
	}
	for _, kind := range RangeKinds {
		if g.RangeActive(kind) {
			return true
		}
	}
	return false
}

// Chips derives the ordered active-filter list: the date chip first, then
// one chip per selected category value (insertion order within a category,
// categories carriers->regions->statuses->priorities), then one chip per
// active range (cost->weight->package->distance->deliveryTime).
func Chips(g GlobalFilters) []Chip {
	var chips []Chip
	if g.DateRangeActive() {
		chips = append(chips, Chip{
			Kind:  ChipDate,
			Label: fmt.Sprintf("%s to %s", g.DateRange[0], g.DateRange[1]),
		})
	}
	for _, kind := range CategoryKinds {
		for _, value := range g.Category(kind) {
			chips = append(chips, Chip{
				Kind:     ChipCategory,
				Category: kind,
				Value:    value,
				Label:    value,
			})
		}
	}
	for _, kind := range RangeKinds {
		if g.RangeActive(kind) {
			chips = append(chips, Chip{
				Kind:  ChipRange,
				Range: kind,
				Label: rangeChipLabel(kind, g.RangeFor(kind)),
			})
		}
	}
	return chips
}

// Remove returns a copy of g with the chip's filter restored to its default.
func Remove(g GlobalFilters, c Chip) GlobalFilters {
	switch c.Kind {
	case ChipDate:
		out := g
		out.DateRange = nil
		return out
	case ChipCategory:
		return g.WithCategory(c.Category, RemoveValue(g.Category(c.Category), c.Value))
	case ChipRange:
		return g.WithRange(c.Range, DefaultRange(c.Range))
	}
	return g
}

func rangeChipLabel(kind RangeKind, r Range) string {
	switch kind {
	case RangeCost:
		return fmt.Sprintf("$%g - $%g", r.Min, r.Max)
	case RangeWeight:
		return fmt.Sprintf("%g - %g kg", r.Min, r.Max)
	case RangePackage:
		return fmt.Sprintf("%g - %g packages", r.Min, r.Max)
	case RangeDistance:
		return fmt.Sprintf("%g - %g km", r.Min, r.Max)
	case RangeDeliveryTime:
		return fmt.Sprintf("%g - %g hours", r.Min, r.Max)
	}
	return fmt.Sprintf("%g - %g", r.Min, r.Max)
}
