package agg

import "github.com/cargodash/cargodash/internal/model"

// PrioritySlice is one priority bucket with its share of the filtered set.
type PrioritySlice struct {
	Priority   string
	Count      int
	Percentage float64 // 1 decimal
}

// PriorityBreakdown counts shipments per priority present in the set.
func PriorityBreakdown(records []model.Record) []PrioritySlice {
	perPriority := map[string]int{}
	order := []string{}
	for _, r := range records {
		if _, seen := perPriority[r.Priority]; !seen {
			order = append(order, r.Priority)
		}
		perPriority[r.Priority]++
	}
	slices := make([]PrioritySlice, 0, len(order))
	for _, priority := range order {
		slice := PrioritySlice{Priority: priority, Count: perPriority[priority]}
		if len(records) > 0 {
			slice.Percentage = round1(float64(slice.Count) / float64(len(records)) * 100)
		}
		slices = append(slices, slice)
	}
	return slices
}
