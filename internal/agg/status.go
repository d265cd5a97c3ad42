package agg

import "github.com/cargodash/cargodash/internal/model"

// StatusSlice is one status bucket: package volume and its share of the
// filtered set's total volume.
type StatusSlice struct {
	Status     string
	Count      int
	Percentage float64 // 1 decimal
}

// StatusDistribution sums package counts per status present in the set.
func StatusDistribution(records []model.Record) []StatusSlice {
	perStatus := map[string]int{}
	order := []string{}
	total := 0
	for _, r := range records {
		if _, seen := perStatus[r.Status]; !seen {
			order = append(order, r.Status)
		}
		perStatus[r.Status] += r.PackageCount
		total += r.PackageCount
	}
	slices := make([]StatusSlice, 0, len(order))
	for _, status := range order {
		slice := StatusSlice{Status: status, Count: perStatus[status]}
		if total > 0 {
			slice.Percentage = round1(float64(slice.Count) / float64(total) * 100)
		}
		slices = append(slices, slice)
	}
	return slices
}
