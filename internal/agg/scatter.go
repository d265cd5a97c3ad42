package agg

import (
	"github.com/cargodash/cargodash/internal/filter"
	"github.com/cargodash/cargodash/internal/model"
)

// ScatterMode selects the axis mapping for the weight-distribution scatter.
// All three modes emit the same Weight/Cost/Packages field names with
// different source fields bound to them; click-to-filter depends on which
// field is bound to the X axis, so the mapping contract is fixed.
type ScatterMode int

const (
	// ScatterWeightCost plots weight (kg) against cost, package count as size.
	ScatterWeightCost ScatterMode = iota
	// ScatterPackageCost plots package count against cost, weight as size.
	ScatterPackageCost
	// ScatterDistanceWeight plots distance (km) against weight, cost as size.
	ScatterDistanceWeight
)

// ScatterPoint is one plotted record. Weight carries the X value, Cost the
// Y value, and Packages the bubble size, whatever the mode bound to them.
type ScatterPoint struct {
	Weight   float64
	Cost     float64
	Packages float64
}

// ScatterPoints maps records onto the mode's axes.
func ScatterPoints(records []model.Record, mode ScatterMode) []ScatterPoint {
	points := make([]ScatterPoint, 0, len(records))
	for _, r := range records {
		switch mode {
		case ScatterPackageCost:
			points = append(points, ScatterPoint{
				Weight:   float64(r.PackageCount),
				Cost:     r.Cost,
				Packages: r.Weight,
			})
		case ScatterDistanceWeight:
			points = append(points, ScatterPoint{
				Weight:   r.Distance,
				Cost:     r.Weight,
				Packages: r.Cost,
			})
		default:
			points = append(points, ScatterPoint{
				Weight:   r.Weight,
				Cost:     r.Cost,
				Packages: float64(r.PackageCount),
			})
		}
	}
	return points
}

// ScatterRangeCommand translates a clicked point into the global range
// mutation for the mode's X-axis dimension: weight ±5 kg, packages ±10,
// distance ±500 km, lower bound clamped at zero.
func ScatterRangeCommand(mode ScatterMode, p ScatterPoint) (filter.RangeKind, filter.Range) {
	switch mode {
	case ScatterPackageCost:
		return filter.RangePackage, toleranceRange(p.Weight, 10)
	case ScatterDistanceWeight:
		return filter.RangeDistance, toleranceRange(p.Weight, 500)
	}
	return filter.RangeWeight, toleranceRange(p.Weight, 5)
}

func toleranceRange(center, tolerance float64) filter.Range {
	minVal := center - tolerance
	if minVal < 0 {
		minVal = 0
	}
	return filter.Range{Min: minVal, Max: center + tolerance}
}
