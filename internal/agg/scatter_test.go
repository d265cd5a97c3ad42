package agg

import (
	"testing"

	"github.com/cargodash/cargodash/internal/filter"
	"github.com/cargodash/cargodash/internal/model"
)

func TestScatterPointsAxisMapping(t *testing.T) {
	records := []model.Record{{Weight: 20, Cost: 300, PackageCount: 40, Distance: 1200}}

	p := ScatterPoints(records, ScatterWeightCost)[0]
	if p.Weight != 20 || p.Cost != 300 || p.Packages != 40 {
		t.Fatalf("weight mode: %+v", p)
	}

	p = ScatterPoints(records, ScatterPackageCost)[0]
	if p.Weight != 40 || p.Cost != 300 || p.Packages != 20 {
		t.Fatalf("package mode: %+v", p)
	}

	p = ScatterPoints(records, ScatterDistanceWeight)[0]
	if p.Weight != 1200 || p.Cost != 20 || p.Packages != 300 {
		t.Fatalf("route mode: %+v", p)
	}
}

func TestScatterRangeCommandTolerances(t *testing.T) {
	kind, r := ScatterRangeCommand(ScatterWeightCost, ScatterPoint{Weight: 20})
	if kind != filter.RangeWeight || r.Min != 15 || r.Max != 25 {
		t.Fatalf("weight command: %v %+v", kind, r)
	}

	kind, r = ScatterRangeCommand(ScatterPackageCost, ScatterPoint{Weight: 40})
	if kind != filter.RangePackage || r.Min != 30 || r.Max != 50 {
		t.Fatalf("package command: %v %+v", kind, r)
	}

	kind, r = ScatterRangeCommand(ScatterDistanceWeight, ScatterPoint{Weight: 1200})
	if kind != filter.RangeDistance || r.Min != 700 || r.Max != 1700 {
		t.Fatalf("distance command: %v %+v", kind, r)
	}
}

func TestScatterRangeCommandClampsAtZero(t *testing.T) {
	_, r := ScatterRangeCommand(ScatterWeightCost, ScatterPoint{Weight: 2})
	if r.Min != 0 || r.Max != 7 {
		t.Fatalf("clamped range: %+v", r)
	}
}
