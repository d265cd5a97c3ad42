package filter

import "testing"

func TestIsAnyActive(t *testing.T) {
	g := NewGlobalFilters()
	if IsAnyActive(g) {
		t.Fatalf("default filters reported active")
	}

	g.Carriers = []string{"FedEx"}
	if !IsAnyActive(g) {
		t.Fatalf("category selection not reported active")
	}

	g = NewGlobalFilters()
	g.CostRange = Range{Min: 100, Max: 500}
	if !IsAnyActive(g) {
		t.Fatalf("modified range not reported active")
	}

	// Legacy scalar filters do not participate.
	g = NewGlobalFilters()
	g.Carrier = "UPS"
	if IsAnyActive(g) {
		t.Fatalf("legacy scalar reported active")
	}
}

func TestChipsOrdering(t *testing.T) {
	g := NewGlobalFilters()
	g.DateRange = []string{"2025-08-01", "2025-08-31"}
	g.Carriers = []string{"FedEx", "UPS"}
	g.Priorities = []string{"High"}
	g.WeightRange = Range{Min: 10, Max: 30}

	chips := Chips(g)
	if len(chips) != 5 {
		t.Fatalf("got %d chips, want 5: %+v", len(chips), chips)
	}
	if chips[0].Kind != ChipDate {
		t.Fatalf("first chip should be the date range, got %+v", chips[0])
	}
	if chips[1].Value != "FedEx" || chips[2].Value != "UPS" {
		t.Fatalf("carrier chips out of order: %+v", chips[1:3])
	}
	if chips[3].Value != "High" {
		t.Fatalf("priority chip out of order: %+v", chips[3])
	}
	if chips[4].Kind != ChipRange || chips[4].Range != RangeWeight {
		t.Fatalf("last chip should be the weight range, got %+v", chips[4])
	}
	if chips[4].Label != "10 - 30 kg" {
		t.Fatalf("weight chip label = %q", chips[4].Label)
	}
}

func TestRemoveChipRestoresDefault(t *testing.T) {
	g := NewGlobalFilters()
	g.DateRange = []string{"2025-08-01", "2025-08-31"}
	g.Carriers = []string{"FedEx", "UPS"}
	g.CostRange = Range{Min: 100, Max: 500}

	chips := Chips(g)
	for _, c := range chips {
		g = Remove(g, c)
	}
	if IsAnyActive(g) {
		t.Fatalf("removing every chip left filters active: %+v", g)
	}
}

func TestRemoveCategoryChipDropsSingleValue(t *testing.T) {
	g := NewGlobalFilters()
	g.Carriers = []string{"FedEx", "UPS", "DHL"}
	g = Remove(g, Chip{Kind: ChipCategory, Category: CategoryCarriers, Value: "UPS"})
	if len(g.Carriers) != 2 || g.Carriers[0] != "FedEx" || g.Carriers[1] != "DHL" {
		t.Fatalf("got %v, want [FedEx DHL]", g.Carriers)
	}
}
