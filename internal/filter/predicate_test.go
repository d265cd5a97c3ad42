package filter

import (
	"testing"

	"github.com/cargodash/cargodash/internal/model"
)

func testRecords() []model.Record {
	return []model.Record{
		{ID: 1, Carrier: "FedEx", Region: "Europe", Status: model.StatusDelivered, Priority: model.PriorityHigh, DeliveryDate: "2025-08-05", PackageCount: 10, Weight: 12, Cost: 200, Distance: 800, DeliveryTime: 24},
		{ID: 2, Carrier: "UPS", Region: "North America", Status: model.StatusInTransit, Priority: model.PriorityLow, DeliveryDate: "2025-08-12", PackageCount: 40, Weight: 30, Cost: 700, Distance: 2500, DeliveryTime: 60},
		{ID: 3, Carrier: "DHL", Region: "Asia Pacific", Status: model.StatusDelayed, Priority: model.PriorityMedium, DeliveryDate: "2025-07-28", PackageCount: 5, Weight: 4, Cost: 90, Distance: 300, DeliveryTime: 12},
		{ID: 4, Carrier: "FedEx", Region: "Europe", Status: model.StatusDelivered, Priority: model.PriorityMedium, DeliveryDate: "2025-08-20", PackageCount: 25, Weight: 20, Cost: 450, Distance: 1500, DeliveryTime: 36},
	}
}

func ids(records []model.Record) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func assertIDs(t *testing.T, got []model.Record, want ...int) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("got %v, want %v", gotIDs, want)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("got %v, want %v", gotIDs, want)
		}
	}
}

func TestApplyDefaultsMatchEverything(t *testing.T) {
	records := testRecords()
	got := Apply(NewGlobalFilters(), "", records)
	if len(got) != len(records) {
		t.Fatalf("default filters matched %d of %d records", len(got), len(records))
	}
}

func TestApplyPreservesOrder(t *testing.T) {
	g := NewGlobalFilters()
	g.Regions = []string{"Europe"}
	got := Apply(g, "", testRecords())
	assertIDs(t, got, 1, 4)
}

func TestApplyCategoriesAreANDAcrossDimensions(t *testing.T) {
	g := NewGlobalFilters()
	g.Carriers = []string{"FedEx", "UPS"}
	g.Priorities = []string{model.PriorityMedium}
	got := Apply(g, "", testRecords())
	assertIDs(t, got, 4)
}

func TestApplyDateRangeInclusive(t *testing.T) {
	g := NewGlobalFilters()
	g.DateRange = []string{"2025-08-05", "2025-08-12"}
	got := Apply(g, "", testRecords())
	assertIDs(t, got, 1, 2)
}

func TestApplyMonthCursorFallback(t *testing.T) {
	got := Apply(NewGlobalFilters(), "2025-07", testRecords())
	assertIDs(t, got, 3)
}

func TestApplyExplicitRangeOverridesCursor(t *testing.T) {
	g := NewGlobalFilters()
	g.DateRange = []string{"2025-08-01", "2025-08-31"}
	got := Apply(g, "2025-07", testRecords())
	assertIDs(t, got, 1, 2, 4)
}

func TestApplyNumericRangeBoundsInclusive(t *testing.T) {
	g := NewGlobalFilters()
	g.CostRange = Range{Min: 200, Max: 450}
	got := Apply(g, "", testRecords())
	assertIDs(t, got, 1, 4)
}

func TestApplyLegacyScalarFilter(t *testing.T) {
	g := NewGlobalFilters()
	g.Carrier = "UPS"
	got := Apply(g, "", testRecords())
	assertIDs(t, got, 2)
}

func TestApplyMalformedDateNeverMatchesExplicitRange(t *testing.T) {
	records := testRecords()
	records[0].DeliveryDate = "not-a-date"
	g := NewGlobalFilters()
	g.DateRange = []string{"2025-01-01", "2025-12-31"}
	got := Apply(g, "", records)
	assertIDs(t, got, 2, 3, 4)
}

func TestApplyIdempotent(t *testing.T) {
	g := NewGlobalFilters()
	g.Statuses = []string{model.StatusDelivered}
	g.WeightRange = Range{Min: 10, Max: 25}
	once := Apply(g, "", testRecords())
	twice := Apply(g, "", once)
	if len(once) != len(twice) {
		t.Fatalf("second application changed the set: %d != %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Fatalf("second application reordered the set")
		}
	}
}

func TestToggleValue(t *testing.T) {
	values := []string{}
	values = ToggleValue(values, "FedEx")
	values = ToggleValue(values, "UPS")
	values = ToggleValue(values, "DHL")
	values = ToggleValue(values, "UPS")
	if len(values) != 2 || values[0] != "FedEx" || values[1] != "DHL" {
		t.Fatalf("got %v, want [FedEx DHL]", values)
	}
}
