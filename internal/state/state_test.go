package state

import (
	"math"
	"testing"
	"time"

	"github.com/cargodash/cargodash/internal/filter"
	"github.com/cargodash/cargodash/internal/model"
	"github.com/cargodash/cargodash/internal/widget"
)

var stateNow = time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)

func newTestStore() *Store {
	records := []model.Record{
		{ID: 1, Carrier: "FedEx", Region: "Europe", Status: model.StatusDelivered, Priority: model.PriorityHigh, DeliveryDate: "2025-08-05", PackageCount: 10, Weight: 12, Cost: 200, Distance: 800, DeliveryTime: 24},
		{ID: 2, Carrier: "UPS", Region: "North America", Status: model.StatusInTransit, Priority: model.PriorityLow, DeliveryDate: "2025-08-12", PackageCount: 40, Weight: 30, Cost: 700, Distance: 2500, DeliveryTime: 60},
		{ID: 3, Carrier: "DHL", Region: "Asia Pacific", Status: model.StatusDelayed, Priority: model.PriorityMedium, DeliveryDate: "2025-07-28", PackageCount: 5, Weight: 4, Cost: 90, Distance: 300, DeliveryTime: 12},
	}
	s := New(records)
	s.SetClock(func() time.Time { return stateNow })
	if err := s.SetDeliveryDate("2025-08"); err != nil {
		panic(err)
	}
	return s
}

func TestFilteredUsesMonthCursor(t *testing.T) {
	s := newTestStore()
	got := s.Filtered()
	if len(got) != 2 {
		t.Fatalf("august cursor matched %d records, want 2", len(got))
	}
	if err := s.SetDeliveryDate("2025-07"); err != nil {
		t.Fatalf("SetDeliveryDate: %v", err)
	}
	got = s.Filtered()
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("july cursor: %+v", got)
	}
}

func TestShiftDeliveryMonth(t *testing.T) {
	s := newTestStore()
	s.ShiftDeliveryMonth(-1)
	if s.DeliveryDate() != "2025-07" {
		t.Fatalf("cursor = %q, want 2025-07", s.DeliveryDate())
	}
	s.ShiftDeliveryMonth(6)
	if s.DeliveryDate() != "2026-01" {
		t.Fatalf("cursor = %q, want 2026-01", s.DeliveryDate())
	}
}

func TestSetRangeRejectsNonFiniteBounds(t *testing.T) {
	s := newTestStore()
	if err := s.SetRange(filter.RangeCost, filter.Range{Min: math.NaN(), Max: 100}); err == nil {
		t.Fatalf("NaN lower bound accepted")
	}
	if err := s.SetRange(filter.RangeCost, filter.Range{Min: 0, Max: math.Inf(1)}); err == nil {
		t.Fatalf("infinite upper bound accepted")
	}
	if s.IsAnyActive() {
		t.Fatalf("rejected update still mutated state")
	}
}

func TestSetRangeSwapsInvertedBounds(t *testing.T) {
	s := newTestStore()
	if err := s.SetRange(filter.RangeWeight, filter.Range{Min: 30, Max: 10}); err != nil {
		t.Fatalf("SetRange: %v", err)
	}
	r := s.Global().RangeFor(filter.RangeWeight)
	if r.Min != 10 || r.Max != 30 {
		t.Fatalf("range = %+v, want [10, 30]", r)
	}
}

func TestSetDateRangeValidation(t *testing.T) {
	s := newTestStore()
	if err := s.SetDateRange("2025-08-31", "2025-08-01"); err == nil {
		t.Fatalf("inverted date range accepted")
	}
	if err := s.SetDateRange("bogus", "2025-08-01"); err == nil {
		t.Fatalf("malformed start date accepted")
	}
	if err := s.SetDateRange("2025-08-01", "2025-08-31"); err != nil {
		t.Fatalf("SetDateRange: %v", err)
	}
	if !s.Global().DateRangeActive() {
		t.Fatalf("date range not recorded")
	}
}

func TestClearGlobalFiltersPreservesWidgetTags(t *testing.T) {
	s := newTestStore()
	s.ToggleCategory(filter.CategoryCarriers, "FedEx")
	s.SetWidgetTag(widget.CostAnalysis, filter.TagWeek)

	s.ClearGlobalFilters()
	if s.IsAnyActive() {
		t.Fatalf("global filters still active after clear")
	}
	if s.WidgetTag(widget.CostAnalysis) != filter.TagWeek {
		t.Fatalf("widget tag lost on global clear")
	}

	s.ResetWidgetFilters()
	if s.WidgetTag(widget.CostAnalysis) != "" {
		t.Fatalf("widget tag survived ResetWidgetFilters")
	}
}

func TestGroupingFallsBackToWidgetDefault(t *testing.T) {
	s := newTestStore()
	w, ok := widget.ByID(widget.CostAnalysis)
	if !ok {
		t.Fatalf("cost-analysis widget missing")
	}
	if got := s.Grouping(w); got != filter.TagDay {
		t.Fatalf("unset tag resolved to %q, want day", got)
	}
	s.SetWidgetTag(w.ID, filter.Tag("nonsense"))
	if got := s.Grouping(w); got != filter.TagDay {
		t.Fatalf("unknown tag resolved to %q, want day", got)
	}
	s.SetWidgetTag(w.ID, filter.TagQuarter)
	if got := s.Grouping(w); got != filter.TagQuarter {
		t.Fatalf("valid tag resolved to %q, want quarter", got)
	}
}

func TestFilteredForAppliesDrillDown(t *testing.T) {
	s := newTestStore()
	w, _ := widget.ByID(widget.PriorityBreakdown)
	s.SetWidgetTag(w.ID, filter.TagHigh)
	got := s.FilteredFor(w)
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("high drill-down: %+v", got)
	}
}

func TestSubscribeNotifiedOnEveryMutation(t *testing.T) {
	s := newTestStore()
	calls := 0
	s.Subscribe(func() { calls++ })

	s.ToggleCategory(filter.CategoryRegions, "Europe")
	if err := s.SetRange(filter.RangeCost, filter.Range{Min: 100, Max: 500}); err != nil {
		t.Fatalf("SetRange: %v", err)
	}
	s.ClearGlobalFilters()
	if calls != 3 {
		t.Fatalf("subscriber called %d times, want 3", calls)
	}
}

func TestRemoveChip(t *testing.T) {
	s := newTestStore()
	s.ToggleCategory(filter.CategoryCarriers, "FedEx")
	chips := s.Chips()
	if len(chips) != 1 {
		t.Fatalf("got %d chips, want 1", len(chips))
	}
	s.RemoveChip(chips[0])
	if s.IsAnyActive() {
		t.Fatalf("chip removal left filters active")
	}
}
