package filter

import (
	"testing"
	"time"

	"github.com/cargodash/cargodash/internal/model"
)

var drillNow = time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)

func TestDrillUnknownTagPassesThrough(t *testing.T) {
	records := testRecords()
	got := Drill(Tag("day"), drillNow, records)
	if len(got) != len(records) {
		t.Fatalf("aggregation-only tag filtered records: %d of %d left", len(got), len(records))
	}
}

func TestDrillHighPriority(t *testing.T) {
	got := Drill(TagHigh, drillNow, testRecords())
	assertIDs(t, got, 1)
}

func TestDrillMediumHigh(t *testing.T) {
	got := Drill(TagMediumHigh, drillNow, testRecords())
	assertIDs(t, got, 1, 3, 4)
}

func TestDrillIssues(t *testing.T) {
	got := Drill(TagIssues, drillNow, testRecords())
	assertIDs(t, got, 3)
}

func TestDrillCritical(t *testing.T) {
	records := testRecords()
	records[0].Status = model.StatusDelayed // high priority + delayed
	got := Drill(TagCritical, drillNow, records)
	assertIDs(t, got, 1)
}

func TestDrillTop3KeepsBusiestCarriers(t *testing.T) {
	records := []model.Record{
		{ID: 1, Carrier: "A"}, {ID: 2, Carrier: "A"}, {ID: 3, Carrier: "A"},
		{ID: 4, Carrier: "B"}, {ID: 5, Carrier: "B"},
		{ID: 6, Carrier: "C"}, {ID: 7, Carrier: "C"},
		{ID: 8, Carrier: "D"},
	}
	got := Drill(TagTop3, drillNow, records)
	for _, r := range got {
		if r.Carrier == "D" {
			t.Fatalf("carrier D should be cut by top3")
		}
	}
	if len(got) != 7 {
		t.Fatalf("got %d records, want 7", len(got))
	}
}

func TestDrillTop3TieBreaksByEncounterOrder(t *testing.T) {
	records := []model.Record{
		{ID: 1, Carrier: "A"},
		{ID: 2, Carrier: "B"},
		{ID: 3, Carrier: "C"},
		{ID: 4, Carrier: "D"},
	}
	got := Drill(TagTop3, drillNow, records)
	assertIDs(t, got, 1, 2, 3)
}

func TestDrillPerformanceKeepsReliableCarriers(t *testing.T) {
	onTime := model.Record{Carrier: "Good", Status: model.StatusDelivered, DeliveryTime: 24}
	late := model.Record{Carrier: "Good", Status: model.StatusDelayed, DeliveryTime: 60}
	records := []model.Record{onTime, onTime, onTime, onTime, onTime, late, // 5/6 = 83%
		{Carrier: "Bad", Status: model.StatusDelayed, DeliveryTime: 60},
	}
	got := Drill(TagPerform, drillNow, records)
	if len(got) != 6 {
		t.Fatalf("got %d records, want 6", len(got))
	}
	for _, r := range got {
		if r.Carrier != "Good" {
			t.Fatalf("unreliable carrier %q survived", r.Carrier)
		}
	}
}

func TestDrillRealtimeWindow(t *testing.T) {
	records := []model.Record{
		{ID: 1, Timestamp: drillNow.Add(-5 * time.Minute)},
		{ID: 2, Timestamp: drillNow.Add(-30 * time.Minute)},
	}
	got := Drill(TagRealtime, drillNow, records)
	assertIDs(t, got, 1)
}

func TestDrillToday(t *testing.T) {
	records := []model.Record{
		{ID: 1, DeliveryDate: "2025-08-20"},
		{ID: 2, DeliveryDate: "2025-08-19"},
	}
	got := Drill(TagToday, drillNow, records)
	assertIDs(t, got, 1)
}

func TestDrillHistorical(t *testing.T) {
	records := []model.Record{
		{ID: 1, DeliveryDate: "2025-08-01"},
		{ID: 2, DeliveryDate: "2025-08-18"},
	}
	got := Drill(TagHistorical, drillNow, records)
	assertIDs(t, got, 1)
}

func TestDrillProjectedScalesWithoutMutating(t *testing.T) {
	records := []model.Record{{ID: 1, PackageCount: 10, Cost: 100}}
	got := Drill(TagProjected, drillNow, records)
	if records[0].PackageCount != 10 || records[0].Cost != 100 {
		t.Fatalf("input was mutated: %+v", records[0])
	}
	if got[0].PackageCount != 12 {
		t.Fatalf("projected packages = %d, want 12", got[0].PackageCount)
	}
	if got[0].Cost < 114.9 || got[0].Cost > 115.1 {
		t.Fatalf("projected cost = %v, want 115", got[0].Cost)
	}
}

func TestDrillHoursAndDaysPartition(t *testing.T) {
	records := []model.Record{
		{ID: 1, DeliveryTime: 24},
		{ID: 2, DeliveryTime: 25},
	}
	assertIDs(t, Drill(TagHours, drillNow, records), 1)
	assertIDs(t, Drill(TagDays, drillNow, records), 2)
}
