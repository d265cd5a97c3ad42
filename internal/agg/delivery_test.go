package agg

import (
	"testing"

	"github.com/cargodash/cargodash/internal/model"
)

func binCounts(bins []HistogramBin) []int {
	out := make([]int, len(bins))
	for i, b := range bins {
		out[i] = b.Count
	}
	return out
}

func TestDeliveryTimeHistogramDefault(t *testing.T) {
	records := []model.Record{
		{DeliveryTime: 10}, {DeliveryTime: 24}, {DeliveryTime: 40},
		{DeliveryTime: 70}, {DeliveryTime: 100},
	}
	bins := DeliveryTimeHistogram(records, HistogramDefault)
	want := []string{"0-24h", "24-48h", "48-72h", "72h+"}
	for i, label := range want {
		if bins[i].Range != label {
			t.Fatalf("bin %d = %q, want %q", i, bins[i].Range, label)
		}
	}
	got := binCounts(bins)
	if got[0] != 2 || got[1] != 1 || got[2] != 1 || got[3] != 1 {
		t.Fatalf("counts = %v", got)
	}
}

func TestDeliveryTimeHistogramHoursDropsOverDay(t *testing.T) {
	records := []model.Record{
		{DeliveryTime: 3}, {DeliveryTime: 11}, {DeliveryTime: 23}, {DeliveryTime: 30},
	}
	bins := DeliveryTimeHistogram(records, HistogramHours)
	got := binCounts(bins)
	total := got[0] + got[1] + got[2] + got[3]
	if total != 3 {
		t.Fatalf("deliveries over 24h must fall outside every bin, counts = %v", got)
	}
	if got[0] != 1 || got[1] != 1 || got[3] != 1 {
		t.Fatalf("counts = %v", got)
	}
}

func TestDeliveryTimeHistogramDays(t *testing.T) {
	records := []model.Record{
		{DeliveryTime: 30},  // 1.25 days
		{DeliveryTime: 60},  // 2.5 days
		{DeliveryTime: 100}, // ~4.2 days
		{DeliveryTime: 150}, // 6.25 days
	}
	bins := DeliveryTimeHistogram(records, HistogramDays)
	got := binCounts(bins)
	if got[0] != 1 || got[1] != 1 || got[2] != 1 || got[3] != 1 {
		t.Fatalf("counts = %v", got)
	}
	if bins[3].Range != "5+ days" {
		t.Fatalf("last bin = %q", bins[3].Range)
	}
}

func TestDeliveryTimeHistogramRouteUsesDistance(t *testing.T) {
	records := []model.Record{
		{Distance: 50}, {Distance: 300}, {Distance: 1500}, {Distance: 4000},
	}
	bins := DeliveryTimeHistogram(records, HistogramRoute)
	got := binCounts(bins)
	for i, count := range got {
		if count != 1 {
			t.Fatalf("bin %d count = %d, want 1 (%v)", i, count, got)
		}
	}
	if bins[0].Range != "Local (<100km)" || bins[3].Range != "International (2000km+)" {
		t.Fatalf("labels: %q, %q", bins[0].Range, bins[3].Range)
	}
}

func TestDeliveryTimeHistogramAlwaysEmitsBins(t *testing.T) {
	bins := DeliveryTimeHistogram(nil, HistogramDefault)
	if len(bins) != 4 {
		t.Fatalf("got %d bins for empty input, want 4", len(bins))
	}
	for _, b := range bins {
		if b.Count != 0 {
			t.Fatalf("empty input produced count %d in %q", b.Count, b.Range)
		}
	}
}
