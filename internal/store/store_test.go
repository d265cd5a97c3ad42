package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/cargodash/cargodash/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "cargodash.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() {
		if err := st.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})
	return st
}

func TestReplaceAndListRecords(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	records := []model.Record{
		{ID: 2, Carrier: "UPS", Region: "Europe", Status: model.StatusPending, Priority: model.PriorityLow, DeliveryDate: "2025-08-10", PackageCount: 3, Weight: 5.5, Cost: 120, Distance: 900, DeliveryTime: 30, Timestamp: time.Date(2025, 8, 20, 10, 0, 0, 0, time.UTC), CreatedDate: "2025-08-10"},
		{ID: 1, Carrier: "FedEx", Region: "Asia Pacific", Status: model.StatusDelivered, Priority: model.PriorityHigh, DeliveryDate: "2025-08-05", PackageCount: 12, Weight: 20, Cost: 340.5, Distance: 2200, DeliveryTime: 44, Timestamp: time.Date(2025, 8, 19, 9, 0, 0, 0, time.UTC), CreatedDate: "2025-08-05"},
	}
	if err := st.ReplaceRecords(ctx, records); err != nil {
		t.Fatalf("failed to replace records: %v", err)
	}

	got, err := st.ListRecords(ctx)
	if err != nil {
		t.Fatalf("failed to list records: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("records not ordered by id: %d, %d", got[0].ID, got[1].ID)
	}
	if got[0].Cost != 340.5 || got[0].Weight != 20 || got[0].PackageCount != 12 {
		t.Fatalf("numeric fields lost: %+v", got[0])
	}
	if !got[0].Timestamp.Equal(time.Date(2025, 8, 19, 9, 0, 0, 0, time.UTC)) {
		t.Fatalf("timestamp lost: %v", got[0].Timestamp)
	}
}

func TestReplaceRecordsOverwritesSnapshot(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	first := []model.Record{{ID: 1, Timestamp: time.Now()}, {ID: 2, Timestamp: time.Now()}}
	if err := st.ReplaceRecords(ctx, first); err != nil {
		t.Fatalf("failed to store first snapshot: %v", err)
	}
	second := []model.Record{{ID: 3, Timestamp: time.Now()}}
	if err := st.ReplaceRecords(ctx, second); err != nil {
		t.Fatalf("failed to store second snapshot: %v", err)
	}

	n, err := st.Count(ctx)
	if err != nil {
		t.Fatalf("failed to count: %v", err)
	}
	if n != 1 {
		t.Fatalf("count = %d, want 1", n)
	}
}

func TestCountEmptySnapshot(t *testing.T) {
	st := openTestStore(t)
	n, err := st.Count(context.Background())
	if err != nil {
		t.Fatalf("failed to count: %v", err)
	}
	if n != 0 {
		t.Fatalf("count = %d, want 0", n)
	}
}
