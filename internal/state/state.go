// Package state holds the dashboard's filter state behind typed setters and
// notifies subscribers after every mutation.
package state

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/cargodash/cargodash/internal/filter"
	"github.com/cargodash/cargodash/internal/model"
	"github.com/cargodash/cargodash/internal/widget"
)

// Store owns the loaded records, the global filters, the delivery-date month
// cursor, and the per-widget drill-down tags. All access goes through
// methods; mutations run subscribers after the lock is released.
type Store struct {
	mu           sync.RWMutex
	records      []model.Record
	global       filter.GlobalFilters
	deliveryDate string // YYYY-MM cursor, used when no explicit date range is set
	widgetTags   map[string]filter.Tag
	now          func() time.Time
	listeners    []func()
}

// New builds a store over the given records with all filters at their
// defaults and the month cursor on the current month.
func New(records []model.Record) *Store {
	s := &Store{
		records:    records,
		global:     filter.NewGlobalFilters(),
		widgetTags: map[string]filter.Tag{},
		now:        time.Now,
	}
	s.deliveryDate = s.now().Format("2006-01")
	return s
}

// SetClock replaces the time source. Tests pin it; the dashboard leaves it
// on time.Now.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	s.now = now
	s.mu.Unlock()
}

// Subscribe registers a callback run after every state mutation.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

func (s *Store) notify() {
	s.mu.RLock()
	listeners := make([]func(), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()
	for _, fn := range listeners {
		fn()
	}
}

// Records returns the full unfiltered dataset.
func (s *Store) Records() []model.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

// SetRecords swaps the dataset, keeping filters as they are.
func (s *Store) SetRecords(records []model.Record) {
	s.mu.Lock()
	s.records = records
	s.mu.Unlock()
	s.notify()
}

// Global returns a copy of the current global filters.
func (s *Store) Global() filter.GlobalFilters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.global
}

// ToggleCategory adds the value to the category set if absent, removes it if
// present.
func (s *Store) ToggleCategory(kind filter.CategoryKind, value string) {
	s.mu.Lock()
	s.global = s.global.WithCategory(kind, filter.ToggleValue(s.global.Category(kind), value))
	s.mu.Unlock()
	s.notify()
}

// SetCategories replaces the category set wholesale.
func (s *Store) SetCategories(kind filter.CategoryKind, values []string) {
	s.mu.Lock()
	s.global = s.global.WithCategory(kind, values)
	s.mu.Unlock()
	s.notify()
}

// SetRange updates one numeric range. NaN and infinite bounds are rejected;
// inverted bounds are swapped.
func (s *Store) SetRange(kind filter.RangeKind, r filter.Range) error {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) || math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0) {
		return fmt.Errorf("range %s: bounds must be finite, got [%v, %v]", kind, r.Min, r.Max)
	}
	if r.Min > r.Max {
		r.Min, r.Max = r.Max, r.Min
	}
	s.mu.Lock()
	s.global = s.global.WithRange(kind, r)
	s.mu.Unlock()
	s.notify()
	return nil
}

// ResetRange puts one numeric range back to its full-domain default.
func (s *Store) ResetRange(kind filter.RangeKind) {
	s.mu.Lock()
	s.global = s.global.WithRange(kind, filter.DefaultRange(kind))
	s.mu.Unlock()
	s.notify()
}

// SetDateRange sets the explicit [from, to] delivery-date window. Both
// bounds must parse as dates and from must not be after to.
func (s *Store) SetDateRange(from, to string) error {
	start, err := time.Parse(model.DateLayout, from)
	if err != nil {
		return fmt.Errorf("date range start %q: %w", from, err)
	}
	end, err := time.Parse(model.DateLayout, to)
	if err != nil {
		return fmt.Errorf("date range end %q: %w", to, err)
	}
	if start.After(end) {
		return fmt.Errorf("date range start %s is after end %s", from, to)
	}
	s.mu.Lock()
	s.global.DateRange = []string{from, to}
	s.mu.Unlock()
	s.notify()
	return nil
}

// ClearDateRange drops the explicit window, returning date filtering to the
// month cursor.
func (s *Store) ClearDateRange() {
	s.mu.Lock()
	s.global.DateRange = nil
	s.mu.Unlock()
	s.notify()
}

// DeliveryDate returns the YYYY-MM month cursor.
func (s *Store) DeliveryDate() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.deliveryDate
}

// SetDeliveryDate moves the month cursor. The cursor only filters while no
// explicit date range is active.
func (s *Store) SetDeliveryDate(month string) error {
	if _, err := time.Parse("2006-01", month); err != nil {
		return fmt.Errorf("delivery month %q: %w", month, err)
	}
	s.mu.Lock()
	s.deliveryDate = month
	s.mu.Unlock()
	s.notify()
	return nil
}

// ShiftDeliveryMonth moves the cursor by whole months.
func (s *Store) ShiftDeliveryMonth(months int) {
	s.mu.Lock()
	if t, err := time.Parse("2006-01", s.deliveryDate); err == nil {
		s.deliveryDate = t.AddDate(0, months, 0).Format("2006-01")
	}
	s.mu.Unlock()
	s.notify()
}

// ClearGlobalFilters resets every global filter to its default. Per-widget
// drill-down tags survive; ResetWidgetFilters clears those.
func (s *Store) ClearGlobalFilters() {
	s.mu.Lock()
	s.global = filter.NewGlobalFilters()
	s.mu.Unlock()
	s.notify()
}

// ResetWidgetFilters drops every widget's drill-down tag back to default.
func (s *Store) ResetWidgetFilters() {
	s.mu.Lock()
	s.widgetTags = map[string]filter.Tag{}
	s.mu.Unlock()
	s.notify()
}

// WidgetTag returns the raw stored tag for a widget, empty when unset.
func (s *Store) WidgetTag(widgetID string) filter.Tag {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.widgetTags[widgetID]
}

// SetWidgetTag stores a widget's drill-down tag. Tags the widget does not
// offer are stored as-is and resolve to the widget default on read.
func (s *Store) SetWidgetTag(widgetID string, tag filter.Tag) {
	s.mu.Lock()
	s.widgetTags[widgetID] = tag
	s.mu.Unlock()
	s.notify()
}

// Grouping resolves a widget's stored tag against its option list, falling
// back to the widget default.
func (s *Store) Grouping(w widget.Widget) filter.Tag {
	return w.Grouping(s.WidgetTag(w.ID))
}

// Filtered applies the global filters and the month cursor.
func (s *Store) Filtered() []model.Record {
	s.mu.RLock()
	global, cursor, records := s.global, s.deliveryDate, s.records
	s.mu.RUnlock()
	return filter.Apply(global, cursor, records)
}

// FilteredFor applies the global filters and then the widget's resolved
// drill-down tag.
func (s *Store) FilteredFor(w widget.Widget) []model.Record {
	s.mu.RLock()
	now := s.now
	s.mu.RUnlock()
	return filter.Drill(s.Grouping(w), now(), s.Filtered())
}

// Chips returns the active-filter chips for the chip row.
func (s *Store) Chips() []filter.Chip {
	return filter.Chips(s.Global())
}

// RemoveChip clears the single filter the chip represents.
func (s *Store) RemoveChip(c filter.Chip) {
	s.mu.Lock()
	s.global = filter.Remove(s.global, c)
	s.mu.Unlock()
	s.notify()
}

// IsAnyActive reports whether any global filter deviates from its default.
func (s *Store) IsAnyActive() bool {
	return filter.IsAnyActive(s.Global())
}

// DisabledOptions returns the drill-down tags currently unusable for the
// widget given the active global filters.
func (s *Store) DisabledOptions(widgetID string) []filter.Tag {
	s.mu.RLock()
	global, now := s.global, s.now
	s.mu.RUnlock()
	return filter.DisabledOptions(widgetID, global, now())
}
