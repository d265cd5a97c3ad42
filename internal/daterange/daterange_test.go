package daterange

import (
	"testing"
	"time"
)

var parseNow = time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)

func TestParse(t *testing.T) {
	tests := []struct {
		phrase string
		from   string
		to     string
	}{
		{"2024", "2024-01-01", "2024-12-31"},
		{"q1", "2025-01-01", "2025-03-31"},
		{"Q3 2024", "2024-07-01", "2024-09-30"},
		{"march", "2025-03-01", "2025-03-31"},
		{"feb 2024", "2024-02-01", "2024-02-29"},
		{"2025-06", "2025-06-01", "2025-06-30"},
		{"this year", "2025-01-01", "2025-12-31"},
		{"last year", "2024-01-01", "2024-12-31"},
		{"this quarter", "2025-07-01", "2025-09-30"},
		{"last quarter", "2025-04-01", "2025-06-30"},
		{"this month", "2025-08-01", "2025-08-31"},
		{"last month", "2025-07-01", "2025-07-31"},
		{"ytd", "2025-01-01", "2025-08-20"},
		{"last 30 days", "2025-07-22", "2025-08-20"},
		{"2025-08-01 2025-08-15", "2025-08-01", "2025-08-15"},
		{"2025-08-05", "2025-08-05", "2025-08-05"},
	}
	for _, tt := range tests {
		got, err := Parse(tt.phrase, parseNow)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.phrase, err)
			continue
		}
		if got.From != tt.from || got.To != tt.to {
			t.Errorf("Parse(%q) = [%s, %s], want [%s, %s]", tt.phrase, got.From, got.To, tt.from, tt.to)
		}
	}
}

func TestParseLabels(t *testing.T) {
	got, err := Parse("q3 2024", parseNow)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.Label != "Q3 2024" {
		t.Fatalf("label = %q", got.Label)
	}
	got, err = Parse("last 30 days", parseNow)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.Label != "Last 30 days" {
		t.Fatalf("label = %q", got.Label)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, phrase := range []string{"", "someday", "q5", "last -3 days", "2025-08-15 2025-08-01"} {
		if _, err := Parse(phrase, parseNow); err == nil {
			t.Errorf("Parse(%q) accepted", phrase)
		}
	}
}

func TestParseLastQuarterAcrossYearBoundary(t *testing.T) {
	jan := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	got, err := Parse("last quarter", jan)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.From != "2024-10-01" || got.To != "2024-12-31" {
		t.Fatalf("got [%s, %s]", got.From, got.To)
	}
}
