package dashui

import (
	"strings"
	"testing"
)

func TestTruncateLine(t *testing.T) {
	if got := truncateLine("short", 10); got != "short" {
		t.Fatalf("got %q", got)
	}
	if got := truncateLine("a very long label", 10); got != "a very ..." {
		t.Fatalf("got %q", got)
	}
	if got := truncateLine("abcdef", 3); got != "abc" {
		t.Fatalf("got %q", got)
	}
}

func TestFitLinesPadsAndClips(t *testing.T) {
	got := fitLines("a\nb\nc", 4, 2)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	for i, line := range lines {
		if len(line) != 4 {
			t.Fatalf("line %d = %q, want width 4", i, line)
		}
	}

	got = fitLines("a", 4, 3)
	if strings.Count(got, "\n") != 2 {
		t.Fatalf("short content not padded to height: %q", got)
	}
}

func TestParseRange(t *testing.T) {
	r, err := parseRange("10 50")
	if err != nil || r.Min != 10 || r.Max != 50 {
		t.Fatalf("got %+v, %v", r, err)
	}
	r, err = parseRange("10,50")
	if err != nil || r.Min != 10 || r.Max != 50 {
		t.Fatalf("comma form: got %+v, %v", r, err)
	}
	if _, err := parseRange("10"); err == nil {
		t.Fatalf("single bound accepted")
	}
	if _, err := parseRange("x y"); err == nil {
		t.Fatalf("non-numeric bounds accepted")
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" FedEx, UPS ,,DHL ")
	if len(got) != 3 || got[0] != "FedEx" || got[1] != "UPS" || got[2] != "DHL" {
		t.Fatalf("got %v", got)
	}
	if got := splitList("  "); len(got) != 0 {
		t.Fatalf("blank input: got %v", got)
	}
}

func TestTextBar(t *testing.T) {
	if got := textBar(5, 10, 10); got != strings.Repeat("█", 5) {
		t.Fatalf("got %q", got)
	}
	if got := textBar(0, 10, 10); got != "" {
		t.Fatalf("zero value: got %q", got)
	}
	if got := textBar(1, 100, 10); got != "█" {
		t.Fatalf("small value must stay visible: got %q", got)
	}
}
