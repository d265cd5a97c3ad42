// Package daterange parses human date phrases into inclusive
// [start, end] delivery-date windows.
package daterange

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cargodash/cargodash/internal/model"
)

// Window is a resolved inclusive date range with a display label.
type Window struct {
	From  string
	To    string
	Label string
}

var monthNames = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// Parse resolves a phrase against now. Supported forms: a year ("2024"),
// a quarter ("q1", "Q3 2024"), a month ("march", "mar 2024", "2024-03"),
// explicit dates ("2024-03-01 2024-03-15"), and the relative phrases
// "this/last year", "this/last quarter", "this/last month", "ytd",
// "last N days".
func Parse(phrase string, now time.Time) (Window, error) {
	p := strings.ToLower(strings.TrimSpace(phrase))
	if p == "" {
		return Window{}, fmt.Errorf("empty date phrase")
	}
	fields := strings.Fields(p)

	switch p {
	case "this year":
		return yearWindow(now.Year()), nil
	case "last year":
		return yearWindow(now.Year() - 1), nil
	case "ytd", "year to date":
		start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
		return Window{start.Format(model.DateLayout), now.Format(model.DateLayout), fmt.Sprintf("YTD %d", now.Year())}, nil
	case "this quarter":
		return quarterWindow(now.Year(), (int(now.Month())+2)/3), nil
	case "last quarter":
		q := (int(now.Month())+2)/3 - 1
		year := now.Year()
		if q == 0 {
			q, year = 4, year-1
		}
		return quarterWindow(year, q), nil
	case "this month":
		return monthWindow(now.Year(), now.Month()), nil
	case "last month":
		prev := now.AddDate(0, -1, 0)
		return monthWindow(prev.Year(), prev.Month()), nil
	}

	// last N days
	if len(fields) == 3 && fields[0] == "last" && fields[2] == "days" {
		n, err := strconv.Atoi(fields[1])
		if err != nil || n <= 0 {
			return Window{}, fmt.Errorf("date phrase %q: bad day count", phrase)
		}
		start := now.AddDate(0, 0, -(n - 1))
		return Window{start.Format(model.DateLayout), now.Format(model.DateLayout), fmt.Sprintf("Last %d days", n)}, nil
	}

	// Explicit pair of dates.
	if len(fields) == 2 {
		if _, err1 := time.Parse(model.DateLayout, fields[0]); err1 == nil {
			if _, err2 := time.Parse(model.DateLayout, fields[1]); err2 == nil {
				if fields[0] > fields[1] {
					return Window{}, fmt.Errorf("date phrase %q: start after end", phrase)
				}
				return Window{fields[0], fields[1], fields[0] + " to " + fields[1]}, nil
			}
		}
	}

	// Quarter, optionally with a year.
	if strings.HasPrefix(fields[0], "q") && len(fields[0]) == 2 {
		q := int(fields[0][1] - '0')
		if q >= 1 && q <= 4 {
			year := now.Year()
			if len(fields) == 2 {
				y, err := strconv.Atoi(fields[1])
				if err != nil {
					return Window{}, fmt.Errorf("date phrase %q: bad year", phrase)
				}
				year = y
			}
			return quarterWindow(year, q), nil
		}
	}

	// Month name, optionally with a year.
	if m, ok := monthNames[fields[0]]; ok {
		year := now.Year()
		if len(fields) == 2 {
			y, err := strconv.Atoi(fields[1])
			if err != nil {
				return Window{}, fmt.Errorf("date phrase %q: bad year", phrase)
			}
			year = y
		}
		return monthWindow(year, m), nil
	}

	if len(fields) == 1 {
		// YYYY-MM
		if t, err := time.Parse("2006-01", fields[0]); err == nil {
			return monthWindow(t.Year(), t.Month()), nil
		}
		// Bare year.
		if y, err := strconv.Atoi(fields[0]); err == nil && y >= 1000 && y <= 9999 {
			return yearWindow(y), nil
		}
		// Single explicit date.
		if _, err := time.Parse(model.DateLayout, fields[0]); err == nil {
			return Window{fields[0], fields[0], fields[0]}, nil
		}
	}

	return Window{}, fmt.Errorf("unrecognized date phrase %q", phrase)
}

func yearWindow(year int) Window {
	return Window{
		From:  fmt.Sprintf("%04d-01-01", year),
		To:    fmt.Sprintf("%04d-12-31", year),
		Label: strconv.Itoa(year),
	}
}

func quarterWindow(year, q int) Window {
	start := time.Date(year, time.Month(3*(q-1)+1), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 3, -1)
	return Window{
		From:  start.Format(model.DateLayout),
		To:    end.Format(model.DateLayout),
		Label: fmt.Sprintf("Q%d %d", q, year),
	}
}

func monthWindow(year int, m time.Month) Window {
	start := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return Window{
		From:  start.Format(model.DateLayout),
		To:    end.Format(model.DateLayout),
		Label: fmt.Sprintf("%s %d", m.String(), year),
	}
}
