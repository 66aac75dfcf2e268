package analytics

import (
	"time"
)

// DefaultWindowDays is the trailing window applied when the caller supplies
// no usable date range.
const DefaultWindowDays = 30

// Window bounds which transactional records participate in one analysis
// pass. Both ends are inclusive.
type Window struct {
	From time.Time
	To   time.Time
}

// NewWindow builds a window, swapping the bounds when they arrive reversed.
func NewWindow(from, to time.Time) Window {
	if from.After(to) {
		from, to = to, from
	}
	return Window{From: from, To: to}
}

// DefaultWindow returns the trailing default window ending at now.
func DefaultWindow(now time.Time, days int) Window {
	if days <= 0 {
		days = DefaultWindowDays
	}
	now = now.UTC()
	return Window{From: now.AddDate(0, 0, -days), To: now}
}

// ResolveWindow parses RFC3339 bounds. Malformed or missing input falls back
// to the default window rather than failing the pass.
func ResolveWindow(fromRaw, toRaw string, now time.Time, defaultDays int) Window {
	if fromRaw == "" || toRaw == "" {
		return DefaultWindow(now, defaultDays)
	}
	from, err := time.Parse(time.RFC3339, fromRaw)
	if err != nil {
		return DefaultWindow(now, defaultDays)
	}
	to, err := time.Parse(time.RFC3339, toRaw)
	if err != nil {
		return DefaultWindow(now, defaultDays)
	}
	return NewWindow(from.UTC(), to.UTC())
}

// Days returns the window span in whole days, never less than 1 so velocity
// division stays defined for zero-width windows.
func (w Window) Days() int {
	days := DaysBetween(w.From, w.To)
	if days < 1 {
		return 1
	}
	return days
}

// Contains reports whether ts falls inside the inclusive window.
func (w Window) Contains(ts time.Time) bool {
	return !ts.Before(w.From) && !ts.After(w.To)
}

// DaysBetween is the canonical whole-day distance used by every derived
// metric. Fractional days truncate.
func DaysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
