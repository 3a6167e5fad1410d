package transfer

import "time"

// WindowSpan is a closed month/day range (inclusive on both ends) within a
// calendar year, evaluated in UTC.
type WindowSpan struct {
	StartMonth time.Month
	StartDay   int
	EndMonth   time.Month
	EndDay     int
}

// WindowPolicy answers whether the transfer market is open on a given date.
// Pure calendar arithmetic, no state.
type WindowPolicy struct {
	spans []WindowSpan
}

// DefaultWindowSpans returns the standard winter and summer windows
func DefaultWindowSpans() []WindowSpan {
	return []WindowSpan{
		{StartMonth: time.January, StartDay: 1, EndMonth: time.January, EndDay: 31},
		{StartMonth: time.July, StartDay: 1, EndMonth: time.August, EndDay: 31},
	}
}

// NewWindowPolicy creates a policy over the given spans.
// Nil or empty spans fall back to the defaults.
func NewWindowPolicy(spans []WindowSpan) *WindowPolicy {
	if len(spans) == 0 {
		spans = DefaultWindowSpans()
	}
	return &WindowPolicy{spans: spans}
}

// IsOpen reports whether the market is open on the given date
func (w *WindowPolicy) IsOpen(date time.Time) bool {
	_, open := w.activeSpanEnd(date)
	return open
}

// DaysRemaining returns the number of whole UTC days until the active window
// closes, or 0 when the market is closed. The closing day itself counts.
func (w *WindowPolicy) DaysRemaining(date time.Time) int {
	end, open := w.activeSpanEnd(date)
	if !open {
		return 0
	}
	day := truncateToUTCDay(date)
	return int(end.Sub(day).Hours()/24) + 1
}

// activeSpanEnd returns the end day of the span covering date, if any
func (w *WindowPolicy) activeSpanEnd(date time.Time) (time.Time, bool) {
	day := truncateToUTCDay(date)
	year := day.Year()
	for _, s := range w.spans {
		start := time.Date(year, s.StartMonth, s.StartDay, 0, 0, 0, 0, time.UTC)
		end := time.Date(year, s.EndMonth, s.EndDay, 0, 0, 0, 0, time.UTC)
		if !day.Before(start) && !day.After(end) {
			return end, true
		}
	}
	return time.Time{}, false
}

func truncateToUTCDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
