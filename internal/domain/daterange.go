package domain

import "time"

const DateLayout = "2006-01-02"

// DateRange is an inclusive calendar window. End is normalized to the last
// millisecond of its day so a single-day range covers the whole day.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// StartOfDay truncates t to midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59.999 of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).Add(24*time.Hour - time.Millisecond)
}

// NewDateRange builds a normalized range. A missing bound is left open.
func NewDateRange(start, end *time.Time) DateRange {
	var r DateRange
	if start != nil {
		r.Start = StartOfDay(*start)
	}
	if end != nil {
		r.End = EndOfDay(*end)
	}
	return r
}

// TrailingDays covers the last n days up to the end of today.
func TrailingDays(now time.Time, n int) DateRange {
	return DateRange{
		Start: StartOfDay(now.AddDate(0, 0, -n)),
		End:   EndOfDay(now),
	}
}

func (r DateRange) HasStart() bool { return !r.Start.IsZero() }
func (r DateRange) HasEnd() bool   { return !r.End.IsZero() }

// Contains reports whether t falls inside the range; open bounds always match.
func (r DateRange) Contains(t time.Time) bool {
	if r.HasStart() && t.Before(r.Start) {
		return false
	}
	if r.HasEnd() && t.After(r.End) {
		return false
	}
	return true
}

// Validate rejects ranges whose start falls after their end.
func (r DateRange) Validate() error {
	if r.HasStart() && r.HasEnd() && r.Start.After(r.End) {
		return Validation("startDate must be before endDate")
	}
	return nil
}
