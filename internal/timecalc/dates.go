package timecalc

import (
	"fmt"
	"time"
)

// DateLayout is the storage form of an entry date.
const DateLayout = "2006-01-02"

// longDateLayout renders "Monday, January 1, 2024".
const longDateLayout = "Monday, January 2, 2006"

// Today returns now's calendar date in now's location.
func Today(now time.Time) string {
	return now.Format(DateLayout)
}

// ParseDate parses a strict YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// NotAfterToday reports whether date is today or earlier relative to now.
// Dates compare as strings because the layout is zero-padded.
func NotAfterToday(date string, now time.Time) bool {
	return date <= Today(now)
}

// IsToday reports whether date is now's calendar date.
func IsToday(date string, now time.Time) bool {
	return date == Today(now)
}

// LongDate formats a YYYY-MM-DD date for display, e.g.
// "Monday, January 1, 2024". The calendar day is kept as stored; no
// timezone shift is applied. Malformed input is returned unchanged.
func LongDate(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format(longDateLayout)
}
