package utils

import (
	"fmt"
	"time"
)

// Canonical layouts for stored dates and times. All day boundaries are UTC.
const (
	DateLayout    = "2006-01-02"
	TimeLayout    = "15:04"
	DisplayLayout = "Monday, 02 Jan 2006"
)

// ParseDate parses a "YYYY-MM-DD" string into a UTC midnight instant.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return t.UTC(), nil
}

// ParseClock parses a zero-padded "HH:MM" string into hour and minute.
func ParseClock(s string) (int, int, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q, expected HH:MM: %w", s, err)
	}
	return t.Hour(), t.Minute(), nil
}

// FormatDate renders an instant as its UTC calendar date.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// FormatClock renders a zero-padded "HH:MM" time.
func FormatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// FormatDisplayDate renders a human-readable date, e.g. "Tuesday, 03 Mar 2026".
func FormatDisplayDate(t time.Time) string {
	return t.UTC().Format(DisplayLayout)
}

// StartOfDayUTC truncates an instant to UTC midnight. Window bounds go
// through this so calendar iteration cannot drift across day boundaries.
func StartOfDayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// SameUTCDay reports whether two instants fall on the same UTC calendar day.
func SameUTCDay(a, b time.Time) bool {
	au, bu := a.UTC(), b.UTC()
	ay, am, ad := au.Date()
	by, bm, bd := bu.Date()
	return ay == by && am == bm && ad == bd
}
