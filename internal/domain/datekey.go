package domain

import (
	"fmt"
	"time"
)

// keyLayout is the 8-digit local-date form used to index Records.
const keyLayout = "20060102"

// KeyForDate returns the Records key for the calendar day of t,
// evaluated in t's location.
func KeyForDate(t time.Time) string {
	return t.Format(keyLayout)
}

// DateForKey parses a Records key back into midnight local time of
// that calendar day.
func DateForKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(keyLayout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date key %q: %w", key, err)
	}
	return t, nil
}

// DaysInMonth returns the number of calendar days in the month of t.
func DaysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// FirstOfMonth returns midnight on the first day of t's month.
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
