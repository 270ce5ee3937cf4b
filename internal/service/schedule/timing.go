package schedule

import (
	"fmt"
	"time"
)

const clockLayout = "15:04"

// ParseClock parses a wall clock value in "HH:MM" form.
func ParseClock(value string) (time.Time, error) {
	t, err := time.Parse(clockLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid clock value %q: %w", value, err)
	}
	return t, nil
}

// DefaultEndTime returns the session end suggested for a given start, one
// hour later on the clock. The value wraps past midnight, so "23:30" yields
// "00:30". Dashboard clients keep the end field synced to start+1h until the
// operator edits it; this is the reference for that computation.
func DefaultEndTime(startTime string) (string, error) {
	start, err := ParseClock(startTime)
	if err != nil {
		return "", err
	}
	return start.Add(time.Hour).Format(clockLayout), nil
}

// MinStartTime returns the earliest selectable start for a session on the
// given date. Booking earlier today than the current clock is not allowed;
// any other date opens at midnight.
func MinStartTime(date, now time.Time) string {
	if sameDay(date, now) {
		return now.Format(clockLayout)
	}
	return "00:00"
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
