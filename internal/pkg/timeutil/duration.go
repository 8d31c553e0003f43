package timeutil

import (
	"fmt"
	"time"
)

// FormatHMS formats a duration as "HH:MM:SS" for API display.
// Zero and negative durations render as "00:00:00".
func FormatHMS(d time.Duration) string {
	if d <= 0 {
		return "00:00:00"
	}
	total := int(d.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// FormatHMSPtr is FormatHMS for nullable durations.
func FormatHMSPtr(d *time.Duration) string {
	if d == nil {
		return "00:00:00"
	}
	return FormatHMS(*d)
}

// DayStart truncates t to midnight in t's location.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDate reports whether a and b fall on the same calendar day
// in a's location.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}
