// Package dates holds the local-calendar date helpers used across the
// tracker. All dates are represented as zero-padded YYYY-MM-DD strings in
// local time, never UTC, so a workout logged at 11pm stays on the day the
// user actually trained.
package dates

import (
	"strings"
	"time"
)

// ISOLayout is the canonical date representation.
const ISOLayout = "2006-01-02"

// DayKeys are the seven fixed weekday keys of a routine, Monday first.
var DayKeys = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

// ToISO formats a time as a local-calendar YYYY-MM-DD string.
func ToISO(t time.Time) string {
	return t.Format(ISOLayout)
}

// TodayISO returns today's local date.
func TodayISO() string {
	return ToISO(time.Now())
}

// FromISO parses a YYYY-MM-DD string into a local-calendar time at midnight.
// Round-trip exact: FromISO(ToISO(d)) yields the same calendar date.
func FromISO(s string) (time.Time, error) {
	return time.ParseInLocation(ISOLayout, strings.TrimSpace(s), time.Local)
}

// IsValidISO reports whether s is a parseable ISO date.
func IsValidISO(s string) bool {
	_, err := FromISO(s)
	return err == nil
}

// AddDays shifts an ISO date by n calendar days. Returns the input unchanged
// when it does not parse, so comparisons degrade instead of exploding.
func AddDays(iso string, n int) string {
	t, err := FromISO(iso)
	if err != nil {
		return iso
	}
	return ToISO(t.AddDate(0, 0, n))
}

// WeekStart returns midnight of the first day of the week containing ref,
// honoring the profile's week-start preference ("mon" or "sun").
func WeekStart(ref time.Time, weekStart string) time.Time {
	wd := int(ref.Weekday()) // 0 = Sunday
	var back int
	if weekStart == "sun" {
		back = wd
	} else {
		if wd == 0 {
			back = 6
		} else {
			back = wd - 1
		}
	}
	start := ref.AddDate(0, 0, -back)
	return time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, ref.Location())
}

// DayKey maps a time to its routine weekday key ("mon".."sun").
func DayKey(t time.Time) string {
	switch t.Weekday() {
	case time.Monday:
		return "mon"
	case time.Tuesday:
		return "tue"
	case time.Wednesday:
		return "wed"
	case time.Thursday:
		return "thu"
	case time.Friday:
		return "fri"
	case time.Saturday:
		return "sat"
	default:
		return "sun"
	}
}
