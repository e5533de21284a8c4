// Package calweek implements the calendar-week arithmetic used throughout
// the aggregation and chart layers: Monday-anchored week boundaries and a
// per-year week ordinal.
//
// The ordinal is NOT the ISO-8601 week number. Week 1 of a year ends on the
// first week boundary on or after January 1st, and every later week follows
// in 7-day steps. The first week of a year may therefore be shorter than
// seven days.
package calweek

import (
	"fmt"
	"time"
)

// weekdayIndex maps time.Weekday onto 0 (Monday) .. 6 (Sunday).
func weekdayIndex(d time.Time) int {
	return (int(d.Weekday()) + 6) % 7
}

// Date strips the clock component, normalizing to midnight UTC so that
// day-difference arithmetic is exact regardless of the input location.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Start returns the Monday on or before d.
func Start(d time.Time) time.Time {
	d = Date(d)
	return d.AddDate(0, 0, -weekdayIndex(d))
}

// End returns the Sunday of d's week.
func End(d time.Time) time.Time {
	return Start(d).AddDate(0, 0, 6)
}

// FirstWeekEnd returns the last day of week 1 of the given year:
// January 1st plus (7 - weekdayIndex(Jan 1)) mod 7 days.
func FirstWeekEnd(year int) time.Time {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return jan1.AddDate(0, 0, (7-weekdayIndex(jan1))%7)
}

// Index returns the calendar week ordinal of d within its year, starting
// at 1. The boundary day itself still belongs to week 1.
func Index(d time.Time) int {
	d = Date(d)
	firstEnd := FirstWeekEnd(d.Year())
	if !d.After(firstEnd) {
		return 1
	}
	days := int(d.Sub(firstEnd.AddDate(0, 0, 1)).Hours() / 24)
	return 2 + days/7
}

// YearWeekKey returns a "{year}-{week}" grouping key with the week index
// left-padded to two digits.
func YearWeekKey(d time.Time) string {
	return fmt.Sprintf("%d-%02d", d.Year(), Index(d))
}
