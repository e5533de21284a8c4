package stats

import (
	"slices"
	"time"

	"runchart/internal/calweek"
	"runchart/internal/tracker"
)

// Hierarchy nests activities by year, week Monday and day (ISO dates).
// Every day of every covered calendar year is present, with an empty bucket
// when nothing was recorded, so heatmap rendering never has to special-case
// missing days.
type Hierarchy map[int]map[string]map[string][]tracker.Activity

// BuildHierarchy spans full calendar years from the earliest to the latest
// activity and appends each activity into its own day's bucket, preserving
// input order within a day.
func BuildHierarchy(activities []tracker.Activity) Hierarchy {
	h := Hierarchy{}

	minYear, maxYear := 0, 0
	for _, a := range activities {
		day, err := a.LocalDate()
		if err != nil {
			continue
		}
		if minYear == 0 || day.Year() < minYear {
			minYear = day.Year()
		}
		if day.Year() > maxYear {
			maxYear = day.Year()
		}
	}
	if minYear == 0 {
		return h
	}

	// 1. Pre-populate an empty bucket for every day in the span.
	day := time.Date(minYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(maxYear, time.December, 31, 0, 0, 0, 0, time.UTC)
	for !day.After(last) {
		h.bucket(day)
		day = day.AddDate(0, 0, 1)
	}

	// 2. Append activities into their own day, in input order.
	for _, a := range activities {
		d, err := a.LocalDate()
		if err != nil {
			continue
		}
		key := d.Format(isoDate)
		week := h.bucket(d)
		week[key] = append(week[key], a)
	}

	return h
}

// bucket ensures the nested maps down to d's day exist and returns the
// week-level map.
func (h Hierarchy) bucket(d time.Time) map[string][]tracker.Activity {
	year := d.Year()
	weekKey := calweek.Start(d).Format(isoDate)
	dayKey := d.Format(isoDate)

	if h[year] == nil {
		h[year] = make(map[string]map[string][]tracker.Activity)
	}
	if h[year][weekKey] == nil {
		h[year][weekKey] = make(map[string][]tracker.Activity)
	}
	if _, ok := h[year][weekKey][dayKey]; !ok {
		h[year][weekKey][dayKey] = []tracker.Activity{}
	}
	return h[year][weekKey]
}

// Day returns the activities recorded on the given day, or nil when the day
// is outside the hierarchy's span.
func (h Hierarchy) Day(d time.Time) []tracker.Activity {
	week, ok := h[d.Year()][calweek.Start(d).Format(isoDate)]
	if !ok {
		return nil
	}
	return week[d.Format(isoDate)]
}

// Years returns the covered years in ascending order.
func (h Hierarchy) Years() []int {
	var years []int
	for y := range h {
		years = append(years, y)
	}
	slices.Sort(years)
	return years
}
