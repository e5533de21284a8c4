// Package stats aggregates raw activities into week-bucketed series and
// summary statistics. All functions are pure: the reference date ("today")
// is always an explicit parameter and nothing is cached between calls.
package stats

import (
	"math"
	"time"

	"runchart/internal/calweek"
	"runchart/internal/tracker"

	"github.com/rs/zerolog/log"
)

const isoDate = "2006-01-02"

// WeeklyResult is the aggregated view over the trailing weeks.
//
// Total, Average, Maximum and MaxIndex are computed over all weeks EXCEPT
// the last one: the current week is still in progress and would skew
// running maxima and averages.
type WeeklyResult struct {
	// Labels holds the ISO dates of consecutive week Mondays, oldest first.
	Labels []string `json:"labels"`
	// Values holds kilometers per week, aligned with Labels, rounded to
	// one decimal place.
	Values []float64 `json:"values"`
	// Days is the full year->week->day hierarchy over every input
	// activity, independent of the trailing-weeks window.
	Days Hierarchy `json:"dates"`

	CurrentWeekKm float64 `json:"current_week_km"`

	Total        float64   `json:"total"`
	Average      float64   `json:"average"`
	Maximum      float64   `json:"maximum"`
	MaxIndex     int       `json:"max_index"`
	MaxWeekStart time.Time `json:"max_week_start"`
	MaxWeekLabel string    `json:"max_week_label"`
}

// Weekly buckets activities into the trailing weekCount calendar weeks
// ending at today's week and computes the summary statistics.
func Weekly(activities []tracker.Activity, weekCount int, today time.Time) WeeklyResult {
	today = calweek.Date(today)
	result := WeeklyResult{Days: BuildHierarchy(activities)}

	if weekCount <= 0 {
		return result
	}

	// 1. Bucket distances by week Monday. Records outside the trailing
	// window are ignored, both boundaries inclusive.
	startDate := today.AddDate(0, 0, -7*(weekCount-1))
	buckets := make(map[time.Time]float64)
	for _, a := range activities {
		day, err := a.LocalDate()
		if err != nil {
			// The loader validates dates; anything that slips
			// through is dropped, not fatal.
			log.Warn().Int64("id", a.ID).Msg("Skipping activity with invalid date during bucketing")
			continue
		}
		if day.Before(startDate) || day.After(today) {
			continue
		}
		buckets[calweek.Start(day)] += a.Distance / 1000.0
	}

	// 2. Label series: weekCount consecutive Mondays ending at the
	// current week's Monday.
	currentMonday := calweek.Start(today)
	result.Labels = make([]string, weekCount)
	result.Values = make([]float64, weekCount)
	for i := 0; i < weekCount; i++ {
		monday := currentMonday.AddDate(0, 0, -7*(weekCount-1-i))
		result.Labels[i] = monday.Format(isoDate)
		result.Values[i] = round1(buckets[monday])
	}

	result.CurrentWeekKm = result.Values[weekCount-1]

	// 3. Summary statistics over everything but the trailing week.
	head := result.Values[:weekCount-1]
	for i, v := range head {
		result.Total += v
		if v > result.Maximum {
			result.Maximum = v
			result.MaxIndex = i
		}
	}
	if len(head) > 0 {
		result.Average = result.Total / float64(len(head))
		maxMonday, _ := time.Parse(isoDate, result.Labels[result.MaxIndex])
		result.MaxWeekStart = maxMonday
		result.MaxWeekLabel = maxMonday.Format("02.01.2006")
	}

	return result
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
