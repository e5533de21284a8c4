package tracker

import (
	"fmt"
	"time"
)

// Activity represents a single recorded workout as returned by the tracker
// API. Distances are meters, durations are seconds.
type Activity struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	SportType          string  `json:"sport_type"`
	StartDateLocal     string  `json:"start_date_local"`
	Distance           float64 `json:"distance"`
	MovingTime         int     `json:"moving_time"`
	ElapsedTime        int     `json:"elapsed_time"`
	TotalElevationGain float64 `json:"total_elevation_gain"`
	AverageSpeed       float64 `json:"average_speed"`
}

// dateLayouts are the accepted formats of StartDateLocal, most specific first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// LocalDate returns the calendar date the activity started on, normalized to
// midnight UTC for day arithmetic.
func (a Activity) LocalDate() (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, a.StartDateLocal); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable activity date %q", a.StartDateLocal)
}

// DistanceKm returns the activity distance in kilometers.
func (a Activity) DistanceKm() float64 {
	return a.Distance / 1000.0
}
