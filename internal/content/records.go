// Package content writes the generated site artifacts: per-activity record
// files with YAML frontmatter, the weekly chart, per-year heatmaps and the
// summary page. Output files are overwritten wholesale on every build.
package content

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"runchart/internal/tracker"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// frontmatter is the YAML header of one activity record file.
type frontmatter struct {
	Title         string  `yaml:"title"`
	Date          string  `yaml:"date"`
	Sport         string  `yaml:"sport"`
	DistanceKm    float64 `yaml:"distance_km"`
	MovingTime    int     `yaml:"moving_time"`
	ElevationGain float64 `yaml:"elevation_gain"`
	ActivityID    int64   `yaml:"activity_id"`
}

// GroupByYear partitions activities by their local calendar year.
// Activities with unparseable dates are skipped.
func GroupByYear(activities []tracker.Activity) map[int][]tracker.Activity {
	byYear := make(map[int][]tracker.Activity)
	for _, a := range activities {
		day, err := a.LocalDate()
		if err != nil {
			log.Warn().Int64("id", a.ID).Msg("Skipping activity with invalid date in record generation")
			continue
		}
		byYear[day.Year()] = append(byYear[day.Year()], a)
	}
	return byYear
}

// WriteRecords writes one frontmatter-tagged markdown file per activity into
// per-year subdirectories of dir.
func WriteRecords(dir string, activities []tracker.Activity) error {
	for year, group := range GroupByYear(activities) {
		yearDir := filepath.Join(dir, strconv.Itoa(year))
		if err := os.MkdirAll(yearDir, 0755); err != nil {
			return fmt.Errorf("failed to create record directory: %w", err)
		}

		for _, a := range group {
			if err := writeRecord(yearDir, a); err != nil {
				return err
			}
		}
		log.Debug().Int("year", year).Int("count", len(group)).Msg("Wrote activity records")
	}
	return nil
}

func writeRecord(dir string, a tracker.Activity) error {
	day, err := a.LocalDate()
	if err != nil {
		return err
	}

	fm := frontmatter{
		Title:         a.Name,
		Date:          day.Format("2006-01-02"),
		Sport:         a.SportType,
		DistanceKm:    a.DistanceKm(),
		MovingTime:    a.MovingTime,
		ElevationGain: a.TotalElevationGain,
		ActivityID:    a.ID,
	}

	header, err := yaml.Marshal(fm)
	if err != nil {
		return fmt.Errorf("failed to marshal frontmatter: %w", err)
	}

	body := fmt.Sprintf("---\n%s---\n\n%s: %.1f км\n", header, a.Name, a.DistanceKm())
	path := filepath.Join(dir, fmt.Sprintf("%s-%d.md", day.Format("2006-01-02"), a.ID))
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		return fmt.Errorf("failed to write record %s: %w", path, err)
	}
	return nil
}
