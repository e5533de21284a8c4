package engine

import (
	"bufio"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"runchart/internal/tracker"
)

type GeneratorConfig struct {
	Scenario string // "steady", "buildup" or "erratic"
	Sport    string
	Days     int
	Now      time.Time
}

// Generate produces a synthetic activity history ending at cfg.Now. Roughly
// every other day carries a run, with distances shaped by the scenario.
func Generate(cfg GeneratorConfig) []tracker.Activity {
	if cfg.Now.IsZero() {
		cfg.Now = time.Now()
	}
	if cfg.Sport == "" {
		cfg.Sport = "Run"
	}

	start := cfg.Now.AddDate(0, 0, -cfg.Days)

	var activities []tracker.Activity
	id := int64(1)

	for i := 0; i < cfg.Days; i++ {
		day := start.AddDate(0, 0, i)

		// 1. Rest day roughly every other day
		if rand.Float64() < 0.45 {
			continue
		}

		// 2. Sample a distance for the scenario
		km := 5.0 + rand.Float64()*5.0 // steady: 5-10 km
		switch cfg.Scenario {
		case "buildup":
			ratio := float64(i) / float64(cfg.Days)
			km = 4.0 + 10.0*ratio + rand.Float64()*3.0
		case "erratic":
			km = 2.0 + rand.Float64()*6.0
			if rand.Float64() < 0.1 {
				km += 15 + rand.Float64()*15 // the occasional long run
			}
		}

		// 3. Derive plausible time and elevation figures from the distance
		pace := 300 + rand.Intn(90) // seconds per km
		moving := int(km * float64(pace))

		activities = append(activities, tracker.Activity{
			ID:                 id,
			Name:               fmt.Sprintf("Morning %s %d", cfg.Sport, id),
			SportType:          cfg.Sport,
			StartDateLocal:     day.Format("2006-01-02T07:30:00"),
			Distance:           km * 1000,
			MovingTime:         moving,
			ElapsedTime:        moving + rand.Intn(120),
			TotalElevationGain: km * (5 + rand.Float64()*15),
			AverageSpeed:       km * 1000 / float64(moving),
		})
		id++
	}

	return activities
}

// Save writes the activities as a JSONL cache file for the sport, in the
// same layout the sync command produces.
func Save(outDir string, sport string, activities []tracker.Activity) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	path := filepath.Join(outDir, fmt.Sprintf("%s.jsonl", sport))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for _, a := range activities {
		if err := enc.Encode(a); err != nil {
			return err
		}
	}
	return w.Flush()
}
