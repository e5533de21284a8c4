package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"runchart/cmd/mockgen/engine"
)

func main() {
	scenario := flag.String("scenario", "steady", "Scenario to generate: steady, buildup, erratic")
	sport := flag.String("sport", "Run", "Sport type for the generated activities")
	outDir := flag.String("out", "./.cache", "Output directory for mock cache files")
	days := flag.Int("days", 365, "Number of days of history to generate")
	flag.Parse()

	cfg := engine.GeneratorConfig{
		Scenario: *scenario,
		Sport:    *sport,
		Days:     *days,
		Now:      time.Now(),
	}

	fmt.Printf("Generating scenario '%s' (Sport: %s, Days: %d) to %s...\n", cfg.Scenario, cfg.Sport, cfg.Days, *outDir)

	activities := engine.Generate(cfg)

	if err := engine.Save(*outDir, cfg.Sport, activities); err != nil {
		fmt.Printf("Failed to save mock data: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Done. %d activities written.\n", len(activities))
}
