package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"runchart/internal/tracker"
)

func TestWriteRecords(t *testing.T) {
	dir := t.TempDir()

	activities := []tracker.Activity{
		{ID: 101, Name: "Morning Run", SportType: "Run", StartDateLocal: "2025-04-10T06:12:00Z", Distance: 12000, MovingTime: 3600, TotalElevationGain: 80},
		{ID: 55, Name: "Old Run", SportType: "Run", StartDateLocal: "2024-11-05", Distance: 5000},
		{ID: 9, Name: "Broken", SportType: "Run", StartDateLocal: "???", Distance: 1000},
	}

	if err := WriteRecords(dir, activities); err != nil {
		t.Fatalf("WriteRecords: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "2025", "2025-04-10-101.md"))
	if err != nil {
		t.Fatalf("record file missing: %v", err)
	}
	text := string(data)

	for _, want := range []string{
		"---\n",
		"title: Morning Run",
		"date:",
		"2025-04-10",
		"sport: Run",
		"distance_km: 12",
		"activity_id: 101",
		"Morning Run: 12.0 км",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("record missing %q:\n%s", want, text)
		}
	}

	if _, err := os.Stat(filepath.Join(dir, "2024", "2024-11-05-55.md")); err != nil {
		t.Errorf("2024 record missing: %v", err)
	}

	// The activity with a broken date produces no file anywhere.
	entries, _ := os.ReadDir(dir)
	if len(entries) != 2 {
		t.Errorf("expected 2 year directories, got %d", len(entries))
	}
}

func TestGroupByYear(t *testing.T) {
	groups := GroupByYear([]tracker.Activity{
		{ID: 1, StartDateLocal: "2024-12-31"},
		{ID: 2, StartDateLocal: "2025-01-01"},
		{ID: 3, StartDateLocal: "2025-06-15"},
	})

	if len(groups[2024]) != 1 || len(groups[2025]) != 2 {
		t.Errorf("unexpected grouping: 2024=%d 2025=%d", len(groups[2024]), len(groups[2025]))
	}
}
