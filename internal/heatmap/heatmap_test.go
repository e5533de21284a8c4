package heatmap

import (
	"strings"
	"testing"

	"runchart/internal/stats"
	"runchart/internal/tracker"
)

func TestGenerate_CellPerDay(t *testing.T) {
	h := stats.BuildHierarchy([]tracker.Activity{
		{ID: 1, SportType: "Run", StartDateLocal: "2025-04-10", Distance: 12000},
	})

	svg := Generate(2025, h, nil)

	if got := strings.Count(svg, "<rect"); got != 365 {
		t.Errorf("expected 365 day cells for 2025, got %d", got)
	}
	if !strings.Contains(svg, `<title>2025-04-10: 12.0 км</title>`) {
		t.Error("missing tooltip for the recorded day")
	}
	if !strings.Contains(svg, `<title>2025-04-11: 0.0 км</title>`) {
		t.Error("missing tooltip for an empty day")
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("unterminated SVG")
	}
}

func TestGenerate_ColorLevels(t *testing.T) {
	opts := DefaultOptions()

	cases := []struct {
		km   float64
		want int
	}{
		{0, 0},
		{0.05, 0},
		{2, 1},
		{7, 2},
		{15, 3},
		{42, 4},
	}
	for _, c := range cases {
		if got := opts.level(c.km); got != c.want {
			t.Errorf("level(%v) = %d, want %d", c.km, got, c.want)
		}
	}
}

func TestGenerate_LeapYear(t *testing.T) {
	h := stats.BuildHierarchy([]tracker.Activity{
		{ID: 1, SportType: "Run", StartDateLocal: "2024-02-29", Distance: 5000},
	})

	svg := Generate(2024, h, nil)
	if got := strings.Count(svg, "<rect"); got != 366 {
		t.Errorf("expected 366 day cells for 2024, got %d", got)
	}
	if !strings.Contains(svg, `<title>2024-02-29: 5.0 км</title>`) {
		t.Error("missing leap-day tooltip")
	}
}
