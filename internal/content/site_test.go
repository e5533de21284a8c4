package content

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"runchart/internal/chart"
	"runchart/internal/tracker"
)

func stubRenderer(t *testing.T) *chart.Renderer {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stub not supported on windows")
	}

	stub := filepath.Join(t.TempDir(), "gnuplot-stub")
	script := "#!/bin/sh\n" +
		"cat > /dev/null\n" +
		"printf '<svg width=\"700\" height=\"400\"></svg>'\n"
	if err := os.WriteFile(stub, []byte(script), 0755); err != nil {
		t.Fatalf("writing stub: %v", err)
	}
	return chart.NewRenderer(stub, 5*time.Second)
}

func TestBuild(t *testing.T) {
	out := t.TempDir()
	b := &Builder{
		OutputDir: out,
		Weeks:     4,
		Canvas:    chart.DefaultCanvas(),
		Renderer:  stubRenderer(t),
	}

	activities := []tracker.Activity{
		{ID: 1, Name: "Run A", SportType: "Run", StartDateLocal: "2025-03-27", Distance: 10000},
		{ID: 2, Name: "Run B", SportType: "Run", StartDateLocal: "2025-04-10", Distance: 12000},
	}
	today := time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC)

	result, err := b.Build(context.Background(), activities, today)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if result.CurrentWeekKm != 12.0 {
		t.Errorf("CurrentWeekKm = %v, want 12.0", result.CurrentWeekKm)
	}

	for _, name := range []string{"weekly.svg", "weekly.dat", "heatmap-2025.svg", "index.md"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("missing output %s: %v", name, err)
		}
	}

	svg, err := os.ReadFile(filepath.Join(out, "weekly.svg"))
	if err != nil {
		t.Fatalf("reading weekly.svg: %v", err)
	}
	if got := strings.Count(string(svg), `class="series-point"`); got != 4 {
		t.Errorf("expected 4 injected overlays, got %d", got)
	}

	index, _ := os.ReadFile(filepath.Join(out, "index.md"))
	if !strings.Contains(string(index), "Current week: 12.0 км") {
		t.Errorf("summary missing current week line:\n%s", index)
	}

	if _, err := os.Stat(filepath.Join(out, "records", "2025", "2025-04-10-2.md")); err != nil {
		t.Errorf("missing record file: %v", err)
	}
}
