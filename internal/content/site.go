package content

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"runchart/internal/chart"
	"runchart/internal/config"
	"runchart/internal/heatmap"
	"runchart/internal/stats"
	"runchart/internal/tracker"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Builder composes the output directory from raw activities: weekly chart,
// per-year heatmaps, record files and a summary page.
type Builder struct {
	OutputDir string
	Weeks     int
	Canvas    chart.Canvas
	Renderer  *chart.Renderer
}

// NewBuilder wires a Builder from the application configuration.
func NewBuilder(cfg *config.AppConfig) *Builder {
	return &Builder{
		OutputDir: cfg.OutputDir,
		Weeks:     cfg.Weeks,
		Canvas:    chart.DefaultCanvas(),
		Renderer:  chart.NewRenderer(cfg.GnuplotPath, cfg.ChartTimeout),
	}
}

// Build recomputes everything from the given activities and overwrites the
// output files. A rendering failure aborts the build and is surfaced to the
// caller.
func (b *Builder) Build(ctx context.Context, activities []tracker.Activity, today time.Time) (stats.WeeklyResult, error) {
	result := stats.Weekly(activities, b.Weeks, today)

	// 1. Weekly chart via gnuplot
	script, err := chart.NewScript(result.Labels, result.Values, result.Average, b.Canvas, filepath.Join(b.OutputDir, "weekly.dat"))
	if err != nil {
		return result, fmt.Errorf("building chart script: %w", err)
	}
	svg, err := b.Renderer.Render(ctx, script)
	if err != nil {
		return result, err
	}
	if err := os.WriteFile(filepath.Join(b.OutputDir, "weekly.svg"), []byte(svg), 0644); err != nil {
		return result, fmt.Errorf("writing weekly chart: %w", err)
	}

	// 2. Per-year heatmaps, rendered concurrently
	g, _ := errgroup.WithContext(ctx)
	for _, year := range result.Days.Years() {
		g.Go(func() error {
			hm := heatmap.Generate(year, result.Days, nil)
			path := filepath.Join(b.OutputDir, fmt.Sprintf("heatmap-%d.svg", year))
			if err := os.WriteFile(path, []byte(hm), 0644); err != nil {
				return fmt.Errorf("writing heatmap for %d: %w", year, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return result, err
	}

	// 3. Record files and summary page
	if err := WriteRecords(filepath.Join(b.OutputDir, "records"), activities); err != nil {
		return result, err
	}
	if err := b.writeSummary(result); err != nil {
		return result, err
	}

	log.Info().
		Int("weeks", len(result.Labels)).
		Float64("total", result.Total).
		Str("out", b.OutputDir).
		Msg("Site build complete")
	return result, nil
}

// writeSummary overwrites the summary page with the current computed state.
func (b *Builder) writeSummary(result stats.WeeklyResult) error {
	var body string
	body += "# Weekly distance\n\n"
	body += "![weekly](weekly.svg)\n\n"
	body += fmt.Sprintf("- Current week: %.1f км\n", result.CurrentWeekKm)
	body += fmt.Sprintf("- Total: %.1f км\n", result.Total)
	body += fmt.Sprintf("- Average: %.1f км\n", result.Average)
	if result.MaxWeekLabel != "" {
		body += fmt.Sprintf("- Best week: %.1f км (%s)\n", result.Maximum, result.MaxWeekLabel)
	}
	body += "\n"
	for _, year := range result.Days.Years() {
		body += fmt.Sprintf("![heatmap %d](heatmap-%d.svg)\n", year, year)
	}

	path := filepath.Join(b.OutputDir, "index.md")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		return fmt.Errorf("writing summary page: %w", err)
	}
	return nil
}

// IndexPath returns the path of the generated summary page.
func (b *Builder) IndexPath() string {
	return filepath.Join(b.OutputDir, "index.md")
}
