// Package heatmap renders the year/week/day hierarchy as a GitHub-style
// calendar heatmap SVG. Columns are Monday-anchored weeks; cell color scales
// with the day's total distance.
package heatmap

import (
	"fmt"
	"strings"
	"time"

	"runchart/internal/calweek"
	"runchart/internal/stats"
)

// Options configures cell geometry and the color scale.
type Options struct {
	CellSize    int
	CellPadding int
	FontSize    int
	FontFamily  string
	Colors      []string  // levels 0..N-1, level 0 is the empty-day color
	LevelsKm    []float64 // thresholds for levels 1..N-1, km per day
}

// DefaultOptions returns the standard rendering parameters.
func DefaultOptions() *Options {
	return &Options{
		CellSize:    12,
		CellPadding: 2,
		FontSize:    10,
		FontFamily:  "sans-serif",
		Colors:      []string{"#ebedf0", "#fbe4cf", "#f5b97a", "#ee8f33", "#c96a0a"},
		LevelsKm:    []float64{0.1, 5, 10, 20},
	}
}

// Generate renders one calendar year of the hierarchy. The year's days are
// laid out in Monday-anchored columns; every day carries a tooltip with its
// date and total kilometers.
func Generate(year int, h stats.Hierarchy, opts *Options) string {
	if opts == nil {
		opts = DefaultOptions()
	}

	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	dec31 := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	firstMonday := calweek.Start(jan1)

	weeks := int(dec31.Sub(firstMonday).Hours()/24)/7 + 1

	cell := opts.CellSize + opts.CellPadding
	width := weeks*cell + opts.CellPadding
	height := 7*cell + opts.CellPadding + opts.FontSize + 4

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`+"\n", width, height)
	fmt.Fprintf(&sb, `  <style>.label{font-family:%s;font-size:%dpx;fill:#666}</style>`+"\n", opts.FontFamily, opts.FontSize)

	// month labels above the first column of each month
	lastMonth := time.Month(0)
	for w := 0; w < weeks; w++ {
		monday := firstMonday.AddDate(0, 0, 7*w)
		if monday.Year() == year && monday.Day() <= 7 && monday.Month() != lastMonth {
			x := opts.CellPadding + w*cell
			fmt.Fprintf(&sb, `  <text x="%d" y="%d" class="label">%s</text>`+"\n", x, opts.FontSize, monday.Format("Jan"))
			lastMonth = monday.Month()
		}
	}

	for w := 0; w < weeks; w++ {
		for i := 0; i < 7; i++ {
			day := firstMonday.AddDate(0, 0, 7*w+i)
			if day.Year() != year {
				continue
			}

			km := 0.0
			for _, a := range h.Day(day) {
				km += a.Distance / 1000.0
			}

			x := opts.CellPadding + w*cell
			y := opts.CellPadding + opts.FontSize + 4 + i*cell
			key := day.Format("2006-01-02")

			fmt.Fprintf(&sb, `  <rect x="%d" y="%d" width="%d" height="%d" fill="%s" data-date="%s">`+"\n",
				x, y, opts.CellSize, opts.CellSize, opts.Colors[opts.level(km)], key)
			fmt.Fprintf(&sb, `    <title>%s: %.1f км</title>`+"\n", key, km)
			sb.WriteString(`  </rect>` + "\n")
		}
	}

	sb.WriteString(`</svg>`)
	return sb.String()
}

// level maps a day's kilometers onto a color index via the configured
// thresholds.
func (o *Options) level(km float64) int {
	level := 0
	for i, threshold := range o.LevelsKm {
		if km >= threshold {
			level = i + 1
		}
	}
	if level >= len(o.Colors) {
		level = len(o.Colors) - 1
	}
	return level
}
