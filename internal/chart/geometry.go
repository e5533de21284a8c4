// Package chart turns a weekly series into a gnuplot script and
// post-processes the produced SVG: gnuplot draws the plot, this package owns
// every pixel coordinate so the injected hover overlays line up exactly with
// the plotted points.
package chart

import (
	"math"
	"time"

	"runchart/internal/calweek"
)

// Canvas describes the pixel geometry and styling of the chart. Colors and
// line widths are passed through to gnuplot uninterpreted.
type Canvas struct {
	Width  int
	Height int

	MarginLeft   int
	MarginRight  int
	MarginTop    int
	MarginBottom int

	Font     string
	FontSize int

	LineColor    string
	FillColor    string
	GridColor    string
	AverageColor string
	LineWidth    float64
}

// DefaultCanvas returns the standard 700x400 weekly chart geometry.
func DefaultCanvas() Canvas {
	return Canvas{
		Width:        700,
		Height:       400,
		MarginLeft:   42,
		MarginRight:  21,
		MarginTop:    15,
		MarginBottom: 30,
		Font:         "PT Sans",
		FontSize:     11,
		LineColor:    "#e8710a",
		FillColor:    "#fbe4cf",
		GridColor:    "#dddddd",
		AverageColor: "#629584",
		LineWidth:    2,
	}
}

// PlotWidth is the drawable width between the horizontal margins.
func (c Canvas) PlotWidth() int {
	return c.Width - c.MarginLeft - c.MarginRight
}

// PlotHeight is the drawable height between the vertical margins.
func (c Canvas) PlotHeight() int {
	return c.Height - c.MarginTop - c.MarginBottom
}

// PaddedMax gives the y-axis upper bound: 15% of headroom above the tallest
// point.
func PaddedMax(max float64) float64 {
	return max * 1.15
}

// StepSize returns the y-tick spacing: roughly six gridlines below the
// maximum.
func StepSize(max float64) float64 {
	step := math.Ceil(max / 6)
	if step < 1 {
		step = 1
	}
	return step
}

// Tick is one x-axis tick: a month label anchored to the Monday of the week
// containing the month's first day.
type Tick struct {
	Anchor time.Time
	Label  string
}

// MonthTicks walks calendar months from the first label's month forward and
// emits one tick per month up to and including the last label's date.
func MonthTicks(first, last time.Time) []Tick {
	var ticks []Tick
	m := time.Date(first.Year(), first.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !m.After(last) {
		ticks = append(ticks, Tick{
			Anchor: calweek.Start(m),
			Label:  m.Format("Jan"),
		})
		m = m.AddDate(0, 1, 0)
	}
	return ticks
}

// Point is a series point resolved to pixel coordinates on the canvas.
type Point struct {
	X     int
	Y     int
	Value float64
	Label string
}

// Points maps each series point onto the canvas. The x positions divide the
// plot width evenly; a single-point series is centered. The y position
// scales the value against paddedMax, 0 at the plot bottom.
func Points(labels []string, values []float64, c Canvas, paddedMax float64) []Point {
	n := len(values)
	points := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		var x float64
		if n == 1 {
			x = float64(c.MarginLeft) + float64(c.PlotWidth())/2
		} else {
			x = float64(c.MarginLeft) + float64(c.PlotWidth())*float64(i)/float64(n-1)
		}

		y := float64(c.MarginTop + c.PlotHeight())
		if paddedMax > 0 {
			y = float64(c.MarginTop) + float64(c.PlotHeight())*(1-values[i]/paddedMax)
		}

		points = append(points, Point{
			X:     roundPx(x),
			Y:     roundPx(y),
			Value: values[i],
			Label: labels[i],
		})
	}
	return points
}

// roundPx rounds half-to-even, matching the rounding the plotted SVG uses.
func roundPx(v float64) int {
	return int(math.RoundToEven(v))
}
