package chart

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// ErrEmptySeries is returned when a chart is requested for a zero-length
// series.
var ErrEmptySeries = errors.New("empty series")

const isoDate = "2006-01-02"

// Script is the structured description of one weekly chart. It is built
// once from the series and serialized to gnuplot syntax in a single place,
// so tests can assert on the fields instead of matching strings.
type Script struct {
	Canvas   Canvas
	DataFile string

	Labels  []string
	Values  []float64
	Average float64

	Max       float64
	PaddedMax float64
	Step      float64
	Ticks     []Tick
}

// NewScript derives the vertical scale and month ticks for the series.
// Labels must be ISO dates of week Mondays, aligned with values.
func NewScript(labels []string, values []float64, average float64, canvas Canvas, dataFile string) (*Script, error) {
	if len(values) == 0 {
		return nil, ErrEmptySeries
	}
	if len(labels) != len(values) {
		return nil, fmt.Errorf("series mismatch: %d labels, %d values", len(labels), len(values))
	}

	first, err := time.Parse(isoDate, labels[0])
	if err != nil {
		return nil, fmt.Errorf("bad first label %q: %w", labels[0], err)
	}
	last, err := time.Parse(isoDate, labels[len(labels)-1])
	if err != nil {
		return nil, fmt.Errorf("bad last label %q: %w", labels[len(labels)-1], err)
	}

	max := 0.0
	for _, v := range values {
		max = math.Max(max, v)
	}

	return &Script{
		Canvas:    canvas,
		DataFile:  dataFile,
		Labels:    labels,
		Values:    values,
		Average:   average,
		Max:       max,
		PaddedMax: PaddedMax(max),
		Step:      StepSize(max),
		Ticks:     MonthTicks(first, last),
	}, nil
}

// Points resolves the series to pixel coordinates on this script's canvas.
func (s *Script) Points() []Point {
	return Points(s.Labels, s.Values, s.Canvas, s.PaddedMax)
}

// DataLines renders the two-column data file consumed by gnuplot: one
// "<ISO date> <value>" line per point.
func (s *Script) DataLines() string {
	var sb strings.Builder
	for i, label := range s.Labels {
		fmt.Fprintf(&sb, "%s %.1f\n", label, s.Values[i])
	}
	return sb.String()
}

// Render serializes the script to gnuplot syntax. The margins are pinned at
// exact screen fractions so the plot area matches Points() pixel for pixel.
func (s *Script) Render() string {
	c := s.Canvas
	var sb strings.Builder

	// 1. Terminal and canvas
	fmt.Fprintf(&sb, "set terminal svg size %d,%d font \"%s,%d\" background rgb \"white\"\n", c.Width, c.Height, c.Font, c.FontSize)
	sb.WriteString("set encoding utf8\n")
	fmt.Fprintf(&sb, "set lmargin at screen %.6f\n", float64(c.MarginLeft)/float64(c.Width))
	fmt.Fprintf(&sb, "set rmargin at screen %.6f\n", float64(c.Width-c.MarginRight)/float64(c.Width))
	fmt.Fprintf(&sb, "set tmargin at screen %.6f\n", float64(c.Height-c.MarginTop)/float64(c.Height))
	fmt.Fprintf(&sb, "set bmargin at screen %.6f\n", float64(c.MarginBottom)/float64(c.Height))

	// 2. Time x-axis with the default labels hidden; ticks are one per
	// month, anchored to the Monday of the week containing the 1st.
	sb.WriteString("set xdata time\n")
	sb.WriteString("set timefmt \"%Y-%m-%d\"\n")
	sb.WriteString("set format x \"\"\n")
	fmt.Fprintf(&sb, "set xrange [\"%s\":\"%s\"]\n", s.Labels[0], s.Labels[len(s.Labels)-1])
	if len(s.Ticks) > 0 {
		tics := make([]string, 0, len(s.Ticks))
		for _, t := range s.Ticks {
			tics = append(tics, fmt.Sprintf("\"%s\" \"%s\"", t.Label, t.Anchor.Format(isoDate)))
		}
		fmt.Fprintf(&sb, "set xtics (%s)\n", strings.Join(tics, ", "))
	}

	// 3. Vertical scale: step-sized tics plus one extra exactly at the
	// raw maximum.
	fmt.Fprintf(&sb, "set yrange [0:%.6f]\n", s.PaddedMax)
	fmt.Fprintf(&sb, "set ytics %.0f\n", s.Step)
	if s.Max > 0 {
		fmt.Fprintf(&sb, "set ytics add (%.1f)\n", s.Max)
	}
	sb.WriteString("set format y \"%g км\"\n")

	// 4. Grid and styling
	fmt.Fprintf(&sb, "set grid lc rgb \"%s\"\n", c.GridColor)
	sb.WriteString("set border 3\n")
	sb.WriteString("set tics nomirror\n")
	sb.WriteString("set key off\n")
	fmt.Fprintf(&sb, "set style line 1 lc rgb \"%s\" lw %.1f pt 7 ps 0.5\n", c.LineColor, c.LineWidth)
	fmt.Fprintf(&sb, "set style line 2 lc rgb \"%s\" lw 1 dt 2\n", c.AverageColor)

	// 5. Filled area, line with points, and the flat average reference
	fmt.Fprintf(&sb, "plot \"%s\" using 1:2 with filledcurves x1 lc rgb \"%s\" notitle, \\\n", s.DataFile, c.FillColor)
	fmt.Fprintf(&sb, "     \"%s\" using 1:2 with linespoints ls 1 notitle, \\\n", s.DataFile)
	fmt.Fprintf(&sb, "     %.6f with lines ls 2 notitle\n", s.Average)

	return sb.String()
}
