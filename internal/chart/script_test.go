package chart

import (
	"errors"
	"strings"
	"testing"
)

func TestNewScript_EmptySeries(t *testing.T) {
	_, err := NewScript(nil, nil, 0, testCanvas(), "weekly.dat")
	if !errors.Is(err, ErrEmptySeries) {
		t.Fatalf("expected ErrEmptySeries, got %v", err)
	}
}

func TestNewScript_Scale(t *testing.T) {
	labels := []string{"2025-03-24", "2025-03-31", "2025-04-07"}
	values := []float64{12.0, 61.0, 30.5}

	s, err := NewScript(labels, values, 36.5, testCanvas(), "weekly.dat")
	if err != nil {
		t.Fatalf("NewScript: %v", err)
	}

	if s.Max != 61.0 {
		t.Errorf("Max = %v, want 61.0", s.Max)
	}
	if s.PaddedMax != 61.0*1.15 {
		t.Errorf("PaddedMax = %v, want %v", s.PaddedMax, 61.0*1.15)
	}
	if s.Step != 11 {
		t.Errorf("Step = %v, want 11", s.Step)
	}
	if len(s.Ticks) != 2 {
		t.Errorf("expected Mar and Apr ticks, got %d", len(s.Ticks))
	}
}

func TestScript_DataLines(t *testing.T) {
	s, err := NewScript([]string{"2025-03-31", "2025-04-07"}, []float64{10.5, 12.0}, 10.5, testCanvas(), "weekly.dat")
	if err != nil {
		t.Fatalf("NewScript: %v", err)
	}

	want := "2025-03-31 10.5\n2025-04-07 12.0\n"
	if got := s.DataLines(); got != want {
		t.Errorf("DataLines = %q, want %q", got, want)
	}
}

func TestScript_Render(t *testing.T) {
	labels := []string{"2025-03-24", "2025-03-31", "2025-04-07"}
	s, err := NewScript(labels, []float64{12.0, 61.0, 30.5}, 36.5, testCanvas(), "weekly.dat")
	if err != nil {
		t.Fatalf("NewScript: %v", err)
	}

	text := s.Render()

	for _, want := range []string{
		"set terminal svg size 700,400 font \"PT Sans,11\"",
		// margins pinned at exact screen fractions: 42/700, (700-21)/700,
		// (400-15)/400, 30/400
		"set lmargin at screen 0.060000",
		"set rmargin at screen 0.970000",
		"set tmargin at screen 0.962500",
		"set bmargin at screen 0.075000",
		"set xdata time",
		"set format x \"\"",
		"set xrange [\"2025-03-24\":\"2025-04-07\"]",
		"set xtics (\"Mar\" \"2025-02-24\", \"Apr\" \"2025-03-31\")",
		"set ytics 11",
		"set ytics add (61.0)",
		"set format y \"%g км\"",
		"with filledcurves x1",
		"with linespoints ls 1",
		"36.500000 with lines ls 2",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("script missing %q\n---\n%s", want, text)
		}
	}
}

func TestScript_RenderSkipsMaxTicForZeroSeries(t *testing.T) {
	s, err := NewScript([]string{"2025-03-31", "2025-04-07"}, []float64{0, 0}, 0, testCanvas(), "weekly.dat")
	if err != nil {
		t.Fatalf("NewScript: %v", err)
	}
	if strings.Contains(s.Render(), "set ytics add") {
		t.Error("zero-max series must not add a max tick")
	}
}
