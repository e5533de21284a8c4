package chart

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func testScript(t *testing.T, dir string) *Script {
	t.Helper()
	s, err := NewScript(
		[]string{"2025-03-31", "2025-04-07"},
		[]float64{10.5, 12.0},
		10.5,
		testCanvas(),
		filepath.Join(dir, "weekly.dat"),
	)
	if err != nil {
		t.Fatalf("NewScript: %v", err)
	}
	return s
}

func TestRender_MissingBinary(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(filepath.Join(dir, "no-such-gnuplot"), time.Second)

	_, err := r.Render(context.Background(), testScript(t, dir))
	if !errors.Is(err, ErrRenderingUnavailable) {
		t.Fatalf("expected ErrRenderingUnavailable, got %v", err)
	}
}

func TestRender_StubbedGnuplot(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell stub not supported on windows")
	}

	dir := t.TempDir()
	stub := filepath.Join(dir, "gnuplot-stub")
	script := "#!/bin/sh\n" +
		"cat > /dev/null\n" +
		"printf '<svg width=\"700\" height=\"400\"><title>gnuplot_plot_1</title></svg>'\n"
	if err := os.WriteFile(stub, []byte(script), 0755); err != nil {
		t.Fatalf("writing stub: %v", err)
	}

	r := NewRenderer(stub, 5*time.Second)
	s := testScript(t, dir)

	svg, err := r.Render(context.Background(), s)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if strings.Contains(svg, "gnuplot_plot") {
		t.Error("autogenerated title survived post-processing")
	}
	if strings.Count(svg, `class="series-point"`) != 2 {
		t.Errorf("expected 2 injected overlays:\n%s", svg)
	}

	// The data file was written alongside, one line per point.
	data, err := os.ReadFile(s.DataFile)
	if err != nil {
		t.Fatalf("reading data file: %v", err)
	}
	if string(data) != "2025-03-31 10.5\n2025-04-07 12.0\n" {
		t.Errorf("unexpected data file content: %q", data)
	}
}

func TestRender_EmptyOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell stub not supported on windows")
	}

	dir := t.TempDir()
	stub := filepath.Join(dir, "gnuplot-stub")
	if err := os.WriteFile(stub, []byte("#!/bin/sh\ncat > /dev/null\n"), 0755); err != nil {
		t.Fatalf("writing stub: %v", err)
	}

	r := NewRenderer(stub, 5*time.Second)
	_, err := r.Render(context.Background(), testScript(t, dir))
	if !errors.Is(err, ErrRenderingUnavailable) {
		t.Fatalf("expected ErrRenderingUnavailable for empty output, got %v", err)
	}
}
