package chart

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// ErrRenderingUnavailable signals that the gnuplot binary is missing, failed
// or produced no usable output. Rendering is never retried.
var ErrRenderingUnavailable = errors.New("chart rendering unavailable")

// Renderer drives the external gnuplot process.
type Renderer struct {
	GnuplotPath string
	Timeout     time.Duration
}

// NewRenderer returns a renderer for the given gnuplot binary. An empty path
// falls back to "gnuplot" on PATH.
func NewRenderer(gnuplotPath string, timeout time.Duration) *Renderer {
	if gnuplotPath == "" {
		gnuplotPath = "gnuplot"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Renderer{GnuplotPath: gnuplotPath, Timeout: timeout}
}

// Render writes the script's data file, pipes the script into gnuplot and
// post-processes the resulting SVG: autogenerated titles are stripped and
// one hover overlay per point is injected at the coordinates the script
// itself computed.
func (r *Renderer) Render(ctx context.Context, script *Script) (string, error) {
	if err := os.WriteFile(script.DataFile, []byte(script.DataLines()), 0644); err != nil {
		return "", fmt.Errorf("%w: writing data file: %v", ErrRenderingUnavailable, err)
	}

	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.GnuplotPath)
	cmd.Stdin = strings.NewReader(script.Render())
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%w: gnuplot: %v (%s)", ErrRenderingUnavailable, err, strings.TrimSpace(stderr.String()))
	}

	svg := stdout.String()
	if !strings.Contains(svg, "<svg") {
		return "", fmt.Errorf("%w: gnuplot produced no SVG output", ErrRenderingUnavailable)
	}

	svg = StripAutoTitles(svg)
	return InjectOverlays(svg, script.Points()), nil
}
