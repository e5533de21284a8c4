package chart

import (
	"fmt"
	"regexp"
	"strings"
)

// gnuplot names every plot element "gnuplot_plot_N"; those titles leak into
// hover tooltips and must go.
var autoTitleRe = regexp.MustCompile(`<title>gnuplot_plot_\d+</title>\s*`)

// StripAutoTitles removes gnuplot's autogenerated <title> elements from the
// produced SVG.
func StripAutoTitles(svg string) string {
	return autoTitleRe.ReplaceAllString(svg, "")
}

// InjectOverlays appends one interactive group per series point just before
// the closing tag. Each group is translated to the point's pixel position
// and carries an invisible hover circle with a tooltip plus a value label.
func InjectOverlays(svg string, points []Point) string {
	idx := strings.LastIndex(svg, "</svg>")
	if idx < 0 {
		return svg
	}

	var sb strings.Builder
	sb.WriteString(svg[:idx])
	for _, p := range points {
		fmt.Fprintf(&sb, "<g class=\"series-point\" transform=\"translate(%d,%d)\">\n", p.X, p.Y)
		fmt.Fprintf(&sb, "\t<circle r=\"6\" fill-opacity=\"0\"><title>%.1f км (%s)</title></circle>\n", p.Value, p.Label)
		fmt.Fprintf(&sb, "\t<text y=\"-9\" text-anchor=\"middle\" class=\"series-point-label\">%.1f</text>\n", p.Value)
		sb.WriteString("</g>\n")
	}
	sb.WriteString(svg[idx:])
	return sb.String()
}
