package chart

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	defaultPNGWidth  = 800
	defaultPNGHeight = 400
)

var (
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
)

// RenderPNG draws spec with go-chart. Zero dimensions fall back to 800x400.
func RenderPNG(w io.Writer, spec Spec, width, height int) error {
	if spec.Series.Len() == 0 {
		return fmt.Errorf("chart: %q has no points to draw", spec.Title)
	}
	if width <= 0 {
		width = defaultPNGWidth
	}
	if height <= 0 {
		height = defaultPNGHeight
	}
	switch spec.Kind {
	case KindPie:
		return renderPie(w, spec, width, height)
	case KindLine, "":
		return renderLine(w, spec, width, height)
	default:
		return fmt.Errorf("chart: unsupported kind %q", spec.Kind)
	}
}

func renderLine(w io.Writer, spec Spec, width, height int) error {
	points := spec.Series.Points()
	xs := make([]float64, len(points))
	ticks := make([]gochart.Tick, len(points))
	for i, p := range points {
		xs[i] = float64(i)
		ticks[i] = gochart.Tick{Value: float64(i), Label: p.Label}
	}
	lo, hi := spec.Series.Bounds()
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	ch := gochart.Chart{
		Title:      spec.Title,
		Width:      width,
		Height:     height,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      gochart.XAxis{Ticks: ticks},
		YAxis:      gochart.YAxis{Range: &gochart.ContinuousRange{Min: lo, Max: hi}},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				Name:    spec.Series.Name(),
				XValues: xs,
				YValues: spec.Series.Values(),
				Style: gochart.Style{
					StrokeColor: drawing.ColorFromHex("1d4ed8"),
					StrokeWidth: 2,
					DotColor:    drawing.ColorFromHex("1d4ed8"),
					DotWidth:    3,
				},
			},
		},
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}
	if err := ch.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("chart: render %q: %w", spec.Title, err)
	}
	return nil
}

func renderPie(w io.Writer, spec Spec, width, height int) error {
	points := spec.Series.Points()
	values := make([]gochart.Value, len(points))
	for i, p := range points {
		values[i] = gochart.Value{Label: p.Label, Value: p.Value}
	}
	pie := gochart.PieChart{
		Title:  spec.Title,
		Width:  width,
		Height: height,
		Values: values,
	}
	if err := pie.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("chart: render %q: %w", spec.Title, err)
	}
	return nil
}

// RenderBars draws spec as horizontal bars for the terminal. Line charts scale
// bars against the largest value; pie charts show each slice's share.
func RenderBars(spec Spec, width int) string {
	points := spec.Series.Points()
	if len(points) == 0 {
		return labelStyle.Render("No data")
	}
	labelWidth := 0
	for _, p := range points {
		labelWidth = max(labelWidth, lipgloss.Width(p.Label))
	}
	barWidth := max(4, width-labelWidth-10)

	var total, peak float64
	for _, p := range points {
		total += p.Value
		if p.Value > peak {
			peak = p.Value
		}
	}

	lines := []string{titleStyle.Render(spec.Title)}
	for _, p := range points {
		var ratio float64
		var value string
		if spec.Kind == KindPie {
			if total > 0 {
				ratio = p.Value / total
			}
			value = fmt.Sprintf("%.0f%%", ratio*100)
		} else {
			if peak > 0 {
				ratio = p.Value / peak
			}
			value = fmt.Sprintf("%g", p.Value)
		}
		filled := int(ratio*float64(barWidth) + 0.5)
		if filled < 0 {
			filled = 0
		}
		label := labelStyle.Render(fmt.Sprintf("%-*s", labelWidth, p.Label))
		bar := barStyle.Render(strings.Repeat("█", filled))
		lines = append(lines, fmt.Sprintf("%s %s %s", label, bar, value))
	}
	return strings.Join(lines, "\n")
}
