package render

import (
	"strconv"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/Veraticus/chartlabel/internal/chart"
	"github.com/charmbracelet/lipgloss"
)

const (
	minChartWidth  = 10
	minChartHeight = 4
	legendBlock    = "█"
)

// BarChart draws the visible datasets as stacked bars, one bar per tick,
// followed by a colour legend. Negative and missing values draw as empty.
func BarChart(c *chart.Chart, width, height int) string {
	width = max(width, minChartWidth)
	height = max(height, minChartHeight)

	data := make([]barchart.BarData, len(c.Ticks))
	for p, tick := range c.Ticks {
		bar := barchart.BarData{Label: tick}
		for i, d := range c.Datasets {
			if d.Hidden {
				continue
			}
			v, ok := d.Value(p)
			if !ok || v < 0 {
				v = 0
			}
			bar.Values = append(bar.Values, barchart.BarValue{
				Name:  d.Label,
				Value: v,
				Style: lipgloss.NewStyle().Foreground(SeriesColor(i)),
			})
		}
		data[p] = bar
	}

	m := barchart.New(width, height,
		barchart.WithStyles(BorderStyle, SubtitleStyle))
	m.PushAll(data)
	m.Draw()

	return lipgloss.JoinVertical(lipgloss.Left, m.View(), Legend(c))
}

// Legend lists every dataset with its colour and visibility, numbered the way
// the viewer toggles them.
func Legend(c *chart.Chart) string {
	entries := make([]string, 0, len(c.Datasets))
	for i, d := range c.Datasets {
		marker := lipgloss.NewStyle().Foreground(SeriesColor(i)).Render(legendBlock)
		name := d.Label
		style := SubtitleStyle
		if d.Hidden {
			style = HiddenStyle
			name += " (" + hiddenMarker + ")"
		}
		entries = append(entries, marker+" "+style.Render(strconv.Itoa(i+1)+" "+name))
	}
	return strings.Join(entries, "  ")
}
