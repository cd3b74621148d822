package tui

import (
	"strings"

	"github.com/Veraticus/chartlabel/internal/render"
)

const chartReservedRows = 12

// View renders the title, label table, optional bar chart, legend and help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	if m.config.Title != "" {
		sections = append(sections, render.TitleStyle.Render(m.config.Title))
	}

	sections = append(sections, render.LabelTable(m.chart, m.grid, m.totals, m.formatter))

	if m.config.ShowChart {
		height := max(m.height-chartReservedRows, 0)
		sections = append(sections, render.BarChart(m.chart, m.width, height))
	} else {
		sections = append(sections, render.Legend(m.chart))
	}

	if m.status != "" {
		sections = append(sections, render.SubtitleStyle.Render(m.status))
	}
	sections = append(sections, m.help.View(m.keymap))

	return strings.Join(sections, "\n\n")
}
