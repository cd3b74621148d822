package render

import (
	"fmt"
	"strings"

	"github.com/Veraticus/chartlabel/internal/chart"
	"github.com/Veraticus/chartlabel/internal/model"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const (
	hiddenMarker = "hidden"
	noLabel      = "-"
	totalRowName = "Total"
)

// MissingFormatter renders the replacement text of a missing cell.
type MissingFormatter interface {
	FormatMissing(format model.ColumnLabelFormat) string
}

// LabelTable renders the label grid as a table with one column per tick and one
// row per dataset. Missing points show the column's missing data replacement,
// present points without a label show "-". stackTotals adds a total row when
// not nil.
func LabelTable(c *chart.Chart, grid chart.LabelGrid, stackTotals []string, missing MissingFormatter) string {
	headers := make([]string, 0, len(c.Ticks)+1)
	headers = append(headers, "Series")
	headers = append(headers, c.Ticks...)

	var rows [][]string
	var styles [][]lipgloss.Style

	for i, d := range c.Datasets {
		row := make([]string, len(c.Ticks)+1)
		rowStyles := make([]lipgloss.Style, len(c.Ticks)+1)
		row[0] = d.Label
		rowStyles[0] = CellStyle.Foreground(SeriesColor(i))

		if d.Hidden {
			row[0] = fmt.Sprintf("%s (%s)", d.Label, hiddenMarker)
			for j := range rowStyles {
				rowStyles[j] = HiddenStyle
			}
			rows = append(rows, row)
			styles = append(styles, rowStyles)
			continue
		}

		format := c.Config.FormatFor(d.DataKey)
		for p := range c.Ticks {
			label := grid.At(i, p)
			_, present := d.Value(p)

			switch {
			case label.Display:
				row[p+1] = label.Text
				rowStyles[p+1] = CellStyle
			case !present:
				row[p+1] = missing.FormatMissing(format)
				rowStyles[p+1] = MissingStyle
			default:
				row[p+1] = noLabel
				rowStyles[p+1] = MissingStyle
			}
		}

		rows = append(rows, row)
		styles = append(styles, rowStyles)
	}

	if stackTotals != nil {
		row := make([]string, len(c.Ticks)+1)
		rowStyles := make([]lipgloss.Style, len(c.Ticks)+1)
		row[0] = totalRowName
		for j := range rowStyles {
			rowStyles[j] = TotalStyle
		}
		copy(row[1:], stackTotals)
		rows = append(rows, row)
		styles = append(styles, rowStyles)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(BorderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row < 0 || row >= len(styles) || col >= len(styles[row]) {
				return HeaderStyle
			}
			return styles[row][col]
		})

	return t.String()
}

// Title renders the metric name followed by its description and time frame.
func Title(m *model.Metric) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(m.Name))

	var details []string
	if m.Description != "" {
		details = append(details, m.Description)
	}
	if m.TimeFrame != "" {
		details = append(details, m.TimeFrame)
	}
	if len(details) > 0 {
		b.WriteString("\n")
		b.WriteString(SubtitleStyle.Render(strings.Join(details, " · ")))
	}

	return b.String()
}
