// Package render draws charts and their data labels for the terminal using lipgloss.
package render

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#FF6B6B")
	// SuccessColor is used for totals.
	SuccessColor = lipgloss.Color("#4ECDC4") // Teal
	// WarningColor marks hidden series.
	WarningColor = lipgloss.Color("#FFE66D") // Yellow
	// InfoColor is used for headers.
	InfoColor = lipgloss.Color("#95E1D3") // Light teal
	// SubtleColor indicates less prominent text such as missing values.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// SeriesColors colour datasets in order, wrapping around.
	SeriesColors = []lipgloss.Color{
		PrimaryColor,
		SuccessColor,
		WarningColor,
		InfoColor,
		lipgloss.Color("#C792EA"),
		lipgloss.Color("#F78C6C"),
	}

	// TitleStyle is used for the metric name.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SubtitleStyle is used for descriptions and legends.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// HeaderStyle formats table headers.
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(InfoColor).
			Padding(0, 1)

	// CellStyle formats table cells.
	CellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	// MissingStyle formats cells without a label.
	MissingStyle = CellStyle.
			Foreground(SubtleColor)

	// HiddenStyle formats rows of hidden datasets.
	HiddenStyle = CellStyle.
			Foreground(WarningColor).
			Italic(true)

	// TotalStyle formats the stacked total row.
	TotalStyle = CellStyle.
			Bold(true).
			Foreground(SuccessColor)

	// BorderStyle colours table borders.
	BorderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#333"))
)

// SeriesColor returns the palette colour of dataset i.
func SeriesColor(i int) lipgloss.Color {
	if i < 0 {
		i = -i
	}
	return SeriesColors[i%len(SeriesColors)]
}
