package datalabel

import (
	"fmt"
	"strings"

	"github.com/Veraticus/chartlabel/internal/common"
	"github.com/Veraticus/chartlabel/internal/model"
)

// PercentageMode selects whether and how a data label is converted to a percentage.
type PercentageMode int

const (
	// PercentageDisabled formats the raw value.
	PercentageDisabled PercentageMode = iota
	// PercentageStacked divides by the stacked total of the point.
	PercentageStacked
	// PercentagePerSeries divides by the series total while a single series is visible.
	PercentagePerSeries
)

// String returns the configuration name of the mode.
func (m PercentageMode) String() string {
	switch m {
	case PercentageStacked:
		return "stacked"
	case PercentagePerSeries:
		return "data-label"
	default:
		return "none"
	}
}

// ParsePercentageMode converts a configured mode name.
func ParsePercentageMode(s string) (PercentageMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "false", "disabled":
		return PercentageDisabled, nil
	case "stacked":
		return PercentageStacked, nil
	case "data-label", "series":
		return PercentagePerSeries, nil
	default:
		return PercentageDisabled, fmt.Errorf("%w: percentage mode %q", common.ErrInvalidConfig, s)
	}
}

// ModeFor derives the percentage mode of a series from its chart grouping and
// column settings.
func ModeFor(chartType model.ChartType, group model.GroupType, settings model.ColumnSettings) PercentageMode {
	if group == model.GroupTypePercentageStack {
		return PercentageStacked
	}
	if chartType == model.ChartTypeBar && group == model.GroupTypeStack && settings.ShowDataLabelsAsPercentage {
		return PercentageStacked
	}
	if settings.ShowDataLabelsAsPercentage {
		return PercentagePerSeries
	}
	return PercentageDisabled
}
