package model

import (
	"fmt"

	"github.com/Veraticus/chartlabel/internal/common"
)

// ChartType identifies the chart family a metric is drawn with.
type ChartType string

const (
	// ChartTypeBar draws one bar per series and point.
	ChartTypeBar ChartType = "bar"
	// ChartTypeLine draws one line per series.
	ChartTypeLine ChartType = "line"
)

// GroupType controls how multiple series share a category.
type GroupType string

const (
	GroupTypeNone            GroupType = ""
	GroupTypeGroup           GroupType = "group"
	GroupTypeStack           GroupType = "stack"
	GroupTypePercentageStack GroupType = "percentage-stack"
)

// BarAndLineAxis maps result columns onto chart axes.
type BarAndLineAxis struct {
	X        []string `yaml:"x"`
	Y        []string `yaml:"y"`
	Category []string `yaml:"category"`
}

// ColumnSettings holds per-column visual settings relevant to data labels.
type ColumnSettings struct {
	ShowDataLabels             bool `yaml:"showDataLabels"`
	ShowDataLabelsAsPercentage bool `yaml:"showDataLabelsAsPercentage"`
}

// ChartConfig is the visualization part of a metric definition.
type ChartConfig struct {
	ColumnLabelFormats map[string]ColumnLabelFormat `yaml:"columnLabelFormats"`
	ColumnSettings     map[string]ColumnSettings    `yaml:"columnSettings"`
	SelectedChartType  ChartType                    `yaml:"selectedChartType"`
	BarGroupType       GroupType                    `yaml:"barGroupType"`
	LineGroupType      GroupType                    `yaml:"lineGroupType"`
	BarAndLineAxis     BarAndLineAxis               `yaml:"barAndLineAxis"`
	BarShowTotalAtTop  bool                         `yaml:"barShowTotalAtTop"`
}

// FormatFor returns the label format for a column, falling back to the default.
func (c ChartConfig) FormatFor(column string) ColumnLabelFormat {
	if f, ok := c.ColumnLabelFormats[column]; ok {
		return f
	}
	return DefaultColumnLabelFormat()
}

// SettingsFor returns the column settings for a column.
func (c ChartConfig) SettingsFor(column string) ColumnSettings {
	return c.ColumnSettings[column]
}

// GroupType returns the grouping that applies to the selected chart type.
func (c ChartConfig) GroupType() GroupType {
	if c.SelectedChartType == ChartTypeLine {
		return c.LineGroupType
	}
	return c.BarGroupType
}

// YFormatsSimilar reports whether every y column renders like the first one.
func (c ChartConfig) YFormatsSimilar() bool {
	ys := c.BarAndLineAxis.Y
	if len(ys) == 0 {
		return false
	}
	first := c.FormatFor(ys[0])
	for _, y := range ys[1:] {
		if !first.SimilarTo(c.FormatFor(y)) {
			return false
		}
	}
	return true
}

// Validate checks that the configuration can be turned into a bar or line chart.
func (c ChartConfig) Validate() error {
	switch c.SelectedChartType {
	case ChartTypeBar, ChartTypeLine:
	default:
		return fmt.Errorf("%w: selectedChartType %q", common.ErrUnsupportedChart, c.SelectedChartType)
	}

	for _, g := range []GroupType{c.BarGroupType, c.LineGroupType} {
		switch g {
		case GroupTypeNone, GroupTypeGroup, GroupTypeStack, GroupTypePercentageStack:
		default:
			return fmt.Errorf("%w: group type %q", common.ErrInvalidConfig, g)
		}
	}

	if len(c.BarAndLineAxis.X) == 0 {
		return fmt.Errorf("%w: barAndLineAxis.x is required", common.ErrInvalidConfig)
	}
	if len(c.BarAndLineAxis.Y) == 0 {
		return fmt.Errorf("%w: barAndLineAxis.y is required", common.ErrInvalidConfig)
	}

	for column, f := range c.ColumnLabelFormats {
		if err := f.Validate(); err != nil {
			return fmt.Errorf("%w: column %s: %w", common.ErrInvalidConfig, column, err)
		}
	}

	return nil
}
