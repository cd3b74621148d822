package model

import (
	"fmt"
	"strings"

	"github.com/Veraticus/chartlabel/internal/common"
)

// Row is one record of a metric's result set keyed by column name.
type Row map[string]any

// Metric is a named SQL result with its chart configuration.
type Metric struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	TimeFrame   string      `yaml:"timeFrame"`
	SQL         string      `yaml:"sql"`
	Data        []Row       `yaml:"data"`
	ChartConfig ChartConfig `yaml:"chartConfig"`
}

// Validate checks required fields and the chart configuration.
func (m Metric) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("%w: metric name is required", common.ErrInvalidConfig)
	}
	if err := m.ChartConfig.Validate(); err != nil {
		return fmt.Errorf("metric %q: %w", m.Name, err)
	}
	return nil
}

// HasData reports whether rows are available without running the query.
func (m Metric) HasData() bool {
	return len(m.Data) > 0
}
