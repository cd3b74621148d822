// Package chart holds the state a bar or line chart needs to label its points:
// datasets, legend visibility and the totals derived from them.
package chart

import (
	"fmt"

	"github.com/Veraticus/chartlabel/internal/common"
	"github.com/Veraticus/chartlabel/internal/model"
)

// Dataset is one drawn series. A nil value is a missing point.
type Dataset struct {
	ID      string
	Label   string
	DataKey string
	Values  []*float64
	Hidden  bool
}

// Value returns the value at point i and whether it is present.
func (d Dataset) Value(i int) (float64, bool) {
	if i < 0 || i >= len(d.Values) || d.Values[i] == nil {
		return 0, false
	}
	return *d.Values[i], true
}

// Chart is a bar or line chart built from a metric.
type Chart struct {
	Config   model.ChartConfig
	Ticks    []string
	Datasets []Dataset
}

// Type returns the chart type of the configuration.
func (c *Chart) Type() model.ChartType {
	return c.Config.SelectedChartType
}

// VisibleCount returns how many datasets are currently shown.
func (c *Chart) VisibleCount() int {
	n := 0
	for _, d := range c.Datasets {
		if !d.Hidden {
			n++
		}
	}
	return n
}

// SetHidden changes the legend visibility of dataset i.
func (c *Chart) SetHidden(i int, hidden bool) error {
	if i < 0 || i >= len(c.Datasets) {
		return fmt.Errorf("dataset %d: %w", i, common.ErrNotFound)
	}
	c.Datasets[i].Hidden = hidden
	return nil
}

// Toggle flips the legend visibility of dataset i.
func (c *Chart) Toggle(i int) error {
	if i < 0 || i >= len(c.Datasets) {
		return fmt.Errorf("dataset %d: %w", i, common.ErrNotFound)
	}
	c.Datasets[i].Hidden = !c.Datasets[i].Hidden
	return nil
}

// ShowAll makes every dataset visible.
func (c *Chart) ShowAll() {
	for i := range c.Datasets {
		c.Datasets[i].Hidden = false
	}
}

// Hide hides every dataset whose ID, data key or label matches one of keys and
// returns how many were hidden.
func (c *Chart) Hide(keys ...string) int {
	want := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		want[k] = struct{}{}
	}

	hidden := 0
	for i, d := range c.Datasets {
		_, byID := want[d.ID]
		_, byKey := want[d.DataKey]
		_, byLabel := want[d.Label]
		if byID || byKey || byLabel {
			c.Datasets[i].Hidden = true
			hidden++
		}
	}
	return hidden
}

// Totals returns a snapshot of the stacked and per-series totals for the
// current visibility.
func (c *Chart) Totals() *Totalizer {
	return newTotalizer(c.Datasets, len(c.Ticks))
}
