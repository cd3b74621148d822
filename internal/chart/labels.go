package chart

import (
	"github.com/Veraticus/chartlabel/internal/datalabel"
	"github.com/Veraticus/chartlabel/internal/model"
)

// LabelResolver turns a data point into label text.
type LabelResolver interface {
	Resolve(value float64, ctx datalabel.RenderContext, mode datalabel.PercentageMode, format model.ColumnLabelFormat, totals datalabel.TotalsProvider) string
}

// Label is the text drawn for one data point.
type Label struct {
	Text    string
	Display bool
}

// LabelGrid holds labels indexed by dataset, then point.
type LabelGrid [][]Label

// At returns the label of dataset i at point p.
func (g LabelGrid) At(i, p int) Label {
	if i < 0 || i >= len(g) || p < 0 || p >= len(g[i]) {
		return Label{}
	}
	return g[i][p]
}

// Count returns the number of displayed labels.
func (g LabelGrid) Count() int {
	n := 0
	for _, row := range g {
		for _, l := range row {
			if l.Display {
				n++
			}
		}
	}
	return n
}

// Labels resolves the data labels of every visible dataset that has data labels
// enabled. Zero and missing values are never labelled.
func (c *Chart) Labels(resolver LabelResolver) LabelGrid {
	return c.LabelsWithMode(resolver, nil)
}

// LabelsWithMode is Labels with the percentage mode of every series forced to
// *override when override is not nil.
func (c *Chart) LabelsWithMode(resolver LabelResolver, override *datalabel.PercentageMode) LabelGrid {
	totals := c.Totals()
	visible := c.VisibleCount()
	grid := make(LabelGrid, len(c.Datasets))

	for i, d := range c.Datasets {
		grid[i] = make([]Label, len(c.Ticks))

		settings := c.Config.SettingsFor(d.DataKey)
		if d.Hidden || !settings.ShowDataLabels {
			continue
		}

		mode := datalabel.ModeFor(c.Type(), c.Config.GroupType(), settings)
		if override != nil {
			mode = *override
		}
		format := c.Config.FormatFor(d.DataKey)

		for p := range c.Ticks {
			v, ok := d.Value(p)
			if !ok || v == 0 {
				continue
			}
			ctx := datalabel.RenderContext{
				PointIndex:         p,
				SeriesIndex:        i,
				VisibleSeriesCount: visible,
			}
			grid[i][p] = Label{
				Text:    resolver.Resolve(v, ctx, mode, format, totals),
				Display: true,
			}
		}
	}

	return grid
}

// StackTotalLabels returns one label per point with the stacked total, or nil
// when the chart does not draw totals above its bars.
func (c *Chart) StackTotalLabels(formatter datalabel.ValueFormatter) []string {
	cfg := c.Config
	if c.Type() != model.ChartTypeBar || !cfg.BarShowTotalAtTop || len(cfg.BarAndLineAxis.Y) < 2 {
		return nil
	}

	format := model.DefaultColumnLabelFormat()
	if cfg.YFormatsSimilar() {
		format = cfg.FormatFor(cfg.BarAndLineAxis.Y[0])
	}

	totals := c.Totals()
	labels := make([]string, len(c.Ticks))
	for p := range c.Ticks {
		total, _ := totals.StackedTotal(p)
		labels[p] = formatter.Format(total, format)
	}
	return labels
}
