// Package datalabel computes the display text of bar and line chart data labels,
// converting values to percentages of the stacked or per-series total when asked to.
package datalabel

import (
	"math"

	"github.com/Veraticus/chartlabel/internal/model"
)

// RenderContext identifies the label being drawn.
type RenderContext struct {
	PointIndex         int
	SeriesIndex        int
	VisibleSeriesCount int
}

// TotalsProvider supplies the denominators for percentage labels.
// The boolean result is false when no total is known for the index.
type TotalsProvider interface {
	StackedTotal(pointIndex int) (float64, bool)
	SeriesTotal(seriesIndex int) (float64, bool)
}

// ValueFormatter renders a number with a column format.
type ValueFormatter interface {
	Format(value float64, format model.ColumnLabelFormat) string
}

// Resolver produces data label text. It holds no chart state and is safe for
// concurrent use.
type Resolver struct {
	formatter ValueFormatter
}

// NewResolver creates a resolver that delegates final formatting to formatter.
func NewResolver(formatter ValueFormatter) *Resolver {
	return &Resolver{formatter: formatter}
}

// Resolve returns the label text for value.
//
// With more than one visible series the stacked total is always used, even in
// PercentagePerSeries mode. Missing or zero totals produce 0%.
func (r *Resolver) Resolve(value float64, ctx RenderContext, mode PercentageMode, format model.ColumnLabelFormat, totals TotalsProvider) string {
	if mode == PercentageDisabled {
		return r.formatter.Format(value, format)
	}

	useStackedTotal := mode == PercentageStacked || ctx.VisibleSeriesCount > 1

	return r.formatter.Format(Percentage(value, lookupTotal(totals, ctx, useStackedTotal)), format.WithPercentStyle())
}

// Percentage returns value as a percentage of total, or 0 when the ratio is undefined.
func Percentage(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	p := value / total * 100
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0
	}
	return p
}

func lookupTotal(totals TotalsProvider, ctx RenderContext, stacked bool) float64 {
	if totals == nil {
		return 0
	}

	var (
		total float64
		ok    bool
	)
	if stacked {
		total, ok = totals.StackedTotal(ctx.PointIndex)
	} else {
		total, ok = totals.SeriesTotal(ctx.SeriesIndex)
	}
	if !ok || math.IsNaN(total) {
		return 0
	}
	return total
}
