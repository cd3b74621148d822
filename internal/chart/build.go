package chart

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Veraticus/chartlabel/internal/common"
	"github.com/Veraticus/chartlabel/internal/model"
	"github.com/spf13/cast"
)

// TickSeparator joins the values of multiple x columns into one tick.
const TickSeparator = " | "

type rowGroup struct {
	id     string
	values []string
	rows   []model.Row
}

// Build aggregates result rows into a chart. Rows sharing the same x values are
// summed per y column; a missing value in a group makes the whole point missing.
// With category columns one dataset is created per y column and category value.
func Build(cfg model.ChartConfig, rows []model.Row) (*Chart, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	axis := cfg.BarAndLineAxis
	xGroups := groupRows(axis.X, rows)

	c := &Chart{
		Config: cfg,
		Ticks:  make([]string, len(xGroups)),
	}
	for i, g := range xGroups {
		c.Ticks[i] = strings.Join(g.values, TickSeparator)
	}

	catGroups := []rowGroup{{rows: rows}}
	if len(axis.Category) > 0 {
		catGroups = groupRows(axis.Category, rows)
	}

	for _, metric := range axis.Y {
		format := cfg.FormatFor(metric)

		for _, cg := range catGroups {
			byX := make(map[string][]model.Row)
			for _, g := range groupRows(axis.X, cg.rows) {
				byX[g.id] = g.rows
			}

			values := make([]*float64, len(xGroups))
			for p, xg := range xGroups {
				values[p] = sumGroup(byX[xg.id], metric, format)
			}

			c.Datasets = append(c.Datasets, Dataset{
				ID:      datasetID(metric, axis.Category, cg.values),
				Label:   datasetLabel(metric, format, axis, cg.values),
				DataKey: metric,
				Values:  values,
			})
		}
	}

	if len(c.Datasets) == 0 {
		return nil, common.ErrNoDatasets
	}

	return c, nil
}

func groupRows(keys []string, rows []model.Row) []rowGroup {
	index := make(map[string]int)
	var groups []rowGroup

	for _, row := range rows {
		values := make([]string, len(keys))
		for i, k := range keys {
			values[i] = stringify(row[k])
		}
		id := strings.Join(values, "|")

		i, ok := index[id]
		if !ok {
			i = len(groups)
			index[id] = i
			groups = append(groups, rowGroup{id: id, values: values})
		}
		groups[i].rows = append(groups[i].rows, row)
	}

	return groups
}

func sumGroup(rows []model.Row, metric string, format model.ColumnLabelFormat) *float64 {
	if len(rows) == 0 {
		return nil
	}

	sum := 0.0
	for _, row := range rows {
		v, ok := numericValue(row[metric], format)
		if !ok {
			return nil
		}
		if !math.IsNaN(v) {
			sum += v
		}
	}
	return &sum
}

// numericValue converts a raw cell, substituting the configured replacement
// for missing or non-numeric cells. ok is false when the point stays missing.
func numericValue(raw any, format model.ColumnLabelFormat) (float64, bool) {
	if b, isBytes := raw.([]byte); isBytes {
		raw = string(b)
	}

	if raw != nil && raw != "" {
		if v, err := cast.ToFloat64E(raw); err == nil {
			return v, true
		}
	}

	replacement := format.ReplaceMissingDataWith
	switch {
	case replacement == nil:
		return 0, false
	case replacement.Numeric:
		return replacement.Number, true
	default:
		if v, err := cast.ToFloat64E(replacement.Text); err == nil {
			return v, true
		}
		return math.NaN(), true
	}
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case time.Time:
		return t.Format(time.DateOnly)
	case []byte:
		return string(t)
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return s
}

func datasetID(metric string, catKeys, catValues []string) string {
	if len(catKeys) == 0 {
		return metric
	}
	parts := make([]string, len(catKeys))
	for i, k := range catKeys {
		parts[i] = k + ":" + catValues[i]
	}
	return metric + "_" + strings.Join(parts, "_")
}

func datasetLabel(metric string, format model.ColumnLabelFormat, axis model.BarAndLineAxis, catValues []string) string {
	name := format.DisplayName
	if name == "" {
		name = metric
	}
	if len(axis.Category) == 0 {
		return name
	}

	label := strings.Join(catValues, TickSeparator)
	if len(axis.Y) > 1 {
		return name + TickSeparator + label
	}
	return label
}
