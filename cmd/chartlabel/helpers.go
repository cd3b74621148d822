package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Veraticus/chartlabel/internal/chart"
	"github.com/Veraticus/chartlabel/internal/common"
	"github.com/Veraticus/chartlabel/internal/datalabel"
	"github.com/Veraticus/chartlabel/internal/format"
	"github.com/Veraticus/chartlabel/internal/model"
	"github.com/Veraticus/chartlabel/internal/render"
	"github.com/Veraticus/chartlabel/internal/source"
)

// renderOptions controls how a metric is written to the terminal.
type renderOptions struct {
	mode      *datalabel.PercentageMode
	hide      []string
	width     int
	height    int
	showChart bool
}

// loadChart loads a metric file, resolves its rows from dbPath when it has no
// inline data, and builds its chart.
func loadChart(ctx context.Context, path, dbPath string) (*model.Metric, *chart.Chart, error) {
	metric, err := source.LoadMetricFile(path)
	if err != nil {
		return nil, nil, err
	}

	if !metric.HasData() {
		if dbPath == "" {
			return nil, nil, common.NewUserError(
				fmt.Sprintf("metric %q has no inline data; pass --db or set database.path", metric.Name),
				common.ErrMissingConfig)
		}

		src, err := source.Open(dbPath)
		if err != nil {
			return nil, nil, err
		}
		defer func() {
			if closeErr := src.Close(); closeErr != nil {
				slog.Warn("Failed to close database", "error", closeErr)
			}
		}()

		if err := src.Resolve(ctx, metric); err != nil {
			return nil, nil, err
		}
	}

	c, err := chart.Build(metric.ChartConfig, metric.Data)
	if err != nil {
		return nil, nil, fmt.Errorf("metric %q: %w", metric.Name, err)
	}

	return metric, c, nil
}

// renderMetric writes the title, the label table and optionally the bar chart.
func renderMetric(w io.Writer, metric *model.Metric, c *chart.Chart, opts renderOptions) error {
	if len(opts.hide) > 0 {
		if n := c.Hide(opts.hide...); n == 0 {
			slog.Warn("No series matched --hide", "keys", strings.Join(opts.hide, ","))
		}
	}

	formatter := format.NewLabelFormatter()
	resolver := datalabel.NewResolver(formatter)

	grid := c.LabelsWithMode(resolver, opts.mode)
	sections := []string{
		render.Title(metric),
		render.LabelTable(c, grid, c.StackTotalLabels(formatter), formatter),
	}
	if opts.showChart {
		sections = append(sections, render.BarChart(c, opts.width, opts.height))
	}

	common.LogDebug("Rendered labels", common.Fields{
		"metric":         metric.Name,
		"labels":         grid.Count(),
		"visible_series": c.VisibleCount(),
	})

	_, err := fmt.Fprintln(w, strings.Join(sections, "\n\n"))
	return err
}

// parseModeFlag returns nil for an empty value so the configured modes apply.
func parseModeFlag(value string) (*datalabel.PercentageMode, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	mode, err := datalabel.ParsePercentageMode(value)
	if err != nil {
		return nil, common.NewUserError(
			fmt.Sprintf("invalid --mode %q (use none, stacked or data-label)", value), err)
	}
	return &mode, nil
}
