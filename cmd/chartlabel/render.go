package main

import (
	"github.com/spf13/cobra"
)

func renderCmd() *cobra.Command {
	var (
		hide      []string
		mode      string
		showChart bool
	)

	cmd := &cobra.Command{
		Use:   "render <metric.yaml>",
		Short: "Render the data labels of a metric",
		Long: `Render the data labels of a bar or line chart metric as a table.

Rows come from the metric's inline data or from its SQL query against --db.
Use --hide to hide series the way a legend click would, which changes the
denominators of percentage labels.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			override, err := parseModeFlag(mode)
			if err != nil {
				return err
			}

			metric, c, err := loadChart(cmd.Context(), args[0], settings.DatabasePath)
			if err != nil {
				return err
			}

			return renderMetric(cmd.OutOrStdout(), metric, c, renderOptions{
				mode:      override,
				hide:      hide,
				width:     settings.Width,
				height:    settings.Height,
				showChart: showChart,
			})
		},
	}

	cmd.Flags().StringSliceVar(&hide, "hide", nil, "series to hide by id, column or label")
	cmd.Flags().StringVar(&mode, "mode", "", "force a percentage mode (none, stacked, data-label)")
	cmd.Flags().BoolVar(&showChart, "chart", false, "draw a stacked bar chart below the labels")

	return cmd
}
