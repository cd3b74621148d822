package main

import (
	"github.com/Veraticus/chartlabel/internal/tui"
	"github.com/spf13/cobra"
)

func viewCmd() *cobra.Command {
	var (
		mode      string
		showChart bool
	)

	cmd := &cobra.Command{
		Use:   "view <metric.yaml>",
		Short: "Explore a metric's labels interactively",
		Long: `Open an interactive viewer for a metric. Press 1-9 to toggle series like a
chart legend, a to show every series, m to cycle percentage modes, c to toggle
the bar chart and q to quit.`,
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

			return tui.Run(cmd.Context(), c,
				tui.WithTitle(metric.Name),
				tui.WithSize(settings.Width, settings.Height),
				tui.WithChart(showChart),
				tui.WithModeOverride(override),
			)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "force a percentage mode (none, stacked, data-label)")
	cmd.Flags().BoolVar(&showChart, "chart", false, "start with the bar chart visible")

	return cmd
}
