package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/chartlabel/internal/common"
	"github.com/Veraticus/chartlabel/internal/source"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// batchResult summarises one batch run.
type batchResult struct {
	failures map[string]error
	rendered int
}

func batchCmd() *cobra.Command {
	var (
		outputDir string
		mode      string
	)

	cmd := &cobra.Command{
		Use:   "batch <dir>",
		Short: "Render every metric in a directory",
		Long: `Render every *.yaml and *.yml metric in a directory.

With --output each metric is written to <output>/<file>.txt, otherwise all
metrics are written to stdout. A failing metric is reported and the batch
continues.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			override, err := parseModeFlag(mode)
			if err != nil {
				return err
			}

			files, err := source.MetricFiles(args[0])
			if err != nil {
				return err
			}
			if len(files) == 0 {
				slog.Warn("No metric files found", "dir", args[0])
				return nil
			}

			if outputDir != "" {
				if err := os.MkdirAll(outputDir, 0750); err != nil {
					return fmt.Errorf("failed to create output directory: %w", err)
				}
			}

			bar := newBatchProgress(cmd.ErrOrStderr(), len(files))
			result := runBatch(cmd.Context(), files, batchTarget{
				out:       cmd.OutOrStdout(),
				outputDir: outputDir,
				dbPath:    settings.DatabasePath,
				opts: renderOptions{
					mode:   override,
					width:  settings.Width,
					height: settings.Height,
				},
			}, func() { _ = bar.Add(1) })

			slog.Info("Batch complete",
				"rendered", result.rendered,
				"failed", len(result.failures))

			if len(result.failures) > 0 {
				names := make([]string, 0, len(result.failures))
				for _, f := range files {
					if err, ok := result.failures[f]; ok {
						common.LogError(err, "Metric failed", common.Fields{"file": f})
						names = append(names, filepath.Base(f))
					}
				}
				return common.NewUserError(
					fmt.Sprintf("%d of %d metrics failed: %s", len(result.failures), len(files), strings.Join(names, ", ")),
					nil)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "write one .txt file per metric into this directory")
	cmd.Flags().StringVar(&mode, "mode", "", "force a percentage mode (none, stacked, data-label)")

	return cmd
}

// batchTarget describes where rendered metrics go.
type batchTarget struct {
	out       io.Writer
	outputDir string
	dbPath    string
	opts      renderOptions
}

func runBatch(ctx context.Context, files []string, target batchTarget, step func()) batchResult {
	result := batchResult{failures: make(map[string]error)}

	for _, file := range files {
		if ctx.Err() != nil {
			result.failures[file] = ctx.Err()
			step()
			continue
		}

		if err := renderFile(ctx, file, target); err != nil {
			result.failures[file] = err
		} else {
			result.rendered++
		}
		step()
	}

	return result
}

func renderFile(ctx context.Context, file string, target batchTarget) error {
	metric, c, err := loadChart(ctx, file, target.dbPath)
	if err != nil {
		return err
	}

	if target.outputDir == "" {
		return renderMetric(target.out, metric, c, target.opts)
	}

	name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)) + ".txt"
	f, err := os.Create(filepath.Join(target.outputDir, name)) //nolint:gosec // output dir comes from the command line
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Warn("Failed to close output file", "file", name, "error", closeErr)
		}
	}()

	return renderMetric(f, metric, c, target.opts)
}

func newBatchProgress(w io.Writer, total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Rendering metrics...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(w); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}
