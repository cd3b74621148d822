package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/Veraticus/chartlabel/internal/chart"
	"github.com/Veraticus/chartlabel/internal/common"
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the viewer on the alternate screen and blocks until the user
// quits or ctx is cancelled.
func Run(ctx context.Context, c *chart.Chart, opts ...Option) error {
	if c == nil || len(c.Datasets) == 0 {
		return common.ErrNoDatasets
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	p := tea.NewProgram(newModel(c, cfg),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
