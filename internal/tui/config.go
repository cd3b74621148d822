package tui

import "github.com/Veraticus/chartlabel/internal/datalabel"

// Config holds TUI configuration.
type Config struct {
	ModeOverride *datalabel.PercentageMode
	Title        string
	Width        int
	Height       int
	ShowChart    bool
	ShowHelp     bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

func defaultConfig() Config {
	return Config{
		Width:  80,
		Height: 24,
	}
}

// WithTitle sets the heading drawn above the labels.
func WithTitle(title string) Option {
	return func(c *Config) {
		c.Title = title
	}
}

// WithSize sets the initial dimensions before the first resize message.
func WithSize(width, height int) Option {
	return func(c *Config) {
		if width > 0 {
			c.Width = width
		}
		if height > 0 {
			c.Height = height
		}
	}
}

// WithChart starts with the bar chart visible.
func WithChart(show bool) Option {
	return func(c *Config) {
		c.ShowChart = show
	}
}

// WithModeOverride forces one percentage mode on every series.
func WithModeOverride(mode *datalabel.PercentageMode) Option {
	return func(c *Config) {
		c.ModeOverride = mode
	}
}
