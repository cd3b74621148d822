// Package tui provides an interactive legend for a chart. Toggling series
// recomputes every data label, so per-series shares switch to stacked totals
// as soon as more than one series is visible.
package tui

import (
	"fmt"

	"github.com/Veraticus/chartlabel/internal/chart"
	"github.com/Veraticus/chartlabel/internal/datalabel"
	"github.com/Veraticus/chartlabel/internal/format"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// modeCycle is the order the mode key steps through; nil restores the
// configured modes.
var modeCycle = []*datalabel.PercentageMode{
	nil,
	modePtr(datalabel.PercentageDisabled),
	modePtr(datalabel.PercentageStacked),
	modePtr(datalabel.PercentagePerSeries),
}

func modePtr(m datalabel.PercentageMode) *datalabel.PercentageMode { return &m }

// Model holds the viewer state.
type Model struct {
	chart     *chart.Chart
	resolver  *datalabel.Resolver
	formatter *format.LabelFormatter
	status    string
	grid      chart.LabelGrid
	totals    []string
	help      help.Model
	keymap    KeyMap
	config    Config
	modeIndex int
	width     int
	height    int
	quitting  bool
}

func newModel(c *chart.Chart, cfg Config) Model {
	formatter := format.NewLabelFormatter()
	m := Model{
		chart:     c,
		formatter: formatter,
		resolver:  datalabel.NewResolver(formatter),
		help:      help.New(),
		keymap:    DefaultKeyMap(),
		config:    cfg,
		width:     cfg.Width,
		height:    cfg.Height,
	}
	m.help.ShowAll = cfg.ShowHelp

	for i, mode := range modeCycle {
		if mode != nil && cfg.ModeOverride != nil && *mode == *cfg.ModeOverride {
			m.modeIndex = i
		}
	}

	m.recompute()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Toggle):
		i := int(msg.String()[0] - '1')
		if err := m.chart.Toggle(i); err != nil {
			m.status = fmt.Sprintf("no series %d", i+1)
			return m, nil
		}
		d := m.chart.Datasets[i]
		state := "shown"
		if d.Hidden {
			state = "hidden"
		}
		m.status = fmt.Sprintf("%s %s", d.Label, state)

	case key.Matches(msg, m.keymap.ShowAll):
		m.chart.ShowAll()
		m.status = "all series shown"

	case key.Matches(msg, m.keymap.CycleMode):
		m.modeIndex = (m.modeIndex + 1) % len(modeCycle)
		m.status = "percentage mode: " + m.modeName()

	case key.Matches(msg, m.keymap.ToggleChart):
		m.config.ShowChart = !m.config.ShowChart

	case key.Matches(msg, m.keymap.ToggleHelp):
		m.help.ShowAll = !m.help.ShowAll

	default:
		return m, nil
	}

	m.recompute()
	return m, nil
}

func (m *Model) recompute() {
	m.grid = m.chart.LabelsWithMode(m.resolver, modeCycle[m.modeIndex])
	m.totals = m.chart.StackTotalLabels(m.formatter)
}

func (m Model) modeName() string {
	if mode := modeCycle[m.modeIndex]; mode != nil {
		return mode.String()
	}
	return "configured"
}

// Labels returns the label grid for the current visibility.
func (m Model) Labels() chart.LabelGrid {
	return m.grid
}
