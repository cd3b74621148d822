package tui

import (
	"context"
	"testing"

	"github.com/Veraticus/chartlabel/internal/chart"
	"github.com/Veraticus/chartlabel/internal/common"
	"github.com/Veraticus/chartlabel/internal/datalabel"
	"github.com/Veraticus/chartlabel/internal/model"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func shareChart() *chart.Chart {
	settings := model.ColumnSettings{ShowDataLabels: true, ShowDataLabelsAsPercentage: true}
	return &chart.Chart{
		Config: model.ChartConfig{
			SelectedChartType: model.ChartTypeBar,
			BarGroupType:      model.GroupTypeGroup,
			BarAndLineAxis: model.BarAndLineAxis{
				X: []string{"month"},
				Y: []string{"online", "retail"},
			},
			ColumnSettings: map[string]model.ColumnSettings{
				"online": settings,
				"retail": settings,
			},
		},
		Ticks: []string{"Jan", "Feb"},
		Datasets: []chart.Dataset{
			{ID: "online", Label: "Online", DataKey: "online", Values: []*float64{ptr(20), ptr(30)}},
			{ID: "retail", Label: "Retail", DataKey: "retail", Values: []*float64{ptr(80), ptr(70)}},
		},
	}
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	updated, ok := next.(Model)
	require.True(t, ok)
	return updated, cmd
}

func TestModel_ToggleRecomputesLabels(t *testing.T) {
	m := newModel(shareChart(), defaultConfig())

	assert.Equal(t, "20%", m.Labels().At(0, 0).Text, "two visible series use the stacked total")

	m, _ = update(t, m, keyPress("2"))
	assert.True(t, m.chart.Datasets[1].Hidden)
	assert.Equal(t, "40%", m.Labels().At(0, 0).Text, "20 of the online total 50")
	assert.Equal(t, "60%", m.Labels().At(0, 1).Text)
	assert.Equal(t, "Retail hidden", m.status)

	m, _ = update(t, m, keyPress("2"))
	assert.Equal(t, "20%", m.Labels().At(0, 0).Text)

	m, _ = update(t, m, keyPress("1"))
	m, _ = update(t, m, keyPress("2"))
	assert.Zero(t, m.chart.VisibleCount())
	assert.Zero(t, m.Labels().Count())

	m, _ = update(t, m, keyPress("a"))
	assert.Equal(t, 2, m.chart.VisibleCount())
	assert.Equal(t, "all series shown", m.status)
}

func TestModel_UnknownSeries(t *testing.T) {
	m := newModel(shareChart(), defaultConfig())

	m, cmd := update(t, m, keyPress("7"))
	assert.Nil(t, cmd)
	assert.Equal(t, "no series 7", m.status)
	assert.Equal(t, 2, m.chart.VisibleCount())
}

func TestModel_CycleMode(t *testing.T) {
	m := newModel(shareChart(), defaultConfig())

	m, _ = update(t, m, keyPress("m"))
	assert.Equal(t, "percentage mode: none", m.status)
	assert.Equal(t, "20", m.Labels().At(0, 0).Text)

	m, _ = update(t, m, keyPress("m"))
	assert.Equal(t, "percentage mode: stacked", m.status)
	assert.Equal(t, "80%", m.Labels().At(1, 0).Text)

	m, _ = update(t, m, keyPress("m"))
	m, _ = update(t, m, keyPress("m"))
	assert.Equal(t, "percentage mode: configured", m.status)
}

func TestModel_ModeOverrideOption(t *testing.T) {
	disabled := datalabel.PercentageDisabled
	cfg := defaultConfig()
	WithModeOverride(&disabled)(&cfg)

	m := newModel(shareChart(), cfg)
	assert.Equal(t, "80", m.Labels().At(1, 0).Text)
	assert.Equal(t, "none", m.modeName())
}

func TestModel_Quit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{keyPress("q"), {Type: tea.KeyCtrlC}} {
		m := newModel(shareChart(), defaultConfig())
		m, cmd := update(t, m, msg)

		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.True(t, m.quitting)
		assert.Empty(t, m.View())
	}
}

func TestModel_View(t *testing.T) {
	cfg := defaultConfig()
	WithTitle("Revenue")(&cfg)
	WithSize(100, 30)(&cfg)

	m := newModel(shareChart(), cfg)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)

	view := m.View()
	for _, want := range []string{"Revenue", "Online", "Retail", "20%", "toggle series"} {
		assert.Contains(t, view, want)
	}

	m, _ = update(t, m, keyPress("c"))
	assert.True(t, m.config.ShowChart)
	assert.Contains(t, m.View(), "1 Online")

	m, _ = update(t, m, keyPress("?"))
	assert.True(t, m.help.ShowAll)
	assert.Contains(t, m.View(), "percentage mode")
}

func TestRun_RequiresDatasets(t *testing.T) {
	err := Run(context.Background(), &chart.Chart{})
	assert.ErrorIs(t, err, common.ErrNoDatasets)
}
