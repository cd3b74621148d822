package render

import (
	"strings"
	"testing"

	"github.com/Veraticus/chartlabel/internal/chart"
	"github.com/Veraticus/chartlabel/internal/datalabel"
	"github.com/Veraticus/chartlabel/internal/format"
	"github.com/Veraticus/chartlabel/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func testChart() *chart.Chart {
	settings := model.ColumnSettings{ShowDataLabels: true}
	return &chart.Chart{
		Config: model.ChartConfig{
			SelectedChartType: model.ChartTypeBar,
			BarGroupType:      model.GroupTypePercentageStack,
			BarShowTotalAtTop: true,
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
			{ID: "online", Label: "Online", DataKey: "online", Values: []*float64{ptr(25), nil}},
			{ID: "retail", Label: "Retail", DataKey: "retail", Values: []*float64{ptr(75), ptr(0)}},
		},
	}
}

func TestLabelTable(t *testing.T) {
	formatter := format.NewLabelFormatter()
	resolver := datalabel.NewResolver(formatter)

	t.Run("labels, missing cells and totals", func(t *testing.T) {
		c := testChart()
		out := LabelTable(c, c.Labels(resolver), c.StackTotalLabels(formatter), formatter)

		for _, want := range []string{"Series", "Jan", "Feb", "Online", "Retail", "25%", "75%", totalRowName, "100"} {
			assert.Contains(t, out, want)
		}
		assert.Contains(t, out, "0", "missing online value shows the zero replacement")
		assert.Contains(t, out, noLabel, "zero values are present but unlabelled")
	})

	t.Run("null replacement", func(t *testing.T) {
		c := testChart()
		keep := model.DefaultColumnLabelFormat()
		keep.ReplaceMissingDataWith = nil
		c.Config.ColumnLabelFormats = map[string]model.ColumnLabelFormat{"online": keep}

		out := LabelTable(c, c.Labels(resolver), nil, formatter)
		assert.Contains(t, out, "null")
		assert.NotContains(t, out, totalRowName)
	})

	t.Run("hidden datasets", func(t *testing.T) {
		c := testChart()
		require.NoError(t, c.SetHidden(1, true))

		out := LabelTable(c, c.Labels(resolver), nil, formatter)
		assert.Contains(t, out, "Retail ("+hiddenMarker+")")
		assert.Contains(t, out, "100%", "the only visible series owns the whole stack")
	})
}

func TestBarChart(t *testing.T) {
	c := testChart()
	out := BarChart(c, 40, 10)

	require.NotEmpty(t, out)
	assert.Contains(t, out, "1 Online")
	assert.Contains(t, out, "2 Retail")

	require.NoError(t, c.Toggle(0))
	out = BarChart(c, 0, 0)
	assert.Contains(t, out, "1 Online ("+hiddenMarker+")")
}

func TestTitle(t *testing.T) {
	out := Title(&model.Metric{Name: "Revenue", Description: "By channel", TimeFrame: "2024"})
	assert.Contains(t, out, "Revenue")
	assert.Contains(t, out, "By channel · 2024")

	out = Title(&model.Metric{Name: "Bare"})
	assert.Equal(t, 1, strings.Count(out, "Bare"))
}

func TestSeriesColor(t *testing.T) {
	assert.Equal(t, SeriesColors[0], SeriesColor(len(SeriesColors)))
	assert.Equal(t, SeriesColors[1], SeriesColor(-1))
}
