package datalabel

import (
	"testing"

	"github.com/Veraticus/chartlabel/internal/common"
	"github.com/Veraticus/chartlabel/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePercentageMode(t *testing.T) {
	tests := []struct {
		input string
		want  PercentageMode
	}{
		{"", PercentageDisabled},
		{"false", PercentageDisabled},
		{"none", PercentageDisabled},
		{"stacked", PercentageStacked},
		{"Stacked", PercentageStacked},
		{"data-label", PercentagePerSeries},
		{"series", PercentagePerSeries},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePercentageMode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParsePercentageMode("ratio")
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestPercentageMode_StringRoundTrips(t *testing.T) {
	for _, m := range []PercentageMode{PercentageDisabled, PercentageStacked, PercentagePerSeries} {
		parsed, err := ParsePercentageMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
}

func TestModeFor(t *testing.T) {
	asPercent := model.ColumnSettings{ShowDataLabels: true, ShowDataLabelsAsPercentage: true}
	plain := model.ColumnSettings{ShowDataLabels: true}

	tests := []struct {
		name     string
		chart    model.ChartType
		group    model.GroupType
		settings model.ColumnSettings
		want     PercentageMode
	}{
		{"bar percentage stack", model.ChartTypeBar, model.GroupTypePercentageStack, plain, PercentageStacked},
		{"bar stack with percent labels", model.ChartTypeBar, model.GroupTypeStack, asPercent, PercentageStacked},
		{"bar stack without percent labels", model.ChartTypeBar, model.GroupTypeStack, plain, PercentageDisabled},
		{"bar group with percent labels", model.ChartTypeBar, model.GroupTypeGroup, asPercent, PercentagePerSeries},
		{"line percentage stack", model.ChartTypeLine, model.GroupTypePercentageStack, plain, PercentageStacked},
		{"line stack with percent labels", model.ChartTypeLine, model.GroupTypeStack, asPercent, PercentagePerSeries},
		{"line plain", model.ChartTypeLine, model.GroupTypeNone, plain, PercentageDisabled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ModeFor(tt.chart, tt.group, tt.settings))
		})
	}
}
