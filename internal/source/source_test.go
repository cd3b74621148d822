package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Veraticus/chartlabel/internal/common"
	"github.com/Veraticus/chartlabel/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const revenueMetric = `
name: Revenue by channel
timeFrame: 2024
chartConfig:
  selectedChartType: bar
  barGroupType: stack
  barShowTotalAtTop: true
  barAndLineAxis:
    x: [month]
    y: [online, retail]
  columnSettings:
    online:
      showDataLabels: true
      showDataLabelsAsPercentage: true
  columnLabelFormats:
    online:
      style: currency
      replaceMissingDataWith: null
data:
  - {month: Jan, online: 25, retail: 75}
  - {month: Feb, online: null, retail: 30}
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadMetricFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "revenue.yaml", revenueMetric)

	metric, err := LoadMetricFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Revenue by channel", metric.Name)
	assert.Equal(t, model.ChartTypeBar, metric.ChartConfig.SelectedChartType)
	assert.True(t, metric.ChartConfig.BarShowTotalAtTop)
	require.Len(t, metric.Data, 2)
	assert.Nil(t, metric.Data[1]["online"])

	online := metric.ChartConfig.FormatFor("online")
	assert.Equal(t, model.StyleCurrency, online.Style)
	assert.Nil(t, online.ReplaceMissingDataWith)
	assert.Equal(t, ",", online.NumberSeparatorStyle, "unset keys keep their defaults")
	assert.Equal(t, 2, online.MaximumFractionDigits)

	assert.True(t, metric.ChartConfig.SettingsFor("online").ShowDataLabelsAsPercentage)
}

func TestLoadMetricFile_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "malformed yaml",
			content: "name: [unterminated",
			wantErr: common.ErrInvalidConfig,
		},
		{
			name:    "missing name",
			content: "chartConfig: {selectedChartType: bar, barAndLineAxis: {x: [a], y: [b]}}",
			wantErr: common.ErrInvalidConfig,
		},
		{
			name:    "unsupported chart",
			content: "name: pie\nchartConfig: {selectedChartType: pie}",
			wantErr: common.ErrUnsupportedChart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, "metric.yaml", tt.content)
			_, err := LoadMetricFile(path)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadMetricFile(filepath.Join(dir, "absent.yaml"))
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}

func TestMetricFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.yml", revenueMetric)
	writeFile(t, dir, "a.yaml", revenueMetric)
	writeFile(t, dir, "notes.txt", "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.yaml"), 0o750))

	files, err := MetricFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.yaml"), filepath.Join(dir, "b.yml")}, files)

	_, err = MetricFiles(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func seedSales(t *testing.T, s *SQLiteSource) {
	t.Helper()
	ctx := context.Background()

	_, err := s.db.ExecContext(ctx, `CREATE TABLE sales (month TEXT, channel TEXT, amount REAL, note BLOB)`)
	require.NoError(t, err)
	_, err = s.db.ExecContext(ctx, `INSERT INTO sales VALUES
		('Jan', 'online', 25, X'6869'),
		('Jan', 'retail', 75, NULL),
		('Feb', 'online', 10, NULL)`)
	require.NoError(t, err)
}

func TestSQLiteSource_Query(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	seedSales(t, s)

	rows, err := s.Query(context.Background(), "SELECT month, channel, amount, note FROM sales ORDER BY rowid")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Jan", rows[0]["month"])
	assert.Equal(t, "hi", rows[0]["note"], "blobs are returned as strings")
	assert.InDelta(t, 75.0, rows[1]["amount"], 1e-9)
	assert.Nil(t, rows[1]["note"])

	rows, err = s.Query(context.Background(), "SELECT amount FROM sales WHERE channel = ?", "online")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestSQLiteSource_QueryErrors(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	_, err = s.Query(context.Background(), "   ")
	assert.ErrorIs(t, err, common.ErrQueryFailed)

	_, err = s.Query(context.Background(), "SELECT * FROM missing_table")
	assert.ErrorIs(t, err, common.ErrQueryFailed)
	assert.False(t, common.IsRetryable(err))
}

func TestSQLiteSource_Resolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "metrics.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	seedSales(t, s)

	ctx := context.Background()

	t.Run("runs the metric query", func(t *testing.T) {
		metric := &model.Metric{Name: "sales", SQL: "SELECT month, SUM(amount) AS total FROM sales GROUP BY month ORDER BY month"}
		require.NoError(t, s.Resolve(ctx, metric))
		require.Len(t, metric.Data, 2)
		assert.Equal(t, "Feb", metric.Data[0]["month"])
	})

	t.Run("inline rows win", func(t *testing.T) {
		metric := &model.Metric{Name: "inline", SQL: "SELECT 1", Data: []model.Row{{"a": 1}}}
		require.NoError(t, s.Resolve(ctx, metric))
		assert.Equal(t, []model.Row{{"a": 1}}, metric.Data)
	})

	t.Run("no sql", func(t *testing.T) {
		err := s.Resolve(ctx, &model.Metric{Name: "empty"})
		assert.ErrorIs(t, err, common.ErrMissingConfig)
	})
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := Open("")
	assert.ErrorIs(t, err, common.ErrMissingConfig)
}
