// Package source loads metric definitions and their result rows.
package source

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Veraticus/chartlabel/internal/common"
	"github.com/Veraticus/chartlabel/internal/model"
	"gopkg.in/yaml.v3"
)

// LoadMetricFile reads and validates a YAML metric definition.
func LoadMetricFile(path string) (*model.Metric, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the command line
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("metric file %s: %w", path, common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read metric file: %w", err)
	}

	metric, err := ParseMetric(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("Loaded metric",
		"path", path,
		"name", metric.Name,
		"rows", len(metric.Data))

	return metric, nil
}

// ParseMetric decodes a YAML metric definition. Column formats missing from
// the document start from the default format.
func ParseMetric(data []byte) (*model.Metric, error) {
	var metric model.Metric
	if err := yaml.Unmarshal(data, &metric); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}

	if err := metric.Validate(); err != nil {
		return nil, err
	}

	return &metric, nil
}

// MetricFiles lists the YAML files directly inside dir in lexical order.
func MetricFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("metric directory %s: %w", dir, common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read metric directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".yaml", ".yml":
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}
