package model

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ColumnType is the semantic kind of a result column.
type ColumnType string

const (
	// ColumnTypeNumber marks numeric columns.
	ColumnTypeNumber ColumnType = "number"
	// ColumnTypeText marks string columns.
	ColumnTypeText ColumnType = "text"
	// ColumnTypeDate marks date and timestamp columns.
	ColumnTypeDate ColumnType = "date"
)

// Style selects how a value is displayed.
type Style string

const (
	StyleNumber   Style = "number"
	StylePercent  Style = "percent"
	StyleCurrency Style = "currency"
	StyleDate     Style = "date"
	StyleString   Style = "string"
)

// MissingValue is the replacement shown for missing data points.
// A nil *MissingValue means missing data stays missing.
type MissingValue struct {
	Text    string
	Number  float64
	Numeric bool
}

// MissingNumber returns a numeric replacement.
func MissingNumber(n float64) *MissingValue {
	return &MissingValue{Number: n, Numeric: true}
}

// MissingText returns a string replacement.
func MissingText(s string) *MissingValue {
	return &MissingValue{Text: s}
}

// String returns the replacement as it would be typed in a metric file.
func (m MissingValue) String() string {
	if m.Numeric {
		return strconv.FormatFloat(m.Number, 'f', -1, 64)
	}
	return m.Text
}

// UnmarshalYAML accepts numeric and string scalars.
func (m *MissingValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("replaceMissingDataWith must be a scalar, got %v", node.Tag)
	}

	switch node.ShortTag() {
	case "!!int", "!!float":
		n, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return fmt.Errorf("invalid replaceMissingDataWith %q: %w", node.Value, err)
		}
		*m = MissingValue{Number: n, Numeric: true}
	default:
		*m = MissingValue{Text: node.Value}
	}
	return nil
}

// ColumnLabelFormat describes how values of one column are displayed.
type ColumnLabelFormat struct {
	ReplaceMissingDataWith *MissingValue `yaml:"replaceMissingDataWith"`
	ColumnType             ColumnType    `yaml:"columnType"`
	Style                  Style         `yaml:"style"`
	DisplayName            string        `yaml:"displayName"`
	NumberSeparatorStyle   string        `yaml:"numberSeparatorStyle"`
	Prefix                 string        `yaml:"prefix"`
	Suffix                 string        `yaml:"suffix"`
	Currency               string        `yaml:"currency"`
	DateFormat             string        `yaml:"dateFormat"`
	Multiplier             float64       `yaml:"multiplier"`
	MinimumFractionDigits  int           `yaml:"minimumFractionDigits"`
	MaximumFractionDigits  int           `yaml:"maximumFractionDigits"`
	CompactNumbers         bool          `yaml:"compactNumbers"`
}

// DefaultColumnLabelFormat returns the format applied to columns without explicit settings.
func DefaultColumnLabelFormat() ColumnLabelFormat {
	return ColumnLabelFormat{
		ColumnType:             ColumnTypeNumber,
		Style:                  StyleNumber,
		NumberSeparatorStyle:   ",",
		Currency:               "USD",
		Multiplier:             1,
		MinimumFractionDigits:  0,
		MaximumFractionDigits:  2,
		ReplaceMissingDataWith: MissingNumber(0),
	}
}

// UnmarshalYAML overlays the decoded keys onto DefaultColumnLabelFormat.
func (f *ColumnLabelFormat) UnmarshalYAML(node *yaml.Node) error {
	type plain ColumnLabelFormat
	decoded := plain(DefaultColumnLabelFormat())
	if err := node.Decode(&decoded); err != nil {
		return err
	}

	// An explicit null separator disables grouping.
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == "numberSeparatorStyle" && node.Content[i+1].ShortTag() == "!!null" {
			decoded.NumberSeparatorStyle = ""
		}
	}

	*f = ColumnLabelFormat(decoded)
	return nil
}

// WithPercentStyle returns a copy styled as a plain percentage.
func (f ColumnLabelFormat) WithPercentStyle() ColumnLabelFormat {
	f.Style = StylePercent
	f.ColumnType = ColumnTypeNumber
	return f
}

// SimilarTo reports whether two formats render values interchangeably.
func (f ColumnLabelFormat) SimilarTo(other ColumnLabelFormat) bool {
	if f.Style != other.Style || f.ColumnType != other.ColumnType {
		return false
	}
	if f.Style == StyleCurrency {
		return f.Currency == other.Currency
	}
	return true
}

// Validate checks fraction digit bounds.
func (f ColumnLabelFormat) Validate() error {
	if f.MinimumFractionDigits < 0 || f.MaximumFractionDigits < 0 {
		return fmt.Errorf("fraction digits must not be negative (min %d, max %d)",
			f.MinimumFractionDigits, f.MaximumFractionDigits)
	}
	if f.MaximumFractionDigits > 20 {
		return fmt.Errorf("maximumFractionDigits %d exceeds 20", f.MaximumFractionDigits)
	}
	switch f.Style {
	case StyleNumber, StylePercent, StyleCurrency, StyleDate, StyleString:
	default:
		return fmt.Errorf("unknown style %q", f.Style)
	}
	return nil
}
