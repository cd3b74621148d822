// Package format turns numeric values into display strings according to a
// column label format.
package format

import (
	"math"
	"strconv"

	"github.com/Veraticus/chartlabel/internal/model"
)

// LabelFormatter formats values for chart labels, axes and tables.
// The zero value is ready to use and safe for concurrent use.
type LabelFormatter struct{}

// NewLabelFormatter creates a new label formatter.
func NewLabelFormatter() *LabelFormatter {
	return &LabelFormatter{}
}

// Format renders value using the given column format.
func (f *LabelFormatter) Format(value float64, format model.ColumnLabelFormat) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		value = 0
	}

	var body string
	switch format.Style {
	case model.StyleDate:
		body = formatDate(value, format.DateFormat)
	case model.StyleString:
		body = strconv.FormatFloat(value, 'f', -1, 64)
	default:
		body = formatNumeric(value, format)
	}

	return format.Prefix + body + format.Suffix
}

// FormatMissing renders the replacement configured for missing data points.
// Text columns never accept a numeric replacement.
func (f *LabelFormatter) FormatMissing(format model.ColumnLabelFormat) string {
	replacement := format.ReplaceMissingDataWith
	if replacement == nil {
		return "null"
	}

	if !replacement.Numeric {
		return replacement.Text
	}
	if format.ColumnType != model.ColumnTypeNumber {
		return "null"
	}
	return f.Format(replacement.Number, format)
}

func formatNumeric(value float64, format model.ColumnLabelFormat) string {
	n := formatDecimal(value, format)

	switch format.Style {
	case model.StylePercent:
		return n.sign() + n.digits + "%"
	case model.StyleCurrency:
		return n.sign() + currencySymbol(format.Currency) + n.digits
	default:
		return n.sign() + n.digits
	}
}
