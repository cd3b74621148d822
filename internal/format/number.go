package format

import (
	"math"
	"strings"

	"github.com/Veraticus/chartlabel/internal/model"
	"github.com/shopspring/decimal"
)

// number is a rounded, grouped magnitude with its sign kept apart so that
// currency symbols can sit between the two.
type number struct {
	digits   string
	negative bool
}

func (n number) sign() string {
	if n.negative {
		return "-"
	}
	return ""
}

var thousand = decimal.New(1, 3)

// compactUnits are ordered from the smallest unit up.
var compactUnits = []struct {
	threshold decimal.Decimal
	suffix    string
}{
	{decimal.New(1, 3), "K"},
	{decimal.New(1, 6), "M"},
	{decimal.New(1, 9), "B"},
	{decimal.New(1, 12), "T"},
}

func formatDecimal(value float64, format model.ColumnLabelFormat) number {
	multiplier := format.Multiplier
	if multiplier == 0 || math.IsNaN(multiplier) || math.IsInf(multiplier, 0) {
		multiplier = 1
	}

	d := decimal.NewFromFloat(value).Mul(decimal.NewFromFloat(multiplier))

	minDigits, maxDigits := fractionDigits(format)

	unit := ""
	if format.CompactNumbers {
		d, unit = compact(d, int32(maxDigits))
	}
	d = d.Round(int32(maxDigits))

	fixed := d.Abs().StringFixed(int32(maxDigits))
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	fracPart = strings.TrimRight(fracPart, "0")
	if len(fracPart) < minDigits {
		fracPart += strings.Repeat("0", minDigits-len(fracPart))
	}

	digits := groupDigits(intPart, format.NumberSeparatorStyle)
	if fracPart != "" {
		digits += "." + fracPart
	}

	return number{
		digits:   digits + unit,
		negative: d.Sign() < 0,
	}
}

// compact scales d by the largest unit that keeps the rounded result below
// 1000, so 999999 becomes 1M rather than 1,000K.
func compact(d decimal.Decimal, places int32) (decimal.Decimal, string) {
	scaled, suffix := d, ""
	for _, u := range compactUnits {
		if scaled.Round(places).Abs().LessThan(thousand) {
			break
		}
		scaled, suffix = d.Div(u.threshold), u.suffix
	}
	return scaled, suffix
}

// fractionDigits clamps the configured bounds so that min <= max.
func fractionDigits(format model.ColumnLabelFormat) (minDigits, maxDigits int) {
	minDigits = max(format.MinimumFractionDigits, 0)
	maxDigits = max(format.MaximumFractionDigits, 0)
	if minDigits > maxDigits {
		maxDigits = minDigits
	}
	return minDigits, maxDigits
}

func groupDigits(intPart, separator string) string {
	if separator == "" || len(intPart) <= 3 {
		return intPart
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteString(separator)
		}
		b.WriteString(intPart[i : i+3])
	}
	return b.String()
}
