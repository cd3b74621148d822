package format

import (
	"strings"
	"time"
)

// DefaultDateLayout renders dates like "Mar 14, 2024".
const DefaultDateLayout = "Jan 2, 2006"

// dateTokens maps metric date format tokens onto Go layout elements. Longer
// tokens come first so that YYYY wins over YY and MMMM over MMM.
var dateTokens = strings.NewReplacer(
	"YYYY", "2006",
	"YY", "06",
	"MMMM", "January",
	"MMM", "Jan",
	"MM", "01",
	"M", "1",
	"DD", "02",
	"D", "2",
	"dddd", "Monday",
	"ddd", "Mon",
	"HH", "15",
	"mm", "04",
	"ss", "05",
)

// formatDate renders value, a Unix timestamp in milliseconds, in UTC.
func formatDate(value float64, dateFormat string) string {
	layout := DefaultDateLayout
	if dateFormat != "" {
		layout = dateTokens.Replace(dateFormat)
	}
	return time.UnixMilli(int64(value)).UTC().Format(layout)
}
