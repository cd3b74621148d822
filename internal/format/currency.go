package format

import "strings"

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "CN¥",
	"INR": "₹",
	"KRW": "₩",
	"CAD": "CA$",
	"AUD": "A$",
	"MXN": "MX$",
	"BRL": "R$",
}

// currencySymbol returns the display symbol for an ISO 4217 code.
// Unknown codes are shown as the code itself followed by a space.
func currencySymbol(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = "USD"
	}
	if symbol, ok := currencySymbols[code]; ok {
		return symbol
	}
	return code + " "
}
