// Package valueobject defines immutable domain value objects.
package valueobject

import (
	"strings"

	"github.com/shopspring/decimal"
)

// currencySymbols maps supported ISO 4217 codes to their display symbols.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"AUD": "A$",
	"CAD": "C$",
	"INR": "₹",
	"JPY": "¥",
	"CNY": "¥",
}

// CurrencySymbol returns the display symbol for a currency code, or the code
// itself when no symbol is known.
func CurrencySymbol(currency string) string {
	if symbol, ok := currencySymbols[strings.ToUpper(currency)]; ok {
		return symbol
	}
	return currency
}

// IsSupportedCurrency reports whether the code belongs to the set of
// currencies the application can display.
func IsSupportedCurrency(currency string) bool {
	_, ok := currencySymbols[strings.ToUpper(currency)]
	return ok
}

// FormatAmount renders an amount in the display convention of the given
// currency: symbol followed by the amount with two decimal places.
func FormatAmount(amount decimal.Decimal, currency string) string {
	return CurrencySymbol(currency) + amount.StringFixed(2)
}
