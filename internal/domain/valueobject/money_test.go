// Package valueobject defines immutable domain value objects.
package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		name     string
		amount   decimal.Decimal
		currency string
		want     string
	}{
		{"usd", decimal.NewFromFloat(1234.5), "USD", "$1234.50"},
		{"eur", decimal.NewFromInt(99), "EUR", "€99.00"},
		{"aud", decimal.NewFromFloat(0.1), "AUD", "A$0.10"},
		{"inr", decimal.NewFromInt(55), "INR", "₹55.00"},
		{"lowercase code", decimal.NewFromInt(10), "gbp", "£10.00"},
		{"unknown code falls back to the code", decimal.NewFromInt(5), "XYZ", "XYZ5.00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatAmount(tc.amount, tc.currency); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestIsSupportedCurrency(t *testing.T) {
	if !IsSupportedCurrency("usd") {
		t.Error("expected usd to be supported")
	}
	if IsSupportedCurrency("XYZ") {
		t.Error("expected XYZ to be unsupported")
	}
}
