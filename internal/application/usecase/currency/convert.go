// Package currency contains exchange-rate orchestration and conversion use cases.
package currency

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// Converter converts amounts into the reference currency using the snapshot
// resolved by RateService. Conversions never fail: any problem degrades to an
// identity result (amount unchanged, rate 1) tagged unsuccessful, so report
// builders always receive a renderable figure.
type Converter struct {
	rates *RateService
}

// NewConverter creates a new Converter instance.
func NewConverter(rates *RateService) *Converter {
	return &Converter{rates: rates}
}

// Convert converts an amount from one currency to the reference currency.
// Stored rates are "units of fromCurrency per 1 unit of reference", so the
// conversion is amount / rate, rounded to 2 decimal places.
func (c *Converter) Convert(ctx context.Context, amount decimal.Decimal, fromCurrency, toCurrency string) valueobject.ConversionResult {
	if strings.EqualFold(fromCurrency, toCurrency) {
		return identityResult(amount, fromCurrency, toCurrency, true, "")
	}

	snapshot := c.rates.GetLatestRates(ctx)
	return convertWith(snapshot, amount, fromCurrency, toCurrency)
}

// ConvertBreakdown converts a currency-keyed breakdown bucket by bucket and
// returns the summed total in the reference currency together with the
// snapshot used, so callers can attach rate provenance to the report.
func (c *Converter) ConvertBreakdown(ctx context.Context, breakdown map[string]decimal.Decimal, toCurrency string) (decimal.Decimal, *valueobject.RateSnapshot) {
	snapshot := c.rates.GetLatestRates(ctx)

	total := decimal.Zero
	for fromCurrency, amount := range breakdown {
		if strings.EqualFold(fromCurrency, toCurrency) {
			total = total.Add(amount)
			continue
		}
		result := convertWith(snapshot, amount, fromCurrency, toCurrency)
		total = total.Add(result.ConvertedAmount)
	}

	return total, snapshot
}

// ProportionalShare estimates the converted value of a sub-total whose
// currency composition is unknown by distributing the exactly-converted grand
// total in proportion to the sub-total's share of the original total.
func (c *Converter) ProportionalShare(totalConverted, sub, totalOriginal decimal.Decimal) decimal.Decimal {
	if totalOriginal.IsZero() {
		return decimal.Zero
	}
	return totalConverted.Mul(sub).Div(totalOriginal).Round(2)
}

func convertWith(snapshot *valueobject.RateSnapshot, amount decimal.Decimal, fromCurrency, toCurrency string) valueobject.ConversionResult {
	if strings.EqualFold(fromCurrency, toCurrency) {
		return identityResult(amount, fromCurrency, toCurrency, true, "")
	}

	if !strings.EqualFold(toCurrency, snapshot.BaseCurrency) {
		message := fmt.Sprintf("conversion to %s is not supported, rates are quoted against %s", toCurrency, snapshot.BaseCurrency)
		return identityResult(amount, fromCurrency, toCurrency, false, message)
	}

	rate, ok := snapshot.Rate(fromCurrency)
	if !ok || rate.IsZero() {
		message := fmt.Sprintf("no exchange rate available for %s", fromCurrency)
		return identityResult(amount, fromCurrency, toCurrency, false, message)
	}

	return valueobject.ConversionResult{
		OriginalAmount:    amount,
		OriginalCurrency:  fromCurrency,
		ConvertedAmount:   amount.Div(rate).Round(2),
		ConvertedCurrency: toCurrency,
		Rate:              rate,
		RateTimestamp:     snapshot.FetchedAt,
		IsSuccess:         snapshot.IsSuccess,
		ErrorMessage:      snapshot.ErrorMessage,
	}
}

func identityResult(amount decimal.Decimal, fromCurrency, toCurrency string, success bool, message string) valueobject.ConversionResult {
	return valueobject.ConversionResult{
		OriginalAmount:    amount,
		OriginalCurrency:  fromCurrency,
		ConvertedAmount:   amount,
		ConvertedCurrency: toCurrency,
		Rate:              decimal.NewFromInt(1),
		IsSuccess:         success,
		ErrorMessage:      message,
	}
}
