// Package currency contains exchange-rate orchestration and conversion use cases.
package currency

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// staticRates is the last-resort conversion table, quoted as units of the
// keyed currency per 1 AUD. Approximate figures, only served when both the
// live source and the fallback cache are unavailable.
var staticRates = map[string]decimal.Decimal{
	"USD": decimal.NewFromFloat(0.65),
	"EUR": decimal.NewFromFloat(0.61),
	"GBP": decimal.NewFromFloat(0.52),
	"AUD": decimal.NewFromInt(1),
	"CAD": decimal.NewFromFloat(0.91),
	"INR": decimal.NewFromFloat(55.0),
	"JPY": decimal.NewFromFloat(96.0),
	"CNY": decimal.NewFromFloat(4.7),
}

// staticSnapshot builds an unsuccessful snapshot from the static table.
func staticSnapshot(baseCurrency, errorMessage string) *valueobject.RateSnapshot {
	rates := make(map[string]decimal.Decimal, len(staticRates))
	for code, rate := range staticRates {
		rates[code] = rate
	}

	return &valueobject.RateSnapshot{
		BaseCurrency: baseCurrency,
		Rates:        rates,
		FetchedAt:    time.Now().UTC(),
		IsSuccess:    false,
		ErrorMessage: errorMessage,
	}
}
