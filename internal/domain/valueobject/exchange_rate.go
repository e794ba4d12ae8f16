// Package valueobject defines immutable domain value objects.
package valueobject

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RateSnapshot holds a set of conversion rates against a base currency as
// fetched at a point in time. Each rate is "units of the keyed currency per
// 1 unit of the base currency". Snapshots are never mutated after creation;
// degraded copies are constructed instead.
type RateSnapshot struct {
	BaseCurrency string
	Rates        map[string]decimal.Decimal
	FetchedAt    time.Time
	IsSuccess    bool
	ErrorMessage string
}

// Rate returns the conversion rate for the given currency code, if present.
func (s *RateSnapshot) Rate(currency string) (decimal.Decimal, bool) {
	rate, ok := s.Rates[strings.ToUpper(currency)]
	return rate, ok
}

// Degraded returns a copy of the snapshot tagged as unsuccessful with the
// given message. The rates and timestamp are preserved.
func (s *RateSnapshot) Degraded(message string) *RateSnapshot {
	return &RateSnapshot{
		BaseCurrency: s.BaseCurrency,
		Rates:        s.Rates,
		FetchedAt:    s.FetchedAt,
		IsSuccess:    false,
		ErrorMessage: message,
	}
}

// ConversionResult describes the outcome of converting an amount between two
// currencies. A result is always produced: on failure the conversion degrades
// to identity (amount unchanged, rate 1) with IsSuccess false and an error
// message, so callers always receive a renderable value.
type ConversionResult struct {
	OriginalAmount    decimal.Decimal
	OriginalCurrency  string
	ConvertedAmount   decimal.Decimal
	ConvertedCurrency string
	Rate              decimal.Decimal
	RateTimestamp     time.Time
	IsSuccess         bool
	ErrorMessage      string
}
