// Package report contains report-building use cases.
package report

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/usecase/currency"
)

// attachConversion builds the reference-currency section for a report and
// attaches it. The grand total is converted exactly from the currency
// breakdown; category, tax-deductible, recurring and average figures are
// distributed proportionally because their currency composition is unknown.
// Never fails: degraded rates are carried through as an unsuccessful section.
func attachConversion(ctx context.Context, converter *currency.Converter, data *ReportData, referenceCurrency string) {
	totalConverted, snapshot := converter.ConvertBreakdown(ctx, data.CurrencyBreakdown, referenceCurrency)

	categories := make(map[string]decimal.Decimal, len(data.CategoryBreakdown))
	for name, amount := range data.CategoryBreakdown {
		categories[name] = converter.ProportionalShare(totalConverted, amount, data.TotalAmount)
	}

	data.Conversion = &ReferenceConversion{
		Currency:                 referenceCurrency,
		TotalAmount:              totalConverted.Round(2),
		TaxDeductibleAmount:      converter.ProportionalShare(totalConverted, data.TaxDeductibleAmount, data.TotalAmount),
		RecurringAmount:          converter.ProportionalShare(totalConverted, data.RecurringAmount, data.TotalAmount),
		AverageTransactionAmount: converter.ProportionalShare(totalConverted, data.AverageTransactionAmount, data.TotalAmount),
		CategoryBreakdown:        categories,
		Rates:                    snapshot.Rates,
		RateTimestamp:            snapshot.FetchedAt,
		IsSuccess:                snapshot.IsSuccess,
		ErrorMessage:             snapshot.ErrorMessage,
	}
}
