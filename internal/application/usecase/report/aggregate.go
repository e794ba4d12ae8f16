// Package report contains report-building use cases.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

const (
	monthBucketLayout = "2006-01"
	dayBucketLayout   = "2006-01-02"
)

// periodMonths returns the normalization length for a report kind: a calendar
// month counts as exactly 1, a year as exactly 12, and a custom range as its
// day count over the average month length.
func periodMonths(kind ReportKind, period valueobject.ReportPeriod) decimal.Decimal {
	switch kind {
	case KindMonthly:
		return decimal.NewFromInt(1)
	case KindAnnual:
		return decimal.NewFromInt(12)
	default:
		return period.Months()
	}
}

// aggregate builds report data from an expense list. Only tax-deductible
// expenses contribute to the aggregates; every summed amount is
// recurrence-adjusted for the period. Pure function of its inputs.
func aggregate(kind ReportKind, title string, period valueobject.ReportPeriod, expenses []*entity.ExpenseWithCategory) *ReportData {
	months := periodMonths(kind, period)

	data := &ReportData{
		Kind:              kind,
		Title:             title,
		Period:            period,
		CategoryBreakdown: make(map[string]decimal.Decimal),
		CurrencyBreakdown: make(map[string]decimal.Decimal),
	}

	var dateLayout string
	switch kind {
	case KindAnnual:
		dateLayout = monthBucketLayout
	case KindCustom:
		dateLayout = dayBucketLayout
	}
	if dateLayout != "" {
		data.DateBreakdown = make(map[string]decimal.Decimal)
	}

	for _, item := range expenses {
		expense := item.Expense
		if !expense.IsTaxDeductible {
			continue
		}

		adjusted := AdjustedAmount(expense, months)

		data.TotalAmount = data.TotalAmount.Add(adjusted)
		data.TaxDeductibleAmount = data.TaxDeductibleAmount.Add(adjusted)
		if expense.IsRecurring {
			data.RecurringAmount = data.RecurringAmount.Add(adjusted)
		}
		data.TransactionCount++

		category := item.CategoryName()
		data.CategoryBreakdown[category] = data.CategoryBreakdown[category].Add(adjusted)
		data.CurrencyBreakdown[expense.Currency] = data.CurrencyBreakdown[expense.Currency].Add(adjusted)

		if dateLayout != "" {
			bucket := expense.ExpenseDate.Format(dateLayout)
			data.DateBreakdown[bucket] = data.DateBreakdown[bucket].Add(adjusted)
		}
	}

	// The per-transaction average is a custom-report metric only.
	if kind == KindCustom && data.TransactionCount > 0 {
		count := decimal.NewFromInt(int64(data.TransactionCount))
		data.AverageTransactionAmount = data.TotalAmount.Div(count).Round(2)
	}

	return data
}
