// Package report contains report-building use cases.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// ReportKind identifies the period shape a report covers.
type ReportKind string

const (
	KindMonthly ReportKind = "monthly"
	KindAnnual  ReportKind = "annual"
	KindCustom  ReportKind = "custom"
)

// ReportData is the aggregated result of a report request. The date
// breakdown varies by kind: absent for monthly reports, YYYY-MM buckets for
// annual, YYYY-MM-DD buckets for custom ranges. Built fresh per request and
// never persisted.
type ReportData struct {
	Kind   ReportKind
	Title  string
	Period valueobject.ReportPeriod

	TotalAmount         decimal.Decimal
	TaxDeductibleAmount decimal.Decimal
	RecurringAmount     decimal.Decimal
	TransactionCount    int

	// AverageTransactionAmount is total over count, set for custom-range
	// reports only. Zero for monthly and annual reports and for empty ranges.
	AverageTransactionAmount decimal.Decimal

	CategoryBreakdown map[string]decimal.Decimal
	CurrencyBreakdown map[string]decimal.Decimal
	DateBreakdown     map[string]decimal.Decimal

	Conversion *ReferenceConversion
}

// ReferenceConversion is the optional reference-currency section attached to
// a report. The converted total is exact per currency bucket; the remaining
// figures are proportional estimates. IsSuccess mirrors the reliability of
// the rate snapshot used.
type ReferenceConversion struct {
	Currency                 string
	TotalAmount              decimal.Decimal
	TaxDeductibleAmount      decimal.Decimal
	RecurringAmount          decimal.Decimal
	AverageTransactionAmount decimal.Decimal
	CategoryBreakdown        map[string]decimal.Decimal

	Rates         map[string]decimal.Decimal
	RateTimestamp time.Time
	IsSuccess     bool
	ErrorMessage  string
}
