// Package valueobject defines immutable domain value objects.
package valueobject

import (
	"time"

	"github.com/shopspring/decimal"
)

// avgDaysPerMonth is the average Gregorian month length used to express an
// arbitrary day range as a fractional number of months.
var avgDaysPerMonth = decimal.NewFromFloat(30.44)

// ReportPeriod is a closed date interval [From, To] a report covers.
type ReportPeriod struct {
	From time.Time
	To   time.Time
}

// MonthPeriod returns the period covering a single calendar month.
func MonthPeriod(year int, month time.Month) ReportPeriod {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return ReportPeriod{
		From: from,
		To:   from.AddDate(0, 1, -1),
	}
}

// CalendarYearPeriod returns the period covering a calendar year.
func CalendarYearPeriod(year int) ReportPeriod {
	return ReportPeriod{
		From: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}

// FinancialYearPeriod returns the period covering a financial year, which
// runs from July 1 of the given year to June 30 of the next.
func FinancialYearPeriod(year int) ReportPeriod {
	return ReportPeriod{
		From: time.Date(year, time.July, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(year+1, time.June, 30, 0, 0, 0, 0, time.UTC),
	}
}

// CustomPeriod returns the period covering an arbitrary date range.
// Time-of-day components are truncated to whole days.
func CustomPeriod(from, to time.Time) ReportPeriod {
	return ReportPeriod{
		From: time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC),
		To:   time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC),
	}
}

// Days returns the inclusive number of days in the period.
func (p ReportPeriod) Days() int {
	return int(p.To.Sub(p.From).Hours()/24) + 1
}

// Months returns the period length expressed as a fractional number of
// months (days / 30.44). Recurring expenses are scaled by this figure when
// normalized into a report.
func (p ReportPeriod) Months() decimal.Decimal {
	return decimal.NewFromInt(int64(p.Days())).Div(avgDaysPerMonth)
}

// Contains reports whether the given date falls inside the period.
func (p ReportPeriod) Contains(date time.Time) bool {
	return !date.Before(p.From) && !date.After(p.To)
}
