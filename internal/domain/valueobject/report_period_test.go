// Package valueobject defines immutable domain value objects.
package valueobject

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestReportPeriod(t *testing.T) {
	t.Run("month period covers the whole month", func(t *testing.T) {
		p := MonthPeriod(2024, time.February)

		if !p.From.Equal(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected start %s", p.From)
		}
		// 2024 is a leap year.
		if !p.To.Equal(time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected end %s", p.To)
		}
		if p.Days() != 29 {
			t.Errorf("expected 29 days, got %d", p.Days())
		}
	})

	t.Run("calendar year period", func(t *testing.T) {
		p := CalendarYearPeriod(2023)

		if p.Days() != 365 {
			t.Errorf("expected 365 days, got %d", p.Days())
		}
	})

	t.Run("financial year runs July 1 to June 30", func(t *testing.T) {
		p := FinancialYearPeriod(2024)

		if !p.From.Equal(time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected start %s", p.From)
		}
		if !p.To.Equal(time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected end %s", p.To)
		}
	})

	t.Run("custom period truncates time of day", func(t *testing.T) {
		p := CustomPeriod(
			time.Date(2024, time.January, 1, 13, 45, 0, 0, time.UTC),
			time.Date(2024, time.January, 2, 1, 0, 0, 0, time.UTC),
		)

		if p.Days() != 2 {
			t.Errorf("expected 2 days, got %d", p.Days())
		}
	})

	t.Run("single-day period counts one day", func(t *testing.T) {
		day := time.Date(2024, time.May, 5, 0, 0, 0, 0, time.UTC)
		p := CustomPeriod(day, day)

		if p.Days() != 1 {
			t.Errorf("expected 1 day, got %d", p.Days())
		}
	})

	t.Run("months divides days by average month length", func(t *testing.T) {
		p := CustomPeriod(
			time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
		)

		// 31 / 30.44 ~= 1.0184
		if !p.Months().Round(4).Equal(decimal.NewFromFloat(1.0184)) {
			t.Errorf("expected ~1.0184 months, got %s", p.Months().Round(4))
		}
	})

	t.Run("contains is inclusive on both bounds", func(t *testing.T) {
		p := MonthPeriod(2024, time.March)

		if !p.Contains(p.From) || !p.Contains(p.To) {
			t.Error("expected bounds to be contained")
		}
		if p.Contains(p.From.AddDate(0, 0, -1)) || p.Contains(p.To.AddDate(0, 0, 1)) {
			t.Error("expected dates outside the period to be excluded")
		}
	})
}
