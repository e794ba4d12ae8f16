// Package report contains report-building use cases.
package report

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

func sampleAnnualData() *ReportData {
	return &ReportData{
		Kind:                KindAnnual,
		Title:               "Annual Expense Report - 2024",
		Period:              valueobject.CalendarYearPeriod(2024),
		TotalAmount:         decimal.NewFromFloat(1500.50),
		TaxDeductibleAmount: decimal.NewFromFloat(1500.50),
		RecurringAmount:     decimal.NewFromInt(600),
		TransactionCount:    12,
		CategoryBreakdown: map[string]decimal.Decimal{
			"Travel": decimal.NewFromInt(900),
			"Food":   decimal.NewFromFloat(600.50),
		},
		CurrencyBreakdown: map[string]decimal.Decimal{
			"USD": decimal.NewFromInt(1000),
			"EUR": decimal.NewFromFloat(500.50),
		},
		DateBreakdown: map[string]decimal.Decimal{
			"2024-03": decimal.NewFromInt(800),
			"2024-01": decimal.NewFromFloat(700.50),
		},
	}
}

func TestBuildCSV(t *testing.T) {
	t.Run("annual layout with sorted sections", func(t *testing.T) {
		csv := BuildCSV(sampleAnnualData(), "USD")
		lines := strings.Split(csv, "\n")

		want := []string{
			"Annual Expense Report - 2024",
			"",
			"Key,Value",
			"Total Amount,$1500.50",
			"Tax Deductible Amount,$1500.50",
			"Recurring Amount,$600.00",
			"Transaction Count,12",
			"",
			"Month,Amount",
			"2024-01,$700.50",
			"2024-03,$800.00",
			"",
			"Category,Amount",
			"Food,$600.50",
			"Travel,$900.00",
			"",
			"Currency,Amount",
			"EUR,$500.50",
			"USD,$1000.00",
		}

		for i, expected := range want {
			if i >= len(lines) {
				t.Fatalf("missing line %d: expected %q", i, expected)
			}
			if lines[i] != expected {
				t.Errorf("line %d: expected %q, got %q", i, expected, lines[i])
			}
		}
	})

	t.Run("monthly layout omits average and date section", func(t *testing.T) {
		data := sampleAnnualData()
		data.Kind = KindMonthly
		data.DateBreakdown = nil
		data.Title = "Expense Report - January 2024"
		data.Period = valueobject.MonthPeriod(2024, time.January)

		csv := BuildCSV(data, "USD")

		if strings.Contains(csv, "Average Transaction Amount") {
			t.Error("monthly CSV should not include the average row")
		}
		if strings.Contains(csv, "Month,Amount") || strings.Contains(csv, "Date,Amount") {
			t.Error("monthly CSV should not include a date section")
		}
	})

	t.Run("custom layout has the average row and a date section", func(t *testing.T) {
		data := sampleAnnualData()
		data.Kind = KindCustom
		data.AverageTransactionAmount = decimal.NewFromInt(15)
		data.DateBreakdown = map[string]decimal.Decimal{
			"2024-01-15": decimal.NewFromInt(30),
		}

		csv := BuildCSV(data, "USD")

		if !strings.Contains(csv, "Average Transaction Amount,$15.00") {
			t.Errorf("expected transaction average row, got:\n%s", csv)
		}
		if !strings.Contains(csv, "Date,Amount\n2024-01-15,$30.00") {
			t.Errorf("expected day-bucketed date section, got:\n%s", csv)
		}
	})

	t.Run("formats with the viewer's currency symbol", func(t *testing.T) {
		csv := BuildCSV(sampleAnnualData(), "EUR")

		if !strings.Contains(csv, "Total Amount,€1500.50") {
			t.Errorf("expected euro formatting, got:\n%s", csv)
		}
	})

	t.Run("quotes fields containing commas", func(t *testing.T) {
		data := sampleAnnualData()
		data.CategoryBreakdown = map[string]decimal.Decimal{
			"Meals, Entertainment": decimal.NewFromInt(100),
		}

		csv := BuildCSV(data, "USD")

		if !strings.Contains(csv, "\"Meals, Entertainment\",$100.00") {
			t.Errorf("expected quoted category, got:\n%s", csv)
		}
	})
}

func TestCSVFileName(t *testing.T) {
	t.Run("monthly", func(t *testing.T) {
		data := &ReportData{Kind: KindMonthly, Period: valueobject.MonthPeriod(2024, time.March)}
		if got := CSVFileName(data); got != "expense-report-2024-03.csv" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("annual", func(t *testing.T) {
		data := &ReportData{Kind: KindAnnual, Period: valueobject.CalendarYearPeriod(2024)}
		if got := CSVFileName(data); got != "expense-report-2024.csv" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("custom", func(t *testing.T) {
		data := &ReportData{Kind: KindCustom, Period: valueobject.CustomPeriod(
			time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
		)}
		if got := CSVFileName(data); got != "expense-report-2024-01-01-to-2024-03-31.csv" {
			t.Errorf("got %q", got)
		}
	})
}
