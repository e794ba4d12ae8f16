// Package report contains report-building use cases.
package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

func deductibleExpense(amount float64, currency string, date time.Time, category *entity.Category) *entity.ExpenseWithCategory {
	return &entity.ExpenseWithCategory{
		Expense: &entity.Expense{
			Amount:          decimal.NewFromFloat(amount),
			Currency:        currency,
			ExpenseDate:     date,
			IsTaxDeductible: true,
		},
		Category: category,
	}
}

func TestAggregate(t *testing.T) {
	food := &entity.Category{Name: "Food"}
	travel := &entity.Category{Name: "Travel"}
	jan := valueobject.MonthPeriod(2024, time.January)
	jan15 := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	t.Run("only tax-deductible expenses contribute", func(t *testing.T) {
		nonDeductible := deductibleExpense(999, "USD", jan15, food)
		nonDeductible.Expense.IsTaxDeductible = false

		data := aggregate(KindMonthly, "t", jan, []*entity.ExpenseWithCategory{
			deductibleExpense(100, "USD", jan15, food),
			nonDeductible,
		})

		if !data.TotalAmount.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected total 100, got %s", data.TotalAmount)
		}
		if data.TransactionCount != 1 {
			t.Errorf("expected count 1, got %d", data.TransactionCount)
		}
		if !data.TaxDeductibleAmount.Equal(data.TotalAmount) {
			t.Error("expected tax-deductible amount to equal the total")
		}
	})

	t.Run("buckets by category name with uncategorized fallback", func(t *testing.T) {
		data := aggregate(KindMonthly, "t", jan, []*entity.ExpenseWithCategory{
			deductibleExpense(100, "USD", jan15, food),
			deductibleExpense(40, "USD", jan15, food),
			deductibleExpense(60, "USD", jan15, nil),
		})

		if !data.CategoryBreakdown["Food"].Equal(decimal.NewFromInt(140)) {
			t.Errorf("expected Food 140, got %s", data.CategoryBreakdown["Food"])
		}
		if !data.CategoryBreakdown[entity.UncategorizedName].Equal(decimal.NewFromInt(60)) {
			t.Errorf("expected Uncategorized 60, got %s", data.CategoryBreakdown[entity.UncategorizedName])
		}
	})

	t.Run("buckets by raw currency code", func(t *testing.T) {
		data := aggregate(KindMonthly, "t", jan, []*entity.ExpenseWithCategory{
			deductibleExpense(100, "USD", jan15, food),
			deductibleExpense(50, "EUR", jan15, travel),
		})

		if !data.CurrencyBreakdown["USD"].Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected USD 100, got %s", data.CurrencyBreakdown["USD"])
		}
		if !data.CurrencyBreakdown["EUR"].Equal(decimal.NewFromInt(50)) {
			t.Errorf("expected EUR 50, got %s", data.CurrencyBreakdown["EUR"])
		}
	})

	t.Run("recurring total tracks only recurring expenses", func(t *testing.T) {
		monthly := entity.FrequencyMonthly
		recurring := deductibleExpense(25, "USD", jan15, food)
		recurring.Expense.IsRecurring = true
		recurring.Expense.RecurringFrequency = &monthly

		data := aggregate(KindMonthly, "t", jan, []*entity.ExpenseWithCategory{
			deductibleExpense(100, "USD", jan15, food),
			recurring,
		})

		if !data.RecurringAmount.Equal(decimal.NewFromInt(25)) {
			t.Errorf("expected recurring 25, got %s", data.RecurringAmount)
		}
		if !data.TotalAmount.Equal(decimal.NewFromInt(125)) {
			t.Errorf("expected total 125, got %s", data.TotalAmount)
		}
	})

	t.Run("recurring amounts are scaled across an annual period", func(t *testing.T) {
		monthly := entity.FrequencyMonthly
		recurring := deductibleExpense(100, "USD", jan15, food)
		recurring.Expense.IsRecurring = true
		recurring.Expense.RecurringFrequency = &monthly

		year := valueobject.CalendarYearPeriod(2024)
		data := aggregate(KindAnnual, "t", year, []*entity.ExpenseWithCategory{recurring})

		if !data.TotalAmount.Equal(decimal.NewFromInt(1200)) {
			t.Errorf("expected annualized total 1200, got %s", data.TotalAmount)
		}
		if !data.AverageTransactionAmount.IsZero() {
			t.Errorf("annual reports carry no transaction average, got %s", data.AverageTransactionAmount)
		}
	})

	t.Run("monthly reports have no date breakdown", func(t *testing.T) {
		data := aggregate(KindMonthly, "t", jan, []*entity.ExpenseWithCategory{
			deductibleExpense(100, "USD", jan15, food),
		})

		if data.DateBreakdown != nil {
			t.Errorf("expected nil date breakdown, got %v", data.DateBreakdown)
		}
	})

	t.Run("annual reports bucket by month", func(t *testing.T) {
		year := valueobject.CalendarYearPeriod(2024)
		data := aggregate(KindAnnual, "t", year, []*entity.ExpenseWithCategory{
			deductibleExpense(100, "USD", time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC), food),
			deductibleExpense(50, "USD", time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC), food),
			deductibleExpense(75, "USD", time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC), food),
		})

		if !data.DateBreakdown["2024-03"].Equal(decimal.NewFromInt(150)) {
			t.Errorf("expected 2024-03 bucket 150, got %s", data.DateBreakdown["2024-03"])
		}
		if !data.DateBreakdown["2024-11"].Equal(decimal.NewFromInt(75)) {
			t.Errorf("expected 2024-11 bucket 75, got %s", data.DateBreakdown["2024-11"])
		}
	})

	t.Run("custom reports bucket by day", func(t *testing.T) {
		period := valueobject.CustomPeriod(
			time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
		)
		data := aggregate(KindCustom, "t", period, []*entity.ExpenseWithCategory{
			deductibleExpense(10, "USD", jan15, food),
			deductibleExpense(20, "USD", jan15, food),
		})

		if !data.DateBreakdown["2024-01-15"].Equal(decimal.NewFromInt(30)) {
			t.Errorf("expected 2024-01-15 bucket 30, got %s", data.DateBreakdown["2024-01-15"])
		}
	})

	t.Run("custom reports average the total over the transaction count", func(t *testing.T) {
		period := valueobject.CustomPeriod(
			time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
		)
		data := aggregate(KindCustom, "t", period, []*entity.ExpenseWithCategory{
			deductibleExpense(10, "USD", jan15, food),
			deductibleExpense(20, "USD", jan15, food),
		})

		if !data.TotalAmount.Equal(decimal.NewFromInt(30)) || data.TransactionCount != 2 {
			t.Fatalf("expected total 30 over 2 transactions, got %s over %d", data.TotalAmount, data.TransactionCount)
		}
		if !data.AverageTransactionAmount.Equal(decimal.NewFromInt(15)) {
			t.Errorf("expected average 15, got %s", data.AverageTransactionAmount)
		}
	})

	t.Run("custom report with no expenses has a zero average", func(t *testing.T) {
		period := valueobject.CustomPeriod(
			time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
		)
		data := aggregate(KindCustom, "t", period, nil)

		if !data.AverageTransactionAmount.IsZero() {
			t.Errorf("expected zero average for an empty range, got %s", data.AverageTransactionAmount)
		}
	})

	t.Run("empty expense list yields a zeroed report", func(t *testing.T) {
		data := aggregate(KindMonthly, "t", jan, nil)

		if !data.TotalAmount.IsZero() || data.TransactionCount != 0 {
			t.Errorf("expected empty report, got total %s count %d", data.TotalAmount, data.TransactionCount)
		}
		if !data.AverageTransactionAmount.IsZero() {
			t.Errorf("expected zero average, got %s", data.AverageTransactionAmount)
		}
	})
}

func TestPeriodMonths(t *testing.T) {
	t.Run("monthly is exactly 1", func(t *testing.T) {
		months := periodMonths(KindMonthly, valueobject.MonthPeriod(2024, time.February))
		if !months.Equal(decimal.NewFromInt(1)) {
			t.Errorf("expected 1, got %s", months)
		}
	})

	t.Run("annual is exactly 12", func(t *testing.T) {
		months := periodMonths(KindAnnual, valueobject.CalendarYearPeriod(2024))
		if !months.Equal(decimal.NewFromInt(12)) {
			t.Errorf("expected 12, got %s", months)
		}
	})

	t.Run("custom divides days by average month length", func(t *testing.T) {
		period := valueobject.CustomPeriod(
			time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
		)

		months := periodMonths(KindCustom, period)

		// 31 days / 30.44 ~= 1.02
		if !months.Round(2).Equal(decimal.NewFromFloat(1.02)) {
			t.Errorf("expected ~1.02, got %s", months.Round(2))
		}
	})
}
