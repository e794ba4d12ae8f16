// Package report contains report-building use cases.
package report

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/currency"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

type fakeExpenseRepo struct {
	adapter.ExpenseRepository

	expenses  []*entity.ExpenseWithCategory
	err       error
	lastStart time.Time
	lastEnd   time.Time
}

func (r *fakeExpenseRepo) FindByUserAndPeriod(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.ExpenseWithCategory, error) {
	r.lastStart = start
	r.lastEnd = end
	if r.err != nil {
		return nil, r.err
	}
	return r.expenses, nil
}

type stubRateCache struct {
	snapshot *valueobject.RateSnapshot
}

func (c *stubRateCache) Get(ctx context.Context) (*valueobject.RateSnapshot, error) {
	return c.snapshot, nil
}

func (c *stubRateCache) GetFallback(ctx context.Context) (*valueobject.RateSnapshot, error) {
	return nil, nil
}

func (c *stubRateCache) Put(ctx context.Context, snapshot *valueobject.RateSnapshot) error {
	return nil
}

func (c *stubRateCache) Clear(ctx context.Context) error { return nil }

type stubRateProvider struct{}

func (p *stubRateProvider) FetchLatest(ctx context.Context, baseCurrency string) (*valueobject.RateSnapshot, error) {
	return nil, errors.New("provider should not be called")
}

func testConverter(snapshot *valueobject.RateSnapshot) *currency.Converter {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := currency.NewRateService(&stubRateCache{snapshot: snapshot}, &stubRateProvider{}, "AUD", logger)
	return currency.NewConverter(service)
}

func cachedSnapshot() *valueobject.RateSnapshot {
	return &valueobject.RateSnapshot{
		BaseCurrency: "AUD",
		Rates: map[string]decimal.Decimal{
			"USD": decimal.NewFromFloat(0.5),
			"AUD": decimal.NewFromInt(1),
		},
		FetchedAt: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		IsSuccess: true,
	}
}

func usdExpense(amount float64, date time.Time, categoryName string) *entity.ExpenseWithCategory {
	return &entity.ExpenseWithCategory{
		Expense: &entity.Expense{
			Amount:          decimal.NewFromFloat(amount),
			Currency:        "USD",
			ExpenseDate:     date,
			IsTaxDeductible: true,
		},
		Category: &entity.Category{Name: categoryName},
	}
}

func TestMonthlyReportUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("rejects an out-of-range month", func(t *testing.T) {
		uc := NewMonthlyReportUseCase(&fakeExpenseRepo{}, testConverter(cachedSnapshot()), "AUD")

		_, err := uc.Execute(ctx, MonthlyReportInput{UserID: userID, Year: 2024, Month: 13})

		var reportErr *domainerror.ReportError
		if !errors.As(err, &reportErr) || reportErr.Code != domainerror.ErrCodeInvalidMonth {
			t.Fatalf("expected invalid month error, got %v", err)
		}
	})

	t.Run("queries the exact month bounds", func(t *testing.T) {
		repo := &fakeExpenseRepo{}
		uc := NewMonthlyReportUseCase(repo, testConverter(cachedSnapshot()), "AUD")

		_, err := uc.Execute(ctx, MonthlyReportInput{UserID: userID, Year: 2024, Month: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		wantStart := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
		wantEnd := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
		if !repo.lastStart.Equal(wantStart) || !repo.lastEnd.Equal(wantEnd) {
			t.Errorf("expected query %s..%s, got %s..%s", wantStart, wantEnd, repo.lastStart, repo.lastEnd)
		}
	})

	t.Run("storage failure aborts the report", func(t *testing.T) {
		repo := &fakeExpenseRepo{err: errors.New("connection reset")}
		uc := NewMonthlyReportUseCase(repo, testConverter(cachedSnapshot()), "AUD")

		_, err := uc.Execute(ctx, MonthlyReportInput{UserID: userID, Year: 2024, Month: 2})
		if err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("attaches conversion when requested", func(t *testing.T) {
		date := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
		repo := &fakeExpenseRepo{expenses: []*entity.ExpenseWithCategory{
			usdExpense(100, date, "Food"),
		}}
		uc := NewMonthlyReportUseCase(repo, testConverter(cachedSnapshot()), "AUD")

		data, err := uc.Execute(ctx, MonthlyReportInput{
			UserID: userID, Year: 2024, Month: 3, WithConversion: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if data.Conversion == nil {
			t.Fatal("expected conversion section")
		}
		// 100 USD at 0.5 USD per AUD = 200 AUD.
		if !data.Conversion.TotalAmount.Equal(decimal.NewFromInt(200)) {
			t.Errorf("expected converted total 200, got %s", data.Conversion.TotalAmount)
		}
		if data.Conversion.Currency != "AUD" {
			t.Errorf("expected AUD, got %s", data.Conversion.Currency)
		}
		if !data.Conversion.IsSuccess {
			t.Error("expected conversion marked successful")
		}
		if !data.Conversion.CategoryBreakdown["Food"].Equal(decimal.NewFromInt(200)) {
			t.Errorf("expected Food share 200, got %s", data.Conversion.CategoryBreakdown["Food"])
		}
	})

	t.Run("omits conversion when not requested", func(t *testing.T) {
		repo := &fakeExpenseRepo{}
		uc := NewMonthlyReportUseCase(repo, testConverter(cachedSnapshot()), "AUD")

		data, err := uc.Execute(ctx, MonthlyReportInput{UserID: userID, Year: 2024, Month: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if data.Conversion != nil {
			t.Error("expected no conversion section")
		}
	})
}

func TestAnnualReportUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("calendar year bounds", func(t *testing.T) {
		repo := &fakeExpenseRepo{}
		uc := NewAnnualReportUseCase(repo, testConverter(cachedSnapshot()), "AUD")

		data, err := uc.Execute(ctx, AnnualReportInput{UserID: userID, Year: 2024})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !repo.lastStart.Equal(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected start %s", repo.lastStart)
		}
		if !repo.lastEnd.Equal(time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected end %s", repo.lastEnd)
		}
		if data.Title != "Annual Expense Report - 2024" {
			t.Errorf("unexpected title %q", data.Title)
		}
	})

	t.Run("financial year runs July to June", func(t *testing.T) {
		repo := &fakeExpenseRepo{}
		uc := NewAnnualReportUseCase(repo, testConverter(cachedSnapshot()), "AUD")

		data, err := uc.Execute(ctx, AnnualReportInput{UserID: userID, Year: 2024, FinancialYear: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !repo.lastStart.Equal(time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected start %s", repo.lastStart)
		}
		if !repo.lastEnd.Equal(time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected end %s", repo.lastEnd)
		}
		if data.Title != "Annual Expense Report - FY 2024-2025" {
			t.Errorf("unexpected title %q", data.Title)
		}
	})
}

func TestCustomReportUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("rejects end before start", func(t *testing.T) {
		uc := NewCustomReportUseCase(&fakeExpenseRepo{}, testConverter(cachedSnapshot()), "AUD")

		_, err := uc.Execute(ctx, CustomReportInput{
			UserID:   userID,
			FromDate: time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
			ToDate:   time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		})

		var reportErr *domainerror.ReportError
		if !errors.As(err, &reportErr) || reportErr.Code != domainerror.ErrCodePeriodEndBeforeStart {
			t.Fatalf("expected period error, got %v", err)
		}
	})

	t.Run("builds a day-bucketed report", func(t *testing.T) {
		date := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
		repo := &fakeExpenseRepo{expenses: []*entity.ExpenseWithCategory{
			usdExpense(10, date, "Food"),
			usdExpense(20, date, "Food"),
		}}
		uc := NewCustomReportUseCase(repo, testConverter(cachedSnapshot()), "AUD")

		data, err := uc.Execute(ctx, CustomReportInput{
			UserID:   userID,
			FromDate: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			ToDate:   time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !data.DateBreakdown["2024-01-15"].Equal(decimal.NewFromInt(30)) {
			t.Errorf("expected day bucket 30, got %s", data.DateBreakdown["2024-01-15"])
		}
		if data.Title != "Expense Report - 2024-01-01 to 2024-01-31" {
			t.Errorf("unexpected title %q", data.Title)
		}
	})
}
