// Package report contains report-building use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/currency"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// MonthlyReportInput represents the input for a monthly report.
type MonthlyReportInput struct {
	UserID         uuid.UUID
	Year           int
	Month          int
	WithConversion bool
}

// MonthlyReportUseCase builds the report for a single calendar month.
type MonthlyReportUseCase struct {
	expenseRepo       adapter.ExpenseRepository
	converter         *currency.Converter
	referenceCurrency string
}

// NewMonthlyReportUseCase creates a new MonthlyReportUseCase instance.
func NewMonthlyReportUseCase(
	expenseRepo adapter.ExpenseRepository,
	converter *currency.Converter,
	referenceCurrency string,
) *MonthlyReportUseCase {
	return &MonthlyReportUseCase{
		expenseRepo:       expenseRepo,
		converter:         converter,
		referenceCurrency: referenceCurrency,
	}
}

// Execute builds the monthly report.
func (uc *MonthlyReportUseCase) Execute(ctx context.Context, input MonthlyReportInput) (*ReportData, error) {
	if input.Month < 1 || input.Month > 12 {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidMonth,
		)
	}

	period := valueobject.MonthPeriod(input.Year, time.Month(input.Month))

	expenses, err := uc.expenseRepo.FindByUserAndPeriod(ctx, input.UserID, period.From, period.To)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses for monthly report: %w", err)
	}

	title := fmt.Sprintf("Expense Report - %s %d", time.Month(input.Month), input.Year)
	data := aggregate(KindMonthly, title, period, expenses)

	if input.WithConversion {
		attachConversion(ctx, uc.converter, data, uc.referenceCurrency)
	}

	return data, nil
}
