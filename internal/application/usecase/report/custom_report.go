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

// CustomReportInput represents the input for a custom date-range report.
type CustomReportInput struct {
	UserID         uuid.UUID
	FromDate       time.Time
	ToDate         time.Time
	WithConversion bool
}

// CustomReportUseCase builds the report for an arbitrary date range.
type CustomReportUseCase struct {
	expenseRepo       adapter.ExpenseRepository
	converter         *currency.Converter
	referenceCurrency string
}

// NewCustomReportUseCase creates a new CustomReportUseCase instance.
func NewCustomReportUseCase(
	expenseRepo adapter.ExpenseRepository,
	converter *currency.Converter,
	referenceCurrency string,
) *CustomReportUseCase {
	return &CustomReportUseCase{
		expenseRepo:       expenseRepo,
		converter:         converter,
		referenceCurrency: referenceCurrency,
	}
}

// Execute builds the custom-range report.
func (uc *CustomReportUseCase) Execute(ctx context.Context, input CustomReportInput) (*ReportData, error) {
	if input.ToDate.Before(input.FromDate) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodePeriodEndBeforeStart,
			"period end date is before start date",
			domainerror.ErrPeriodEndBeforeStart,
		)
	}

	period := valueobject.CustomPeriod(input.FromDate, input.ToDate)

	expenses, err := uc.expenseRepo.FindByUserAndPeriod(ctx, input.UserID, period.From, period.To)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses for custom report: %w", err)
	}

	title := fmt.Sprintf(
		"Expense Report - %s to %s",
		period.From.Format(dayBucketLayout),
		period.To.Format(dayBucketLayout),
	)
	data := aggregate(KindCustom, title, period, expenses)

	if input.WithConversion {
		attachConversion(ctx, uc.converter, data, uc.referenceCurrency)
	}

	return data, nil
}
