// Package report contains report-building use cases.
package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/currency"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// AnnualReportInput represents the input for an annual report. When
// FinancialYear is set the period runs July 1 of Year to June 30 of Year+1
// instead of the calendar year.
type AnnualReportInput struct {
	UserID         uuid.UUID
	Year           int
	FinancialYear  bool
	WithConversion bool
}

// AnnualReportUseCase builds the report for a calendar or financial year.
type AnnualReportUseCase struct {
	expenseRepo       adapter.ExpenseRepository
	converter         *currency.Converter
	referenceCurrency string
}

// NewAnnualReportUseCase creates a new AnnualReportUseCase instance.
func NewAnnualReportUseCase(
	expenseRepo adapter.ExpenseRepository,
	converter *currency.Converter,
	referenceCurrency string,
) *AnnualReportUseCase {
	return &AnnualReportUseCase{
		expenseRepo:       expenseRepo,
		converter:         converter,
		referenceCurrency: referenceCurrency,
	}
}

// Execute builds the annual report.
func (uc *AnnualReportUseCase) Execute(ctx context.Context, input AnnualReportInput) (*ReportData, error) {
	var period valueobject.ReportPeriod
	var title string
	if input.FinancialYear {
		period = valueobject.FinancialYearPeriod(input.Year)
		title = fmt.Sprintf("Annual Expense Report - FY %d-%d", input.Year, input.Year+1)
	} else {
		period = valueobject.CalendarYearPeriod(input.Year)
		title = fmt.Sprintf("Annual Expense Report - %d", input.Year)
	}

	expenses, err := uc.expenseRepo.FindByUserAndPeriod(ctx, input.UserID, period.From, period.To)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses for annual report: %w", err)
	}

	data := aggregate(KindAnnual, title, period, expenses)

	if input.WithConversion {
		attachConversion(ctx, uc.converter, data, uc.referenceCurrency)
	}

	return data, nil
}
