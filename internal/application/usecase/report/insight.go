// Package report contains report-building use cases.
package report

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// GenerateInsightInput represents the input for generating a report insight.
type GenerateInsightInput struct {
	Report          *ReportData
	DisplayCurrency string
}

// GenerateInsightOutput represents the output of generating a report insight.
type GenerateInsightOutput struct {
	Summary string
}

// GenerateInsightUseCase produces a natural-language summary of a report via
// the configured insight provider. Optional: when no provider is configured
// the use case reports the insight as unavailable.
type GenerateInsightUseCase struct {
	insightService adapter.InsightService
}

// NewGenerateInsightUseCase creates a new GenerateInsightUseCase instance.
func NewGenerateInsightUseCase(insightService adapter.InsightService) *GenerateInsightUseCase {
	return &GenerateInsightUseCase{insightService: insightService}
}

// Execute generates the insight summary.
func (uc *GenerateInsightUseCase) Execute(ctx context.Context, input GenerateInsightInput) (*GenerateInsightOutput, error) {
	if uc.insightService == nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInsightUnavailable,
			"no insight provider configured",
			domainerror.ErrInsightUnavailable,
		)
	}

	data := input.Report
	categories := make(map[string]string, len(data.CategoryBreakdown))
	for name, amount := range data.CategoryBreakdown {
		categories[name] = valueobject.FormatAmount(amount, input.DisplayCurrency)
	}

	averageExpense := decimal.Zero
	if data.TransactionCount > 0 {
		averageExpense = data.TotalAmount.Div(decimal.NewFromInt(int64(data.TransactionCount))).Round(2)
	}

	summary, err := uc.insightService.Summarize(ctx, adapter.ReportInsightInput{
		Title:             data.Title,
		Currency:          input.DisplayCurrency,
		TotalAmount:       valueobject.FormatAmount(data.TotalAmount, input.DisplayCurrency),
		ExpenseCount:      data.TransactionCount,
		AverageExpense:    valueobject.FormatAmount(averageExpense, input.DisplayCurrency),
		CategoryBreakdown: categories,
	})
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInsightUnavailable,
			"insight provider failed",
			err,
		)
	}

	return &GenerateInsightOutput{Summary: summary}, nil
}
