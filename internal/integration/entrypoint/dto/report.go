// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/usecase/report"
)

// ReportResponse represents an aggregated expense report in API responses.
type ReportResponse struct {
	Kind     string `json:"kind"`
	Title    string `json:"title"`
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`

	TotalAmount         string `json:"total_amount"`
	TaxDeductibleAmount string `json:"tax_deductible_amount"`
	RecurringAmount     string `json:"recurring_amount"`
	TransactionCount    int    `json:"transaction_count"`

	// Present for custom-range reports only.
	AverageTransactionAmount string `json:"average_transaction_amount,omitempty"`

	CategoryBreakdown map[string]string `json:"category_breakdown"`
	CurrencyBreakdown map[string]string `json:"currency_breakdown"`
	DateBreakdown     map[string]string `json:"date_breakdown,omitempty"`

	Conversion *ConversionResponse `json:"conversion,omitempty"`
}

// ConversionResponse represents the reference-currency section of a report.
type ConversionResponse struct {
	Currency                 string            `json:"currency"`
	TotalAmount              string            `json:"total_amount"`
	TaxDeductibleAmount      string            `json:"tax_deductible_amount"`
	RecurringAmount          string            `json:"recurring_amount"`
	AverageTransactionAmount string            `json:"average_transaction_amount,omitempty"`
	CategoryBreakdown        map[string]string `json:"category_breakdown"`
	Rates                    map[string]string `json:"rates"`
	RateTimestamp            time.Time         `json:"rate_timestamp"`
	IsSuccess                bool              `json:"is_success"`
	ErrorMessage             string            `json:"error_message,omitempty"`
}

// InsightResponse represents the natural-language report summary.
type InsightResponse struct {
	Summary string `json:"summary"`
}

// ToReportResponse converts a ReportData to a ReportResponse DTO.
func ToReportResponse(data *report.ReportData) ReportResponse {
	response := ReportResponse{
		Kind:                string(data.Kind),
		Title:               data.Title,
		FromDate:            data.Period.From.Format("2006-01-02"),
		ToDate:              data.Period.To.Format("2006-01-02"),
		TotalAmount:         data.TotalAmount.String(),
		TaxDeductibleAmount: data.TaxDeductibleAmount.String(),
		RecurringAmount:     data.RecurringAmount.String(),
		TransactionCount:    data.TransactionCount,
		CategoryBreakdown:   toAmountMap(data.CategoryBreakdown),
		CurrencyBreakdown:   toAmountMap(data.CurrencyBreakdown),
	}

	if data.Kind == report.KindCustom {
		response.AverageTransactionAmount = data.AverageTransactionAmount.String()
	}

	if data.DateBreakdown != nil {
		response.DateBreakdown = toAmountMap(data.DateBreakdown)
	}

	if data.Conversion != nil {
		response.Conversion = &ConversionResponse{
			Currency:            data.Conversion.Currency,
			TotalAmount:         data.Conversion.TotalAmount.String(),
			TaxDeductibleAmount: data.Conversion.TaxDeductibleAmount.String(),
			RecurringAmount:     data.Conversion.RecurringAmount.String(),
			CategoryBreakdown:   toAmountMap(data.Conversion.CategoryBreakdown),
			Rates:               toAmountMap(data.Conversion.Rates),
			RateTimestamp:       data.Conversion.RateTimestamp,
			IsSuccess:           data.Conversion.IsSuccess,
			ErrorMessage:        data.Conversion.ErrorMessage,
		}
		if data.Kind == report.KindCustom {
			response.Conversion.AverageTransactionAmount = data.Conversion.AverageTransactionAmount.String()
		}
	}

	return response
}

func toAmountMap(amounts map[string]decimal.Decimal) map[string]string {
	result := make(map[string]string, len(amounts))
	for key, amount := range amounts {
		result[key] = amount.String()
	}
	return result
}
