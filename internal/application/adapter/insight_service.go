// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// ReportInsightInput carries the report facts handed to the insight provider.
type ReportInsightInput struct {
	Title             string
	Currency          string
	TotalAmount       string
	ExpenseCount      int
	AverageExpense    string
	CategoryBreakdown map[string]string
}

// InsightService defines the interface for generating a natural-language
// summary of a report via an external AI provider.
type InsightService interface {
	// Summarize produces a short narrative for the given report facts.
	Summarize(ctx context.Context, input ReportInsightInput) (string, error)
}
