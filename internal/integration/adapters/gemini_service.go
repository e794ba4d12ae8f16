package adapters

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// GeminiService implements the adapter.InsightService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Summarize produces a short narrative for the given report facts.
func (s *GeminiService) Summarize(ctx context.Context, input adapter.ReportInsightInput) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.3)

	resp, err := model.GenerateContent(ctx, genai.Text(s.buildPrompt(input)))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	summary, err := extractText(resp)
	if err != nil {
		return "", err
	}

	return summary, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(input adapter.ReportInsightInput) string {
	var sb strings.Builder

	sb.WriteString(`You are a personal finance assistant. Write a short summary (3-4 sentences) of the expense report below for the account owner.

GUIDELINES:
- Plain language, no bullet points, no markdown.
- Mention the total, the largest category, and anything notable about the spread.
- Do not invent figures that are not in the data.
- Amounts are already formatted in the user's display currency.

REPORT:
`)
	sb.WriteString(fmt.Sprintf("Title: %s\n", input.Title))
	sb.WriteString(fmt.Sprintf("Display currency: %s\n", input.Currency))
	sb.WriteString(fmt.Sprintf("Total: %s\n", input.TotalAmount))
	sb.WriteString(fmt.Sprintf("Expense count: %d\n", input.ExpenseCount))
	sb.WriteString(fmt.Sprintf("Average per expense: %s\n", input.AverageExpense))

	sb.WriteString("Category breakdown:\n")
	names := make([]string, 0, len(input.CategoryBreakdown))
	for name := range input.CategoryBreakdown {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", name, input.CategoryBreakdown[name]))
	}

	return sb.String()
}

// extractText pulls the plain-text content out of a Gemini response.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	textContent = strings.TrimSpace(textContent)
	if textContent == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return textContent, nil
}

var _ adapter.InsightService = (*GeminiService)(nil)
