// Package report contains report-building use cases.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// BuildCSV renders a report in the fixed download layout: title line, summary
// rows, then labeled breakdown sections with sorted keys. Monetary values are
// formatted with the symbol of the viewer's default currency.
func BuildCSV(data *ReportData, displayCurrency string) string {
	var b strings.Builder

	writeRow(&b, data.Title)
	b.WriteString("\n")

	writeRow(&b, "Key", "Value")
	writeRow(&b, "Total Amount", valueobject.FormatAmount(data.TotalAmount, displayCurrency))
	writeRow(&b, "Tax Deductible Amount", valueobject.FormatAmount(data.TaxDeductibleAmount, displayCurrency))
	writeRow(&b, "Recurring Amount", valueobject.FormatAmount(data.RecurringAmount, displayCurrency))
	writeRow(&b, "Transaction Count", fmt.Sprintf("%d", data.TransactionCount))
	if data.Kind == KindCustom {
		writeRow(&b, "Average Transaction Amount", valueobject.FormatAmount(data.AverageTransactionAmount, displayCurrency))
	}

	switch data.Kind {
	case KindAnnual:
		writeBreakdown(&b, "Month", data.DateBreakdown, displayCurrency)
	case KindCustom:
		writeBreakdown(&b, "Date", data.DateBreakdown, displayCurrency)
	}

	writeBreakdown(&b, "Category", data.CategoryBreakdown, displayCurrency)
	writeBreakdown(&b, "Currency", data.CurrencyBreakdown, displayCurrency)

	return b.String()
}

// CSVFileName returns the suggested download name for a report.
func CSVFileName(data *ReportData) string {
	switch data.Kind {
	case KindMonthly:
		return fmt.Sprintf("expense-report-%s.csv", data.Period.From.Format(monthBucketLayout))
	case KindAnnual:
		return fmt.Sprintf("expense-report-%d.csv", data.Period.From.Year())
	default:
		return fmt.Sprintf(
			"expense-report-%s-to-%s.csv",
			data.Period.From.Format(dayBucketLayout),
			data.Period.To.Format(dayBucketLayout),
		)
	}
}

func writeBreakdown(b *strings.Builder, label string, breakdown map[string]decimal.Decimal, displayCurrency string) {
	b.WriteString("\n")
	writeRow(b, label, "Amount")

	keys := make([]string, 0, len(breakdown))
	for key := range breakdown {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		writeRow(b, key, valueobject.FormatAmount(breakdown[key], displayCurrency))
	}
}

func writeRow(b *strings.Builder, fields ...string) {
	for i, field := range fields {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(escapeCSV(field))
	}
	b.WriteString("\n")
}

// escapeCSV quotes a field containing separators or quotes. Category names
// are user-supplied and can contain commas.
func escapeCSV(field string) string {
	if strings.ContainsAny(field, ",\"\n") {
		return "\"" + strings.ReplaceAll(field, "\"", "\"\"") + "\""
	}
	return field
}
