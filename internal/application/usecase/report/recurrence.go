// Package report contains report-building use cases.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// frequencyMultipliers maps a recurring cadence to its monthly-equivalent
// occurrence factor.
var frequencyMultipliers = map[entity.RecurringFrequency]decimal.Decimal{
	entity.FrequencyWeekly:      decimal.NewFromInt(52).Div(decimal.NewFromInt(12)),
	entity.FrequencyFortnightly: decimal.NewFromInt(26).Div(decimal.NewFromInt(12)),
	entity.FrequencyMonthly:     decimal.NewFromInt(1),
	entity.FrequencyQuarterly:   decimal.NewFromInt(1).Div(decimal.NewFromInt(3)),
	entity.FrequencyAnnually:    decimal.NewFromInt(1).Div(decimal.NewFromInt(12)),
}

// AdjustedAmount normalizes an expense's nominal amount into its
// period-equivalent value. Non-recurring expenses pass through unchanged.
// Recurring expenses are scaled by the frequency's monthly multiplier and the
// period length in months; an unset or unknown frequency scales by 1.
// RecurringEndDate is intentionally not consulted.
func AdjustedAmount(expense *entity.Expense, periodMonths decimal.Decimal) decimal.Decimal {
	if !expense.IsRecurring {
		return expense.Amount
	}

	multiplier := decimal.NewFromInt(1)
	if expense.RecurringFrequency != nil {
		if m, ok := frequencyMultipliers[*expense.RecurringFrequency]; ok {
			multiplier = m
		}
	}

	return expense.Amount.Mul(multiplier).Mul(periodMonths)
}
