// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecurringFrequency represents the cadence of a recurring expense.
type RecurringFrequency string

const (
	FrequencyWeekly      RecurringFrequency = "weekly"
	FrequencyFortnightly RecurringFrequency = "fortnightly"
	FrequencyMonthly     RecurringFrequency = "monthly"
	FrequencyQuarterly   RecurringFrequency = "quarterly"
	FrequencyAnnually    RecurringFrequency = "annually"
)

// IsValid reports whether the frequency is one of the supported cadences.
func (f RecurringFrequency) IsValid() bool {
	switch f {
	case FrequencyWeekly, FrequencyFortnightly, FrequencyMonthly, FrequencyQuarterly, FrequencyAnnually:
		return true
	}
	return false
}

// Expense represents a single expense record in the Expense Tracker system.
// Recurring expenses carry a frequency and an optional end date; a recurring
// record stands for the whole open-ended series rather than individual
// occurrences.
type Expense struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	CategoryID         *uuid.UUID // Optional, can be uncategorized
	Description        string
	Amount             decimal.Decimal
	Currency           string // ISO 4217 code, e.g. "USD"
	ExpenseDate        time.Time
	IsTaxDeductible    bool
	IsRecurring        bool
	RecurringFrequency *RecurringFrequency // Set iff IsRecurring
	RecurringEndDate   *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          *time.Time // Soft-delete support
}

// NewExpense creates a new Expense entity.
func NewExpense(
	userID uuid.UUID,
	categoryID *uuid.UUID,
	description string,
	amount decimal.Decimal,
	currency string,
	expenseDate time.Time,
	isTaxDeductible bool,
	isRecurring bool,
	recurringFrequency *RecurringFrequency,
	recurringEndDate *time.Time,
) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:                 uuid.New(),
		UserID:             userID,
		CategoryID:         categoryID,
		Description:        description,
		Amount:             amount,
		Currency:           currency,
		ExpenseDate:        expenseDate,
		IsTaxDeductible:    isTaxDeductible,
		IsRecurring:        isRecurring,
		RecurringFrequency: recurringFrequency,
		RecurringEndDate:   recurringEndDate,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// ExpenseWithCategory represents an expense with its associated category.
type ExpenseWithCategory struct {
	Expense  *Expense
	Category *Category
}

// CategoryName returns the category name for breakdown bucketing, or
// UncategorizedName when no category is linked.
func (e *ExpenseWithCategory) CategoryName() string {
	if e.Category == nil {
		return UncategorizedName
	}
	return e.Category.Name
}

// ExpenseListResult represents the result of listing expenses.
type ExpenseListResult struct {
	Expenses   []*ExpenseWithCategory
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}
