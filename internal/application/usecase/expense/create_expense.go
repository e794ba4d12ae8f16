// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	UserID             uuid.UUID
	CategoryID         *uuid.UUID
	Description        string
	Amount             decimal.Decimal
	Currency           string
	ExpenseDate        time.Time
	IsTaxDeductible    bool
	IsRecurring        bool
	RecurringFrequency *string
	RecurringEndDate   *time.Time
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}

	currency, err := normalizeCurrency(input.Currency)
	if err != nil {
		return nil, err
	}

	frequency, err := resolveFrequency(input.IsRecurring, input.RecurringFrequency)
	if err != nil {
		return nil, err
	}

	expense := entity.NewExpense(
		input.UserID,
		input.CategoryID,
		input.Description,
		input.Amount,
		currency,
		input.ExpenseDate,
		input.IsTaxDeductible,
		input.IsRecurring,
		frequency,
		input.RecurringEndDate,
	)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return &CreateExpenseOutput{Expense: expense}, nil
}

// validateAmount requires a strictly positive amount.
func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidAmount,
		)
	}
	return nil
}

// normalizeCurrency upper-cases and validates a 3-letter currency code.
func normalizeCurrency(currency string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(currency))
	if len(code) != 3 {
		return "", domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidCurrency,
			"currency must be a 3-letter code",
			domainerror.ErrInvalidCurrency,
		)
	}
	return code, nil
}

// resolveFrequency enforces that a frequency is present iff the expense is
// recurring, and that it names a supported cadence.
func resolveFrequency(isRecurring bool, raw *string) (*entity.RecurringFrequency, error) {
	if !isRecurring {
		if raw != nil {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidRecurringFrequency,
				"recurring frequency is only valid on recurring expenses",
				domainerror.ErrInvalidRecurringFrequency,
			)
		}
		return nil, nil
	}

	if raw == nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeRecurringFrequencyRequired,
			"recurring expenses require a frequency",
			domainerror.ErrRecurringFrequencyRequired,
		)
	}

	frequency := entity.RecurringFrequency(strings.ToLower(*raw))
	if !frequency.IsValid() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidRecurringFrequency,
			fmt.Sprintf("unknown recurring frequency %q", *raw),
			domainerror.ErrInvalidRecurringFrequency,
		)
	}

	return &frequency, nil
}
