// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// UpdateExpenseInput represents the input for expense update. The full record
// is replaced; partial updates are resolved by the controller from the
// current state.
type UpdateExpenseInput struct {
	UserID             uuid.UUID
	ExpenseID          uuid.UUID
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

// UpdateExpenseOutput represents the output of expense update.
type UpdateExpenseOutput struct {
	Expense *entity.Expense
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	expense, err := findOwnedExpense(ctx, uc.expenseRepo, input.ExpenseID, input.UserID)
	if err != nil {
		return nil, err
	}

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

	expense.CategoryID = input.CategoryID
	expense.Description = input.Description
	expense.Amount = input.Amount
	expense.Currency = currency
	expense.ExpenseDate = input.ExpenseDate
	expense.IsTaxDeductible = input.IsTaxDeductible
	expense.IsRecurring = input.IsRecurring
	expense.RecurringFrequency = frequency
	expense.RecurringEndDate = input.RecurringEndDate
	expense.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return &UpdateExpenseOutput{Expense: expense}, nil
}

// findOwnedExpense loads an expense and verifies ownership. Both a missing
// record and a foreign one surface as not-found.
func findOwnedExpense(ctx context.Context, repo adapter.ExpenseRepository, expenseID, userID uuid.UUID) (*entity.Expense, error) {
	expense, err := repo.FindByID(ctx, expenseID)
	if err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}
	if expense.UserID != userID {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}
	return expense, nil
}
