// Package expense contains expense-related use cases.
package expense

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// GetExpenseInput represents the input for fetching a single expense.
type GetExpenseInput struct {
	UserID    uuid.UUID
	ExpenseID uuid.UUID
}

// GetExpenseOutput represents the output of fetching a single expense.
type GetExpenseOutput struct {
	Expense *entity.Expense
}

// GetExpenseUseCase handles single-expense retrieval.
type GetExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewGetExpenseUseCase creates a new GetExpenseUseCase instance.
func NewGetExpenseUseCase(expenseRepo adapter.ExpenseRepository) *GetExpenseUseCase {
	return &GetExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute fetches the expense.
func (uc *GetExpenseUseCase) Execute(ctx context.Context, input GetExpenseInput) (*GetExpenseOutput, error) {
	expense, err := findOwnedExpense(ctx, uc.expenseRepo, input.ExpenseID, input.UserID)
	if err != nil {
		return nil, err
	}

	return &GetExpenseOutput{Expense: expense}, nil
}
