// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// DeleteExpenseInput represents the input for expense deletion.
type DeleteExpenseInput struct {
	UserID    uuid.UUID
	ExpenseID uuid.UUID
}

// DeleteExpenseUseCase handles expense deletion logic (soft delete).
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense deletion.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) error {
	if _, err := findOwnedExpense(ctx, uc.expenseRepo, input.ExpenseID, input.UserID); err != nil {
		return err
	}

	if err := uc.expenseRepo.Delete(ctx, input.ExpenseID); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	return nil
}
