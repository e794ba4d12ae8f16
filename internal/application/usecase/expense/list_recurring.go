// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ListRecurringInput represents the input for listing recurring expenses.
type ListRecurringInput struct {
	UserID uuid.UUID
}

// ListRecurringOutput represents the output of listing recurring expenses.
type ListRecurringOutput struct {
	Expenses []*entity.ExpenseWithCategory
}

// ListRecurringUseCase lists the user's recurring expenses.
type ListRecurringUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListRecurringUseCase creates a new ListRecurringUseCase instance.
func NewListRecurringUseCase(expenseRepo adapter.ExpenseRepository) *ListRecurringUseCase {
	return &ListRecurringUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute lists the recurring expenses.
func (uc *ListRecurringUseCase) Execute(ctx context.Context, input ListRecurringInput) (*ListRecurringOutput, error) {
	expenses, err := uc.expenseRepo.FindRecurring(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring expenses: %w", err)
	}

	return &ListRecurringOutput{Expenses: expenses}, nil
}
