// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// SearchExpensesInput represents the input for searching expenses.
type SearchExpensesInput struct {
	UserID   uuid.UUID
	Filter   adapter.ExpenseFilter
	Page     int
	PageSize int
}

// SearchExpensesOutput represents the output of searching expenses.
type SearchExpensesOutput struct {
	Result *entity.ExpenseListResult
}

// SearchExpensesUseCase handles filtered expense search.
type SearchExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewSearchExpensesUseCase creates a new SearchExpensesUseCase instance.
func NewSearchExpensesUseCase(expenseRepo adapter.ExpenseRepository) *SearchExpensesUseCase {
	return &SearchExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute searches the user's expenses.
func (uc *SearchExpensesUseCase) Execute(ctx context.Context, input SearchExpensesInput) (*SearchExpensesOutput, error) {
	page, pageSize := normalizePagination(input.Page, input.PageSize)

	result, err := uc.expenseRepo.Search(ctx, input.UserID, input.Filter, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to search expenses: %w", err)
	}

	return &SearchExpensesOutput{Result: result}, nil
}
