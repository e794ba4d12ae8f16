// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

const (
	// DefaultPageSize is the page size applied when none is requested.
	DefaultPageSize = 20
	// MaxPageSize bounds a single page of results.
	MaxPageSize = 100
)

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	UserID   uuid.UUID
	Page     int
	PageSize int
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Result *entity.ExpenseListResult
}

// ListExpensesUseCase handles paginated expense listing ordered by expense
// date descending.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute lists the user's expenses.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	page, pageSize := normalizePagination(input.Page, input.PageSize)

	result, err := uc.expenseRepo.FindByUser(ctx, input.UserID, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	return &ListExpensesOutput{Result: result}, nil
}

// normalizePagination clamps page and page size to sane bounds.
func normalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}
