// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ExpenseFilter holds the optional criteria for an expense search. Nil fields
// are not applied.
type ExpenseFilter struct {
	CategoryID      *uuid.UUID
	Currency        *string
	IsTaxDeductible *bool
	IsRecurring     *bool
	StartDate       *time.Time
	EndDate         *time.Time
	SearchTerm      string
}

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindByUser retrieves a page of the user's expenses ordered by expense
	// date descending.
	FindByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) (*entity.ExpenseListResult, error)

	// FindByUserAndPeriod retrieves every expense for a user whose expense
	// date falls within [start, end], with category names resolved.
	FindByUserAndPeriod(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.ExpenseWithCategory, error)

	// FindRecurring retrieves the user's recurring expenses.
	FindRecurring(ctx context.Context, userID uuid.UUID) ([]*entity.ExpenseWithCategory, error)

	// Search retrieves the user's expenses matching the filter, paginated.
	Search(ctx context.Context, userID uuid.UUID, filter ExpenseFilter, page, pageSize int) (*entity.ExpenseListResult, error)

	// Update updates an existing expense in the database.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete soft-deletes an expense.
	Delete(ctx context.Context, id uuid.UUID) error
}
