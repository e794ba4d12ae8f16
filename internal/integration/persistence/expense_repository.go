// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create creates a new expense in the database.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseFromEntity(expense)
	result := r.db.WithContext(ctx).Create(expenseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an expense by its ID.
func (r *expenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrExpenseNotFound
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

// FindByUser retrieves a page of the user's expenses ordered by expense date descending.
func (r *expenseRepository) FindByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) (*entity.ExpenseListResult, error) {
	query := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("user_id = ?", userID)

	return r.paginate(query, page, pageSize)
}

// FindByUserAndPeriod retrieves every expense for a user within [start, end],
// with category names resolved.
func (r *expenseRepository) FindByUserAndPeriod(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.ExpenseWithCategory, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ? AND expense_date >= ? AND expense_date <= ?", userID, start, end).
		Order("expense_date ASC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	return toEntitiesWithCategory(expenseModels), nil
}

// FindRecurring retrieves the user's recurring expenses.
func (r *expenseRepository) FindRecurring(ctx context.Context, userID uuid.UUID) ([]*entity.ExpenseWithCategory, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ? AND is_recurring = ?", userID, true).
		Order("expense_date DESC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	return toEntitiesWithCategory(expenseModels), nil
}

// Search retrieves the user's expenses matching the filter, paginated.
func (r *expenseRepository) Search(ctx context.Context, userID uuid.UUID, filter adapter.ExpenseFilter, page, pageSize int) (*entity.ExpenseListResult, error) {
	query := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("user_id = ?", userID)

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Currency != nil {
		query = query.Where("currency = ?", *filter.Currency)
	}
	if filter.IsTaxDeductible != nil {
		query = query.Where("is_tax_deductible = ?", *filter.IsTaxDeductible)
	}
	if filter.IsRecurring != nil {
		query = query.Where("is_recurring = ?", *filter.IsRecurring)
	}
	if filter.StartDate != nil {
		query = query.Where("expense_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("expense_date <= ?", *filter.EndDate)
	}
	if filter.SearchTerm != "" {
		query = query.Where("description LIKE ?", "%"+filter.SearchTerm+"%")
	}

	return r.paginate(query, page, pageSize)
}

// Update updates an existing expense in the database.
func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseFromEntity(expense)
	result := r.db.WithContext(ctx).Save(expenseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes an expense.
func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ExpenseModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// paginate counts the query, applies paging and preloads categories.
func (r *expenseRepository) paginate(query *gorm.DB, page, pageSize int) (*entity.ExpenseListResult, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var expenseModels []model.ExpenseModel
	result := query.
		Preload("Category").
		Order("expense_date DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		totalPages++
	}

	return &entity.ExpenseListResult{
		Expenses:   toEntitiesWithCategory(expenseModels),
		Total:      total,
		Page:       page,
		Limit:      pageSize,
		TotalPages: totalPages,
	}, nil
}

func toEntitiesWithCategory(expenseModels []model.ExpenseModel) []*entity.ExpenseWithCategory {
	expenses := make([]*entity.ExpenseWithCategory, len(expenseModels))
	for i := range expenseModels {
		expenses[i] = expenseModels[i].ToEntityWithCategory()
	}
	return expenses
}
