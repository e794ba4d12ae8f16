// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID         *uuid.UUID      `gorm:"type:uuid;index"`
	Description        string          `gorm:"type:varchar(255)"`
	Amount             decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Currency           string          `gorm:"type:varchar(3);not null"`
	ExpenseDate        time.Time       `gorm:"not null;index"`
	IsTaxDeductible    bool            `gorm:"default:false"`
	IsRecurring        bool            `gorm:"default:false;index"`
	RecurringFrequency *string         `gorm:"type:varchar(20)"`
	RecurringEndDate   *time.Time      `gorm:"type:timestamptz"`
	CreatedAt          time.Time       `gorm:"not null"`
	UpdatedAt          time.Time       `gorm:"not null"`
	DeletedAt          gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	var frequency *entity.RecurringFrequency
	if m.RecurringFrequency != nil {
		f := entity.RecurringFrequency(*m.RecurringFrequency)
		frequency = &f
	}

	return &entity.Expense{
		ID:                 m.ID,
		UserID:             m.UserID,
		CategoryID:         m.CategoryID,
		Description:        m.Description,
		Amount:             m.Amount,
		Currency:           m.Currency,
		ExpenseDate:        m.ExpenseDate,
		IsTaxDeductible:    m.IsTaxDeductible,
		IsRecurring:        m.IsRecurring,
		RecurringFrequency: frequency,
		RecurringEndDate:   m.RecurringEndDate,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
		DeletedAt:          deletedAt,
	}
}

// ToEntityWithCategory converts an ExpenseModel with its preloaded category.
func (m *ExpenseModel) ToEntityWithCategory() *entity.ExpenseWithCategory {
	result := &entity.ExpenseWithCategory{Expense: m.ToEntity()}
	if m.Category != nil {
		result.Category = m.Category.ToEntity()
	}
	return result
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	var deletedAt gorm.DeletedAt
	if expense.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *expense.DeletedAt, Valid: true}
	}

	var frequency *string
	if expense.RecurringFrequency != nil {
		f := string(*expense.RecurringFrequency)
		frequency = &f
	}

	return &ExpenseModel{
		ID:                 expense.ID,
		UserID:             expense.UserID,
		CategoryID:         expense.CategoryID,
		Description:        expense.Description,
		Amount:             expense.Amount,
		Currency:           expense.Currency,
		ExpenseDate:        expense.ExpenseDate,
		IsTaxDeductible:    expense.IsTaxDeductible,
		IsRecurring:        expense.IsRecurring,
		RecurringFrequency: frequency,
		RecurringEndDate:   expense.RecurringEndDate,
		CreatedAt:          expense.CreatedAt,
		UpdatedAt:          expense.UpdatedAt,
		DeletedAt:          deletedAt,
	}
}
