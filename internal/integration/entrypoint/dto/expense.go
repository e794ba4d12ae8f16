// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	Description        string  `json:"description" binding:"required,min=1,max=255"`
	Amount             float64 `json:"amount" binding:"required"`
	Currency           string  `json:"currency" binding:"required,len=3"`
	ExpenseDate        string  `json:"expense_date" binding:"required"`
	CategoryID         *string `json:"category_id,omitempty"`
	IsTaxDeductible    bool    `json:"is_tax_deductible,omitempty"`
	IsRecurring        bool    `json:"is_recurring,omitempty"`
	RecurringFrequency *string `json:"recurring_frequency,omitempty"`
	RecurringEndDate   *string `json:"recurring_end_date,omitempty"`
}

// UpdateExpenseRequest represents the request body for expense update.
// Updates replace the full record, so the same fields are required as on
// creation.
type UpdateExpenseRequest struct {
	Description        string  `json:"description" binding:"required,min=1,max=255"`
	Amount             float64 `json:"amount" binding:"required"`
	Currency           string  `json:"currency" binding:"required,len=3"`
	ExpenseDate        string  `json:"expense_date" binding:"required"`
	CategoryID         *string `json:"category_id,omitempty"`
	IsTaxDeductible    bool    `json:"is_tax_deductible,omitempty"`
	IsRecurring        bool    `json:"is_recurring,omitempty"`
	RecurringFrequency *string `json:"recurring_frequency,omitempty"`
	RecurringEndDate   *string `json:"recurring_end_date,omitempty"`
}

// ExpenseCategoryResponse represents category information in expense responses.
type ExpenseCategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID                 string                   `json:"id"`
	UserID             string                   `json:"user_id"`
	Description        string                   `json:"description"`
	Amount             string                   `json:"amount"`
	Currency           string                   `json:"currency"`
	ExpenseDate        string                   `json:"expense_date"`
	CategoryID         *string                  `json:"category_id,omitempty"`
	Category           *ExpenseCategoryResponse `json:"category,omitempty"`
	IsTaxDeductible    bool                     `json:"is_tax_deductible"`
	IsRecurring        bool                     `json:"is_recurring"`
	RecurringFrequency *string                  `json:"recurring_frequency,omitempty"`
	RecurringEndDate   *string                  `json:"recurring_end_date,omitempty"`
	CreatedAt          time.Time                `json:"created_at"`
	UpdatedAt          time.Time                `json:"updated_at"`
}

// ExpensePaginationResponse represents pagination information in API responses.
type ExpensePaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses   []ExpenseResponse         `json:"expenses"`
	Pagination ExpensePaginationResponse `json:"pagination"`
}

// RecurringExpenseListResponse represents the response for listing recurring expenses.
type RecurringExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(expense *entity.Expense) ExpenseResponse {
	response := ExpenseResponse{
		ID:              expense.ID.String(),
		UserID:          expense.UserID.String(),
		Description:     expense.Description,
		Amount:          expense.Amount.String(),
		Currency:        expense.Currency,
		ExpenseDate:     expense.ExpenseDate.Format("2006-01-02"),
		IsTaxDeductible: expense.IsTaxDeductible,
		IsRecurring:     expense.IsRecurring,
		CreatedAt:       expense.CreatedAt,
		UpdatedAt:       expense.UpdatedAt,
	}

	if expense.CategoryID != nil {
		categoryID := expense.CategoryID.String()
		response.CategoryID = &categoryID
	}
	if expense.RecurringFrequency != nil {
		frequency := string(*expense.RecurringFrequency)
		response.RecurringFrequency = &frequency
	}
	if expense.RecurringEndDate != nil {
		endDate := expense.RecurringEndDate.Format("2006-01-02")
		response.RecurringEndDate = &endDate
	}

	return response
}

// ToExpenseWithCategoryResponse converts an ExpenseWithCategory to an ExpenseResponse DTO.
func ToExpenseWithCategoryResponse(item *entity.ExpenseWithCategory) ExpenseResponse {
	response := ToExpenseResponse(item.Expense)

	if item.Category != nil {
		response.Category = &ExpenseCategoryResponse{
			ID:    item.Category.ID.String(),
			Name:  item.Category.Name,
			Color: item.Category.Color,
			Icon:  item.Category.Icon,
		}
	}

	return response
}

// ToExpenseListResponse converts an ExpenseListResult to ExpenseListResponse.
func ToExpenseListResponse(result *entity.ExpenseListResult) ExpenseListResponse {
	expenses := make([]ExpenseResponse, len(result.Expenses))
	for i, item := range result.Expenses {
		expenses[i] = ToExpenseWithCategoryResponse(item)
	}

	return ExpenseListResponse{
		Expenses: expenses,
		Pagination: ExpensePaginationResponse{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	}
}
