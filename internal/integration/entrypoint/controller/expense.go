// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/expense"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	createUseCase        *expense.CreateExpenseUseCase
	getUseCase           *expense.GetExpenseUseCase
	listUseCase          *expense.ListExpensesUseCase
	searchUseCase        *expense.SearchExpensesUseCase
	listRecurringUseCase *expense.ListRecurringUseCase
	updateUseCase        *expense.UpdateExpenseUseCase
	deleteUseCase        *expense.DeleteExpenseUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	createUseCase *expense.CreateExpenseUseCase,
	getUseCase *expense.GetExpenseUseCase,
	listUseCase *expense.ListExpensesUseCase,
	searchUseCase *expense.SearchExpensesUseCase,
	listRecurringUseCase *expense.ListRecurringUseCase,
	updateUseCase *expense.UpdateExpenseUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
) *ExpenseController {
	return &ExpenseController{
		createUseCase:        createUseCase,
		getUseCase:           getUseCase,
		listUseCase:          listUseCase,
		searchUseCase:        searchUseCase,
		listRecurringUseCase: listRecurringUseCase,
		updateUseCase:        updateUseCase,
		deleteUseCase:        deleteUseCase,
	}
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return
	}

	expenseDate, err := time.Parse("2006-01-02", req.ExpenseDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense date, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return
	}

	categoryID, err := parseOptionalUUID(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	recurringEndDate, err := parseOptionalDate(req.RecurringEndDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid recurring end date, expected YYYY-MM-DD",
		})
		return
	}

	input := expense.CreateExpenseInput{
		UserID:             userID,
		CategoryID:         categoryID,
		Description:        req.Description,
		Amount:             decimal.NewFromFloat(req.Amount),
		Currency:           req.Currency,
		ExpenseDate:        expenseDate,
		IsTaxDeductible:    req.IsTaxDeductible,
		IsRecurring:        req.IsRecurring,
		RecurringFrequency: req.RecurringFrequency,
		RecurringEndDate:   recurringEndDate,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense))
}

// Get handles GET /expenses/:id requests.
func (c *ExpenseController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), expense.GetExpenseInput{
		UserID:    userID,
		ExpenseID: expenseID,
	})
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("limit", "0"))

	output, err := c.listUseCase.Execute(ctx.Request.Context(), expense.ListExpensesInput{
		UserID:   userID,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve expenses",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output.Result))
}

// Search handles GET /expenses/search requests.
func (c *ExpenseController) Search(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	filter, err := c.parseFilter(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("limit", "0"))

	output, err := c.searchUseCase.Execute(ctx.Request.Context(), expense.SearchExpensesInput{
		UserID:   userID,
		Filter:   filter,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to search expenses",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output.Result))
}

// ListRecurring handles GET /expenses/recurring requests.
func (c *ExpenseController) ListRecurring(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listRecurringUseCase.Execute(ctx.Request.Context(), expense.ListRecurringInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve recurring expenses",
		})
		return
	}

	expenses := make([]dto.ExpenseResponse, len(output.Expenses))
	for i, item := range output.Expenses {
		expenses[i] = dto.ToExpenseWithCategoryResponse(item)
	}
	ctx.JSON(http.StatusOK, dto.RecurringExpenseListResponse{Expenses: expenses})
}

// Update handles PUT /expenses/:id requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID format",
		})
		return
	}

	var req dto.UpdateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return
	}

	expenseDate, err := time.Parse("2006-01-02", req.ExpenseDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense date, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return
	}

	categoryID, err := parseOptionalUUID(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	recurringEndDate, err := parseOptionalDate(req.RecurringEndDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid recurring end date, expected YYYY-MM-DD",
		})
		return
	}

	input := expense.UpdateExpenseInput{
		UserID:             userID,
		ExpenseID:          expenseID,
		CategoryID:         categoryID,
		Description:        req.Description,
		Amount:             decimal.NewFromFloat(req.Amount),
		Currency:           req.Currency,
		ExpenseDate:        expenseDate,
		IsTaxDeductible:    req.IsTaxDeductible,
		IsRecurring:        req.IsRecurring,
		RecurringFrequency: req.RecurringFrequency,
		RecurringEndDate:   recurringEndDate,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// Delete handles DELETE /expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), expense.DeleteExpenseInput{
		UserID:    userID,
		ExpenseID: expenseID,
	}); err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parseFilter builds the search filter from query parameters.
func (c *ExpenseController) parseFilter(ctx *gin.Context) (adapter.ExpenseFilter, error) {
	filter := adapter.ExpenseFilter{
		SearchTerm: ctx.Query("q"),
	}

	if categoryIDStr := ctx.Query("category_id"); categoryIDStr != "" {
		categoryID, err := uuid.Parse(categoryIDStr)
		if err != nil {
			return filter, errors.New("invalid category_id filter")
		}
		filter.CategoryID = &categoryID
	}
	if currency := ctx.Query("currency"); currency != "" {
		filter.Currency = &currency
	}
	if deductibleStr := ctx.Query("tax_deductible"); deductibleStr != "" {
		deductible, err := strconv.ParseBool(deductibleStr)
		if err != nil {
			return filter, errors.New("invalid tax_deductible filter")
		}
		filter.IsTaxDeductible = &deductible
	}
	if recurringStr := ctx.Query("recurring"); recurringStr != "" {
		recurring, err := strconv.ParseBool(recurringStr)
		if err != nil {
			return filter, errors.New("invalid recurring filter")
		}
		filter.IsRecurring = &recurring
	}
	if startDateStr := ctx.Query("start_date"); startDateStr != "" {
		startDate, err := time.Parse("2006-01-02", startDateStr)
		if err != nil {
			return filter, errors.New("invalid start_date filter, expected YYYY-MM-DD")
		}
		filter.StartDate = &startDate
	}
	if endDateStr := ctx.Query("end_date"); endDateStr != "" {
		endDate, err := time.Parse("2006-01-02", endDateStr)
		if err != nil {
			return filter, errors.New("invalid end_date filter, expected YYYY-MM-DD")
		}
		filter.EndDate = &endDate
	}

	return filter, nil
}

// handleExpenseError handles expense errors and returns appropriate HTTP responses.
func (c *ExpenseController) handleExpenseError(ctx *gin.Context, err error) {
	var expErr *domainerror.ExpenseError
	if errors.As(err, &expErr) {
		statusCode := c.getStatusCodeForExpenseError(expErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: expErr.Message,
			Code:  string(expErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForExpenseError maps expense error codes to HTTP status codes.
func (c *ExpenseController) getStatusCodeForExpenseError(code domainerror.ExpenseErrorCode) int {
	switch code {
	case domainerror.ErrCodeExpenseNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedExpense:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidAmount,
		domainerror.ErrCodeInvalidCurrency,
		domainerror.ErrCodeInvalidRecurringFrequency,
		domainerror.ErrCodeRecurringFrequencyRequired,
		domainerror.ErrCodeMissingExpenseFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondUnauthenticated writes the shared missing-authentication response.
func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}

// parseOptionalUUID parses an optional UUID string from a request body.
func parseOptionalUUID(value *string) (*uuid.UUID, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// parseOptionalDate parses an optional YYYY-MM-DD string from a request body.
func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	date, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil, err
	}
	return &date, nil
}
