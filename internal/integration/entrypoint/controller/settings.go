// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/usecase/settings"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// SettingsController handles user settings endpoints.
type SettingsController struct {
	getUseCase    *settings.GetSettingsUseCase
	updateUseCase *settings.UpdateSettingsUseCase
}

// NewSettingsController creates a new settings controller instance.
func NewSettingsController(
	getUseCase *settings.GetSettingsUseCase,
	updateUseCase *settings.UpdateSettingsUseCase,
) *SettingsController {
	return &SettingsController{
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
	}
}

// Get handles GET /settings requests.
func (c *SettingsController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), settings.GetSettingsInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve settings",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(output.Settings))
}

// Update handles PATCH /settings requests.
func (c *SettingsController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := settings.UpdateSettingsInput{
		UserID:              userID,
		DefaultCurrency:     req.DefaultCurrency,
		PreferredCurrencies: req.PreferredCurrencies,
		ItemsPerPage:        req.ItemsPerPage,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSettingsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(output.Settings))
}

// handleSettingsError handles settings errors and returns appropriate HTTP responses.
func (c *SettingsController) handleSettingsError(ctx *gin.Context, err error) {
	var setErr *domainerror.SettingsError
	if errors.As(err, &setErr) {
		statusCode := c.getStatusCodeForSettingsError(setErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: setErr.Message,
			Code:  string(setErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForSettingsError maps settings error codes to HTTP status codes.
func (c *SettingsController) getStatusCodeForSettingsError(code domainerror.SettingsErrorCode) int {
	switch code {
	case domainerror.ErrCodeSettingsNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidDefaultCurrency,
		domainerror.ErrCodeInvalidPreferredCurrency,
		domainerror.ErrCodeInvalidItemsPerPage:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
