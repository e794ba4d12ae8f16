// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/usecase/report"
	"github.com/expense-tracker/backend/internal/application/usecase/settings"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles report endpoints.
type ReportController struct {
	monthlyUseCase     *report.MonthlyReportUseCase
	annualUseCase      *report.AnnualReportUseCase
	customUseCase      *report.CustomReportUseCase
	insightUseCase     *report.GenerateInsightUseCase
	getSettingsUseCase *settings.GetSettingsUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	monthlyUseCase *report.MonthlyReportUseCase,
	annualUseCase *report.AnnualReportUseCase,
	customUseCase *report.CustomReportUseCase,
	insightUseCase *report.GenerateInsightUseCase,
	getSettingsUseCase *settings.GetSettingsUseCase,
) *ReportController {
	return &ReportController{
		monthlyUseCase:     monthlyUseCase,
		annualUseCase:      annualUseCase,
		customUseCase:      customUseCase,
		insightUseCase:     insightUseCase,
		getSettingsUseCase: getSettingsUseCase,
	}
}

// Monthly handles GET /reports/monthly requests.
func (c *ReportController) Monthly(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	data, err := c.buildMonthly(ctx, userID)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReportResponse(data))
}

// Annual handles GET /reports/annual requests.
func (c *ReportController) Annual(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	data, err := c.buildAnnual(ctx, userID)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReportResponse(data))
}

// Custom handles GET /reports/custom requests.
func (c *ReportController) Custom(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	data, err := c.buildCustom(ctx, userID)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReportResponse(data))
}

// Download handles GET /reports/download requests. The kind query parameter
// selects the report shape; the remaining parameters match the JSON
// endpoints. The response is a CSV attachment.
func (c *ReportController) Download(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	data, err := c.buildByKind(ctx, userID)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	csv := report.BuildCSV(data, c.displayCurrency(ctx, userID))
	fileName := report.CSVFileName(data)

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}

// Insight handles GET /reports/insight requests.
func (c *ReportController) Insight(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	data, err := c.buildByKind(ctx, userID)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	output, err := c.insightUseCase.Execute(ctx.Request.Context(), report.GenerateInsightInput{
		Report:          data,
		DisplayCurrency: c.displayCurrency(ctx, userID),
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.InsightResponse{Summary: output.Summary})
}

func (c *ReportController) buildByKind(ctx *gin.Context, userID uuid.UUID) (*report.ReportData, error) {
	switch kind := ctx.DefaultQuery("kind", "monthly"); kind {
	case "monthly":
		return c.buildMonthly(ctx, userID)
	case "annual":
		return c.buildAnnual(ctx, userID)
	case "custom":
		return c.buildCustom(ctx, userID)
	default:
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidPeriod,
			fmt.Sprintf("unknown report kind %q", kind),
			nil,
		)
	}
}

func (c *ReportController) buildMonthly(ctx *gin.Context, userID uuid.UUID) (*report.ReportData, error) {
	now := time.Now().UTC()
	year, err := intQuery(ctx, "year", now.Year())
	if err != nil {
		return nil, err
	}
	month, err := intQuery(ctx, "month", int(now.Month()))
	if err != nil {
		return nil, err
	}

	return c.monthlyUseCase.Execute(ctx.Request.Context(), report.MonthlyReportInput{
		UserID:         userID,
		Year:           year,
		Month:          month,
		WithConversion: boolQuery(ctx, "convert"),
	})
}

func (c *ReportController) buildAnnual(ctx *gin.Context, userID uuid.UUID) (*report.ReportData, error) {
	year, err := intQuery(ctx, "year", time.Now().UTC().Year())
	if err != nil {
		return nil, err
	}

	return c.annualUseCase.Execute(ctx.Request.Context(), report.AnnualReportInput{
		UserID:         userID,
		Year:           year,
		FinancialYear:  boolQuery(ctx, "financial_year"),
		WithConversion: boolQuery(ctx, "convert"),
	})
}

func (c *ReportController) buildCustom(ctx *gin.Context, userID uuid.UUID) (*report.ReportData, error) {
	fromDate, err := dateQuery(ctx, "from")
	if err != nil {
		return nil, err
	}
	toDate, err := dateQuery(ctx, "to")
	if err != nil {
		return nil, err
	}

	return c.customUseCase.Execute(ctx.Request.Context(), report.CustomReportInput{
		UserID:         userID,
		FromDate:       fromDate,
		ToDate:         toDate,
		WithConversion: boolQuery(ctx, "convert"),
	})
}

// displayCurrency resolves the currency used to format CSV exports and
// insight summaries. Settings lookups never fail into the request; the
// default currency is used when the lookup errors.
func (c *ReportController) displayCurrency(ctx *gin.Context, userID uuid.UUID) string {
	output, err := c.getSettingsUseCase.Execute(ctx.Request.Context(), settings.GetSettingsInput{
		UserID: userID,
	})
	if err != nil {
		return "USD"
	}
	return output.Settings.DefaultCurrency
}

func intQuery(ctx *gin.Context, name string, fallback int) (int, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainerror.NewReportError(
			domainerror.ErrCodeInvalidPeriod,
			fmt.Sprintf("invalid %s parameter", name),
			err,
		)
	}
	return value, nil
}

func boolQuery(ctx *gin.Context, name string) bool {
	value, _ := strconv.ParseBool(ctx.Query(name))
	return value
}

func dateQuery(ctx *gin.Context, name string) (time.Time, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return time.Time{}, domainerror.NewReportError(
			domainerror.ErrCodeInvalidPeriod,
			fmt.Sprintf("missing %s parameter, expected YYYY-MM-DD", name),
			nil,
		)
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, domainerror.NewReportError(
			domainerror.ErrCodeInvalidPeriod,
			fmt.Sprintf("invalid %s parameter, expected YYYY-MM-DD", name),
			err,
		)
	}
	return date, nil
}

// handleReportError handles report errors and returns appropriate HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var rptErr *domainerror.ReportError
	if errors.As(err, &rptErr) {
		statusCode := c.getStatusCodeForReportError(rptErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: rptErr.Message,
			Code:  string(rptErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForReportError maps report error codes to HTTP status codes.
func (c *ReportController) getStatusCodeForReportError(code domainerror.ReportErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidPeriod,
		domainerror.ErrCodePeriodEndBeforeStart,
		domainerror.ErrCodeInvalidMonth:
		return http.StatusBadRequest
	case domainerror.ErrCodeInsightUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
