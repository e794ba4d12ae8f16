// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Report domain errors.
var (
	// ErrInvalidPeriod is returned when a report period is malformed.
	ErrInvalidPeriod = errors.New("invalid report period")

	// ErrPeriodEndBeforeStart is returned when a custom range ends before it starts.
	ErrPeriodEndBeforeStart = errors.New("period end date is before start date")

	// ErrInvalidMonth is returned when a month value is outside 1-12.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")

	// ErrInsightUnavailable is returned when the insight provider cannot produce a summary.
	ErrInsightUnavailable = errors.New("report insight unavailable")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPeriod        ReportErrorCode = "RPT-010001"
	ErrCodePeriodEndBeforeStart ReportErrorCode = "RPT-010002"
	ErrCodeInvalidMonth         ReportErrorCode = "RPT-010003"

	// Generation errors (02XXXX)
	ErrCodeReportGeneration   ReportErrorCode = "RPT-020001"
	ErrCodeInsightUnavailable ReportErrorCode = "RPT-020002"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
