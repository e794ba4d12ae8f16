// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// User settings domain errors.
var (
	// ErrSettingsNotFound is returned when settings are not found for a user.
	ErrSettingsNotFound = errors.New("user settings not found")

	// ErrInvalidDefaultCurrency is returned when the default currency is not supported.
	ErrInvalidDefaultCurrency = errors.New("unsupported default currency")

	// ErrInvalidPreferredCurrency is returned when a preferred currency is not supported.
	ErrInvalidPreferredCurrency = errors.New("unsupported preferred currency")

	// ErrInvalidItemsPerPage is returned when the items-per-page value is out of range.
	ErrInvalidItemsPerPage = errors.New("items per page out of range")
)

// SettingsErrorCode defines error codes for settings errors.
// Format: SET-XXYYYY where XX is category and YYYY is specific error.
type SettingsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDefaultCurrency   SettingsErrorCode = "SET-010001"
	ErrCodeInvalidPreferredCurrency SettingsErrorCode = "SET-010002"
	ErrCodeInvalidItemsPerPage      SettingsErrorCode = "SET-010003"

	// Lookup errors (02XXXX)
	ErrCodeSettingsNotFound SettingsErrorCode = "SET-020001"
)

// SettingsError represents a settings error with code and message.
type SettingsError struct {
	Code    SettingsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SettingsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SettingsError) Unwrap() error {
	return e.Err
}

// NewSettingsError creates a new SettingsError with the given code and message.
func NewSettingsError(code SettingsErrorCode, message string, err error) *SettingsError {
	return &SettingsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
