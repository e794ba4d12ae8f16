// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found in the system.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrInvalidAmount is returned when an expense amount is zero or negative.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrInvalidCurrency is returned when a currency code is not supported.
	ErrInvalidCurrency = errors.New("unsupported currency code")

	// ErrInvalidRecurringFrequency is returned when a recurring frequency value is unknown.
	ErrInvalidRecurringFrequency = errors.New("invalid recurring frequency")

	// ErrRecurringFrequencyRequired is returned when an expense is recurring without a frequency.
	ErrRecurringFrequencyRequired = errors.New("recurring expenses require a frequency")

	// ErrNotAuthorizedToModifyExpense is returned when user is not authorized to modify an expense.
	ErrNotAuthorizedToModifyExpense = errors.New("not authorized to modify expense")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAmount              ExpenseErrorCode = "EXP-010001"
	ErrCodeInvalidCurrency            ExpenseErrorCode = "EXP-010002"
	ErrCodeInvalidRecurringFrequency  ExpenseErrorCode = "EXP-010003"
	ErrCodeRecurringFrequencyRequired ExpenseErrorCode = "EXP-010004"
	ErrCodeMissingExpenseFields       ExpenseErrorCode = "EXP-010005"

	// Lookup errors (02XXXX)
	ErrCodeExpenseNotFound      ExpenseErrorCode = "EXP-020001"
	ErrCodeNotAuthorizedExpense ExpenseErrorCode = "EXP-020002"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
