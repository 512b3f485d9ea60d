// Package error defines domain-specific errors for the Life Manager application.
package error

import "errors"

// Budget configuration errors.
var (
	ErrBudgetConfigNotFound    = errors.New("budget config not found")
	ErrInvalidBudgetPercentage = errors.New("budget percentage must be between 0 and 100")
	ErrInvalidBudgetAmount     = errors.New("budget amount must not be negative")
	ErrInvalidCreditCardLimits = errors.New("credit card limits must be ascending: green <= yellow <= red")
	ErrInvalidMonth            = errors.New("month must be formatted as YYYY-MM")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BUD-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	ErrCodeBudgetConfigNotFound    BudgetErrorCode = "BUD-010001"
	ErrCodeInvalidBudgetPercentage BudgetErrorCode = "BUD-010002"
	ErrCodeInvalidBudgetAmount     BudgetErrorCode = "BUD-010003"
	ErrCodeInvalidCreditCardLimits BudgetErrorCode = "BUD-010004"
	ErrCodeInvalidMonth            BudgetErrorCode = "BUD-020001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{Code: code, Message: message, Err: err}
}
