// Package error defines domain-specific errors for the Life Manager application.
package error

import "errors"

// Portfolio domain errors.
var (
	// ErrBucketNotFound is returned when an investment bucket is not found.
	ErrBucketNotFound = errors.New("investment bucket not found")

	// ErrAssetNotFound is returned when an asset is not found.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrMissingPortfolioFields is returned when a required bucket or asset field is missing.
	ErrMissingPortfolioFields = errors.New("required portfolio fields are missing")

	// ErrInvalidPercentage is returned when a target percentage is outside 0..100.
	ErrInvalidPercentage = errors.New("percentage must be between 0 and 100")

	// ErrInvalidQuantity is returned when an asset quantity is negative.
	ErrInvalidQuantity = errors.New("quantity must not be negative")

	// ErrInvalidContribution is returned when a contribution amount is not positive.
	ErrInvalidContribution = errors.New("contribution amount must be positive")

	// ErrInvalidPrice is returned when a manual price is negative.
	ErrInvalidPrice = errors.New("price must not be negative")
)

// PortfolioErrorCode defines error codes for portfolio errors.
// Format: PORT-XXYYYY where XX is category and YYYY is specific error.
type PortfolioErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingPortfolioFields PortfolioErrorCode = "PORT-010001"
	ErrCodeInvalidPercentage      PortfolioErrorCode = "PORT-010002"
	ErrCodeInvalidQuantity        PortfolioErrorCode = "PORT-010003"
	ErrCodeInvalidPrice           PortfolioErrorCode = "PORT-010004"
	ErrCodeInvalidContribution    PortfolioErrorCode = "PORT-010005"

	// Lookup errors (02XXXX)
	ErrCodeBucketNotFound PortfolioErrorCode = "PORT-020001"
	ErrCodeAssetNotFound  PortfolioErrorCode = "PORT-020002"
)

// PortfolioError represents a portfolio error with code and message.
type PortfolioError struct {
	Code    PortfolioErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PortfolioError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PortfolioError) Unwrap() error {
	return e.Err
}

// NewPortfolioError creates a new PortfolioError with the given code and message.
func NewPortfolioError(code PortfolioErrorCode, message string, err error) *PortfolioError {
	return &PortfolioError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
