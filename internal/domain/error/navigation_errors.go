// Package error defines domain-specific errors for the budget tracker.
package error

import "errors"

// Navigation domain errors.
var (
	// ErrInvalidRangePreset is returned when the range query value is not a known preset.
	ErrInvalidRangePreset = errors.New("range must be: week, fortnight, month, quarter, half-year, or year")

	// ErrInvalidIntervalPreset is returned when the interval query value is not a known preset.
	ErrInvalidIntervalPreset = errors.New("interval must be: week, fortnight, month, quarter, half-year, or year")

	// ErrInvalidAnchor is returned when the anchor date is missing or malformed.
	ErrInvalidAnchor = errors.New("invalid anchor date, expected YYYY-MM-DD")

	// ErrAnchorOutOfRange is returned when the anchor falls outside the supported calendar.
	ErrAnchorOutOfRange = errors.New("anchor date out of supported range")
)

// NavigationErrorCode defines error codes for navigation errors.
// Format: NAV-XXYYYY where XX is category and YYYY is specific error.
type NavigationErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidRangePreset    NavigationErrorCode = "NAV-010001"
	ErrCodeInvalidIntervalPreset NavigationErrorCode = "NAV-010002"
	ErrCodeInvalidAnchor         NavigationErrorCode = "NAV-010003"
	ErrCodeAnchorOutOfRange      NavigationErrorCode = "NAV-010004"
)

// NavigationError is the InvalidNavigation failure of the transactions view.
type NavigationError struct {
	Code    NavigationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *NavigationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *NavigationError) Unwrap() error {
	return e.Err
}

// NewNavigationError creates a new NavigationError with the given code and message.
func NewNavigationError(code NavigationErrorCode, message string, err error) *NavigationError {
	return &NavigationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
