package error

import "errors"

// Tag and preference domain errors.
var (
	// ErrTagNotFound is returned when a referenced tag does not exist.
	ErrTagNotFound = errors.New("tag not found")

	// ErrInvalidTagID is returned when a tag id is not a positive integer.
	ErrInvalidTagID = errors.New("tag ids must be positive integers")
)

// TagErrorCode defines error codes for tag and preference errors.
// Format: TAG-XXYYYY where XX is category and YYYY is specific error.
type TagErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeTagNotFound  TagErrorCode = "TAG-010001"
	ErrCodeInvalidTagID TagErrorCode = "TAG-010002"

	// Internal errors (99XXXX)
	ErrCodeTagInternalError TagErrorCode = "TAG-990001"
)

// TagError represents a tag error with code and message.
type TagError struct {
	Code    TagErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TagError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TagError) Unwrap() error {
	return e.Err
}

// NewTagError creates a new TagError with the given code and message.
func NewTagError(code TagErrorCode, message string, err error) *TagError {
	return &TagError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
