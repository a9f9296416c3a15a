package error

import "errors"

// ErrRateLimited is returned when a client sends too many requests.
var ErrRateLimited = errors.New("too many requests")

// RequestErrorCode defines error codes for request-level errors.
type RequestErrorCode string

const (
	ErrCodeRateLimited    RequestErrorCode = "REQ-020001"
	ErrCodeInvalidRequest RequestErrorCode = "REQ-010001"
)
