package errors

import "fmt"

// ErrCode represents an error code
type ErrCode string

const (
	ErrCodeBadRequest       ErrCode = "BAD_REQUEST"
	ErrCodeForbidden        ErrCode = "FORBIDDEN"
	ErrCodeRateLimited      ErrCode = "RATE_LIMITED"
	ErrCodeMethodNotAllowed ErrCode = "METHOD_NOT_ALLOWED"
	ErrCodeUnavailable      ErrCode = "UNAVAILABLE"
	ErrCodeInternal         ErrCode = "INTERNAL_ERROR"
)

// AppError represents an application error. Message is safe to show to a
// caller; Err carries the underlying cause for server-side logs only.
type AppError struct {
	Code    ErrCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewBadRequestError creates a new bad request error
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeBadRequest,
		Message: message,
	}
}

// NewForbiddenError creates a new forbidden error
func NewForbiddenError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeForbidden,
		Message: message,
	}
}

// NewRateLimitedError creates a new rate limited error
func NewRateLimitedError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeRateLimited,
		Message: message,
	}
}

// NewMethodNotAllowedError creates a new method not allowed error
func NewMethodNotAllowedError() *AppError {
	return &AppError{
		Code:    ErrCodeMethodNotAllowed,
		Message: "Method not allowed",
	}
}

// NewUnavailableError creates a new service unavailable error for operator
// misconfiguration
func NewUnavailableError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeUnavailable,
		Message: message,
	}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// IsBadRequest checks if the error is a bad request error
func IsBadRequest(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == ErrCodeBadRequest
	}
	return false
}

// IsRateLimited checks if the error is a rate limited error
func IsRateLimited(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == ErrCodeRateLimited
	}
	return false
}
