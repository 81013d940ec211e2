package errors

import (
	"net/http"

	"vetadmin/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches errors by business error code, so derived copies created by
// WithDetails still compare equal to their predefined sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"wrong email or password",
		"",
	)

	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"session expired, sign in again",
		"",
	)

	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"no active session",
		"",
	)

	ErrPermissionDenied = NewBaseError(
		http.StatusForbidden,
		"PERMISSION_DENIED",
		"you do not have permission for this action",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Tenant-related errors
	ErrClinicNotFound = NewBaseError(
		http.StatusNotFound,
		"CLINIC_NOT_FOUND",
		"no clinic registered for that email",
		"",
	)

	// General errors
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"resource conflict",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"server error",
		"",
	)
)

// ErrorPayload is the backend's error response body. Only the message field
// is interpreted; everything else is passed through for display.
type ErrorPayload struct {
	Message   string `json:"message"`
	Status    int    `json:"status"`
	Timestamp string `json:"timestamp"`
}

// RequestError is a non-2xx backend response, implementing the AppError interface.
type RequestError struct {
	StatusCode int
	Payload    ErrorPayload
}

// NewRequestError creates an error from a decoded backend error response.
func NewRequestError(statusCode int, payload ErrorPayload) *RequestError {
	return &RequestError{StatusCode: statusCode, Payload: payload}
}

// Error implements the error interface
func (e *RequestError) Error() string {
	if e.Payload.Message == "" {
		return http.StatusText(e.StatusCode)
	}

	return e.Payload.Message
}

// HTTPCode returns the HTTP status code
func (e *RequestError) HTTPCode() int {
	return e.StatusCode
}

// ErrorCode returns the business error code
func (e *RequestError) ErrorCode() string {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusForbidden:
		return "FORBIDDEN"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusConflict:
		return "CONFLICT"
	default:
		return "REQUEST_FAILED"
	}
}

// Message returns the user-friendly error message
func (e *RequestError) Message() string {
	return e.Error()
}

// Details returns detailed error information
func (e *RequestError) Details() string {
	return e.Payload.Timestamp
}
