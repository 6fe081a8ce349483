package errors

import (
	"errors"
	"net/http"
)

// Error codes
const (
	// Validation errors
	ErrCodeInvalidInput  = "INVALID_INPUT"
	ErrCodeMissingField  = "MISSING_FIELD"
	ErrCodeInvalidFormat = "INVALID_FORMAT"

	// Resource errors
	ErrCodeNotFound = "NOT_FOUND"

	// Service errors
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// APIError is an error the HTTP layer can show to the caller as is.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new APIError
func NewAPIError(status int, code, message string) *APIError {
	return &APIError{
		Status:  status,
		Code:    code,
		Message: message,
	}
}

// BadRequest creates a 400 error
func BadRequest(code, message string) *APIError {
	if message == "" {
		message = "Invalid request"
	}
	return NewAPIError(http.StatusBadRequest, code, message)
}

// NotFound creates a 404 error
func NotFound(message string) *APIError {
	if message == "" {
		message = "Resource not found"
	}
	return NewAPIError(http.StatusNotFound, ErrCodeNotFound, message)
}

// Predefined errors
var (
	ErrInvalidInput  = BadRequest(ErrCodeInvalidInput, "Invalid request body")
	ErrInternalError = NewAPIError(http.StatusInternalServerError, ErrCodeInternalError, "Internal server error")
)

// As reports whether err carries an APIError and returns it.
func As(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
