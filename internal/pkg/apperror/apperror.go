package apperror

import (
	"errors"
	"net/http"
)

// AppError is a domain error carrying the HTTP status it maps to.
// Packages declare AppErrors as sentinels and add detail by wrapping them with fmt.Errorf("%w: ...").
type AppError struct {
	Code    int    // HTTP Status Code (e.g., 400, 404)
	Message string // User-facing error message
	Err     error  // The underlying error, if any (not exposed to user)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with a status code and message.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func NotFound(message string) *AppError     { return New(http.StatusNotFound, message) }
func Invalid(message string) *AppError      { return New(http.StatusBadRequest, message) }
func Forbidden(message string) *AppError    { return New(http.StatusForbidden, message) }
func Conflict(message string) *AppError     { return New(http.StatusConflict, message) }
func Unauthorized(message string) *AppError { return New(http.StatusUnauthorized, message) }

// From finds the outermost AppError in err's chain.
func From(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
