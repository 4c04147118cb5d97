package apperr

import (
	"fmt"
	"net/http"
)

// Error codes
const (
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeForbidden        = "FORBIDDEN"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeNotFound         = "NOT_FOUND"
	CodeConflict         = "CONFLICT"
	CodeInternalError    = "INTERNAL_ERROR"
)

// Error is a structured application error carrying the HTTP status the
// boundary should answer with.
type Error struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) WithError(err error) *Error {
	e.Err = err
	return e
}

func New(code, message string, status int) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Status:  status,
	}
}

func ValidationFailed(message string) *Error {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

func Unauthorized(message string) *Error {
	if message == "" {
		message = "unauthorized"
	}
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func Forbidden(message string) *Error {
	if message == "" {
		message = "forbidden"
	}
	return New(CodeForbidden, message, http.StatusForbidden)
}

func NotFound(message string) *Error {
	return New(CodeNotFound, message, http.StatusNotFound)
}

// Conflict is a duplicate of a unique resource (email, company name).
func Conflict(message string) *Error {
	return New(CodeConflict, message, http.StatusConflict)
}

// Duplicate covers conflicts the API historically answered with 400,
// such as applying twice to the same job.
func Duplicate(message string) *Error {
	return New(CodeConflict, message, http.StatusBadRequest)
}

func Internal(message string, err error) *Error {
	return &Error{
		Code:    CodeInternalError,
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}
