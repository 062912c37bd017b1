package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrValidation    = errors.New("validation error")
	ErrRequestFailed = errors.New("request failed")
	ErrWriteFailed   = errors.New("write failed")
	ErrInProgress    = errors.New("operation in progress")
	ErrUnauthorized  = errors.New("unauthorized")
)

// AppError carries a sentinel kind plus a message that is safe to show a client.
type AppError struct {
	Err     error  // sentinel kind, matched with errors.Is
	Message string // human-readable message
	Field   string // optional: offending input field
	Cause   error  // optional: underlying error, never shown to clients
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap exposes both the sentinel kind and the cause to errors.Is/As.
func (e *AppError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %s", resource, id),
	}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

// RequestFailed reports an upstream call that could not complete or returned a non-success status.
func RequestFailed(provider string, cause error) *AppError {
	return &AppError{
		Err:     ErrRequestFailed,
		Message: fmt.Sprintf("%s request failed", provider),
		Cause:   cause,
	}
}

// WriteFailed reports a rejected store write. The previous value is untouched.
func WriteFailed(key string, cause error) *AppError {
	return &AppError{
		Err:     ErrWriteFailed,
		Message: fmt.Sprintf("could not persist %s", key),
		Cause:   cause,
	}
}

func InProgress(what string) *AppError {
	return &AppError{
		Err:     ErrInProgress,
		Message: fmt.Sprintf("%s already in progress", what),
	}
}

func Unauthorized(message string) *AppError {
	return &AppError{
		Err:     ErrUnauthorized,
		Message: message,
	}
}
