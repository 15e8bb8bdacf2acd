package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code
type ErrorCode int

// AppError represents an application error
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrNotFound ErrorCode = iota + 1000
	ErrBadRequest
	ErrConflict
	ErrConfigInvalid
	ErrNotImplemented
	ErrInternal
)

func NotFound(resource string) *AppError {
	return &AppError{
		Code:    ErrNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func BadRequest(message string, err error) *AppError {
	return &AppError{
		Code:    ErrBadRequest,
		Message: message,
		Err:     err,
	}
}

func Conflict(message string) *AppError {
	return &AppError{
		Code:    ErrConflict,
		Message: message,
	}
}

// ConfigInvalid marks generation or startup parameters that fail
// validation; construction stops rather than producing inconsistent data.
func ConfigInvalid(message string, err error) *AppError {
	return &AppError{
		Code:    ErrConfigInvalid,
		Message: message,
		Err:     err,
	}
}

// NotImplemented is returned by every operation of the database-backed
// storage until it lands. Deliberate fail-fast: a misconfigured
// deployment must not silently serve empty data.
func NotImplemented(operation string) *AppError {
	return &AppError{
		Code:    ErrNotImplemented,
		Message: fmt.Sprintf("%s is not implemented for this storage backend", operation),
	}
}

func Internal(err error) *AppError {
	return &AppError{
		Code:    ErrInternal,
		Message: "internal server error",
		Err:     err,
	}
}

// CodeOf extracts the application error code, defaulting to ErrInternal
// for unwrapped errors.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrInternal
}

func IsNotFound(err error) bool {
	return CodeOf(err) == ErrNotFound
}
