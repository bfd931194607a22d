package errors

import (
	"errors"
	"fmt"
)

var (
	New    = errors.New
	Unwrap = errors.Unwrap
	Is     = errors.Is
	As     = errors.As
)

// Error is an error carrying a stable machine-readable code.
type Error interface {
	error
	Code() string
	Unwrap() error
}

// AppError is the error type returned across service boundaries.
type AppError struct {
	code    string
	message string
	err     error
}

func (e *AppError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s", e.message, e.err.Error())
	}
	return e.message
}

func (e *AppError) Code() string {
	return e.code
}

// Message returns the message without the wrapped cause, safe to show to clients.
func (e *AppError) Message() string {
	return e.message
}

func (e *AppError) Unwrap() error {
	return e.err
}

// NewAppError creates a new application error.
func NewAppError(code string, message string, err error) *AppError {
	return &AppError{
		code:    code,
		message: message,
		err:     err,
	}
}

// Wrap wraps err keeping the code of an inner AppError, INTERNAL otherwise.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if As(err, &appErr) {
		return NewAppError(appErr.Code(), message, err)
	}

	return NewAppError(ErrInternal, message, err)
}

// CodeOf returns the code of the outermost AppError in the chain, or INTERNAL.
func CodeOf(err error) string {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr.Code()
	}
	return ErrInternal
}

func NotFound(message string) *AppError {
	return NewAppError(ErrNotFound, message, nil)
}

func InvalidArgument(message string, err error) *AppError {
	return NewAppError(ErrInvalidArgument, message, err)
}

func Conflict(message string, err error) *AppError {
	return NewAppError(ErrConflict, message, err)
}

func Unauthenticated(message string) *AppError {
	return NewAppError(ErrUnauthenticated, message, nil)
}

func Unauthorized(message string) *AppError {
	return NewAppError(ErrUnauthorized, message, nil)
}

func Unavailable(message string, err error) *AppError {
	return NewAppError(ErrUnavailable, message, err)
}

func Internal(message string, err error) *AppError {
	return NewAppError(ErrInternal, message, err)
}
