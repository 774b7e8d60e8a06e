package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a semantic classification shared across transport layers.
type ErrorCode string

const (
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeInvalid      ErrorCode = "INVALID"
	ErrCodeForbidden    ErrorCode = "FORBIDDEN"
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInternal     ErrorCode = "INTERNAL"
)

// Error represents a domain-level error.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewError builds a domain error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError wraps an existing error with a domain classification.
func WrapError(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Authentication and session errors. ErrInvalidCredentials deliberately
// covers unknown login, inactive account and wrong password with a single
// message so the response cannot be used to enumerate accounts.
var (
	ErrInvalidCredentials = NewError(ErrCodeUnauthorized, "invalid login or password")
	ErrNoSession          = NewError(ErrCodeUnauthorized, "no session")
	ErrCorruptedSession   = NewError(ErrCodeUnauthorized, "corrupted session")
	ErrInvalidSession     = NewError(ErrCodeUnauthorized, "invalid session")
	ErrUserDeactivated    = NewError(ErrCodeUnauthorized, "user inactive or not found")
	ErrUnauthenticated    = NewError(ErrCodeUnauthorized, "not authenticated")
	ErrForbidden          = NewError(ErrCodeForbidden, "insufficient permissions")
)

// Lookup and infrastructure errors.
var (
	ErrUserNotFound     = NewError(ErrCodeNotFound, "user not found")
	ErrDriverNotFound   = NewError(ErrCodeNotFound, "driver not found")
	ErrUnknownRole      = NewError(ErrCodeInvalid, "unknown role")
	ErrInvalidPayload   = NewError(ErrCodeInvalid, "invalid payload")
	ErrStoreUnavailable = NewError(ErrCodeInternal, "datastore unavailable")
)

// IsDomainError helps checking error codes.
func IsDomainError(err error, code ErrorCode) bool {
	var dErr *Error
	if errors.As(err, &dErr) {
		return dErr.Code == code
	}
	return false
}
