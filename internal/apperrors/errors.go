package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found
// (or is soft-deleted, which callers treat the same way).
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates a cross-company access attempt or a missing role.
var ErrForbidden = errors.New("forbidden")

// ErrUnbalanced indicates that a journal entry's debit and credit totals do
// not match, or are not both positive. Every mutation path of the posting
// engine surfaces this error when the invariant would break.
var ErrUnbalanced = errors.New("entry must be balanced (total debits = total credits > 0)")

// ErrInactive indicates an operation targeting an INACTIVE company or account.
var ErrInactive = errors.New("resource is inactive")

// ErrInternal indicates an unexpected persistence or infrastructure failure.
var ErrInternal = errors.New("internal error")

// AppError wraps a lower-level error with an HTTP-ish code and a message.
// Repositories use it for unexpected database failures so handlers can
// distinguish them from the sentinel errors above.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInternal
}

// NewAppError creates a new AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that satisfies errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
