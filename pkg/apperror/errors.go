package apperror

import (
	"errors"
)

// Kind classifies an application error
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindPrecondition
	KindInsufficientPayment
	KindOperationFailed
	KindInvalidInput
)

func (k Kind) String() string {
	names := [...]string{"Internal", "NotFound", "Precondition", "InsufficientPayment", "OperationFailed", "InvalidInput"}
	if int(k) < 0 || int(k) >= len(names) {
		return "Internal"
	}
	return names[k]
}

// AppError represents an application error with a kind and an optional cause
type AppError struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an AppError of the same kind.
// Errors match the common sentinels below regardless of message.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Common errors
var (
	ErrNotFound            = &AppError{Kind: KindNotFound, Message: "Resource not found"}
	ErrPrecondition        = &AppError{Kind: KindPrecondition, Message: "Precondition failed"}
	ErrInsufficientPayment = &AppError{Kind: KindInsufficientPayment, Message: "Insufficient payment"}
	ErrOperationFailed     = &AppError{Kind: KindOperationFailed, Message: "Operation failed"}
	ErrInvalidInput        = &AppError{Kind: KindInvalidInput, Message: "Invalid input"}
)

// NewPreconditionError creates a precondition error with a custom message
func NewPreconditionError(message string) *AppError {
	return &AppError{
		Kind:    KindPrecondition,
		Message: message,
	}
}

// NewOperationFailedError wraps cause into an operation failure.
// The cause stays reachable through errors.Is / errors.As.
func NewOperationFailedError(message string, cause error) *AppError {
	return &AppError{
		Kind:    KindOperationFailed,
		Message: message,
		Cause:   cause,
	}
}

// NewInvalidInputError creates an invalid input error with a custom message
func NewInvalidInputError(message string) *AppError {
	return &AppError{
		Kind:    KindInvalidInput,
		Message: message,
	}
}

// KindOf returns the kind of the outermost AppError in err's chain. Errors
// that only match a sentinel through their own Is method get that sentinel's
// kind; anything else is KindInternal.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	for _, sentinel := range []*AppError{ErrNotFound, ErrPrecondition, ErrInsufficientPayment, ErrOperationFailed, ErrInvalidInput} {
		if errors.Is(err, sentinel) {
			return sentinel.Kind
		}
	}
	return KindInternal
}
