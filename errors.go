package bookpress

import (
	"errors"
	"fmt"
)

// Error represents a bookpress library error with categorization.
type Error struct {
	// Code is a machine-readable error code
	Code string

	// Message is a human-readable error message
	Message string

	// Err is the underlying error (if any)
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Error codes for bookpress operations.
const (
	// ErrCodeNotFound indicates a referenced book or version is absent.
	ErrCodeNotFound = "NOT_FOUND"

	// ErrCodeFormat indicates submitted content could not be converted to
	// publishable form.
	ErrCodeFormat = "FORMAT_ERROR"

	// ErrCodeValidation indicates validation failed.
	ErrCodeValidation = "VALIDATION_ERROR"

	// ErrCodeConfiguration indicates invalid configuration.
	ErrCodeConfiguration = "CONFIGURATION_ERROR"

	// ErrCodeDatabase indicates a storage operation failed.
	ErrCodeDatabase = "DATABASE_ERROR"
)

// Common errors.
var (
	// ErrNotFound is returned when a book lookup finds no version, or the
	// latest version has been removed from the catalog.
	ErrNotFound = &Error{
		Code:    ErrCodeNotFound,
		Message: "book not found",
	}

	// ErrInvalidConfiguration is returned when service configuration is invalid.
	ErrInvalidConfiguration = &Error{
		Code:    ErrCodeConfiguration,
		Message: "invalid configuration",
	}
)

// NewError creates a new Error with the given code and message.
func NewError(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// NewErrorWithCause creates a new Error wrapping an underlying error.
func NewErrorWithCause(code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     cause,
	}
}

// NewNotFoundError creates a NOT_FOUND error naming the missing book id.
func NewNotFoundError(bookID string) *Error {
	return &Error{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("no book found for id: %s", bookID),
	}
}

// IsNotFound checks if an error indicates a missing book or version.
func IsNotFound(err error) bool {
	var bpErr *Error
	if errors.As(err, &bpErr) {
		return bpErr.Code == ErrCodeNotFound
	}
	return errors.Is(err, ErrNotFound)
}

// IsFormatError checks if an error originated in the formatting step.
func IsFormatError(err error) bool {
	var bpErr *Error
	if errors.As(err, &bpErr) {
		return bpErr.Code == ErrCodeFormat
	}
	return false
}
