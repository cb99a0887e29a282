package domain

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidLoanInput is returned when a LoanInput violates the calculator's preconditions.
	ErrInvalidLoanInput = errors.New("invalid loan input")
)

// FieldError describes a single invalid input field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every invalid field of a LoanInput.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Field
	}
	return ErrInvalidLoanInput.Error() + ": " + strings.Join(names, ", ")
}

// Unwrap lets errors.Is match ErrInvalidLoanInput.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidLoanInput
}
