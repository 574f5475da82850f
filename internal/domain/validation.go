package domain

import (
	"fmt"
	"strings"
)

// Machine-readable violation codes surfaced to callers in validation
// error responses.
const (
	CodeTextTooShort  = "TEXT_TOO_SHORT"
	CodeTextTooLong   = "TEXT_TOO_LONG"
	CodeNameRequired  = "NAME_REQUIRED"
	CodeNameTooLong   = "NAME_TOO_LONG"
	CodeFrontRequired = "FRONT_REQUIRED"
	CodeFrontTooLong  = "FRONT_TOO_LONG"
	CodeBackRequired  = "BACK_REQUIRED"
	CodeBackTooLong   = "BACK_TOO_LONG"
)

// FieldViolation describes a single validation failure on a named field.
type FieldViolation struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationError carries a field-keyed list of violations. It wraps
// ErrValidation so callers can detect it with errors.Is.
type ValidationError struct {
	Violations []FieldViolation
}

// NewValidationError creates a ValidationError with a single violation.
func NewValidationError(field, code, message string) *ValidationError {
	return &ValidationError{
		Violations: []FieldViolation{{Field: field, Code: code, Message: message}},
	}
}

// Add appends another violation and returns the error for chaining.
func (e *ValidationError) Add(field, code, message string) *ValidationError {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Code: code, Message: message})
	return e
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return ErrValidation.Error()
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Code))
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

// Unwrap makes errors.Is(err, ErrValidation) succeed.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Fields returns the violations keyed by field name, the shape API
// responses expose to clients.
func (e *ValidationError) Fields() map[string][]string {
	fields := make(map[string][]string, len(e.Violations))
	for _, v := range e.Violations {
		fields[v.Field] = append(fields[v.Field], v.Code)
	}
	return fields
}
