package domain

import (
	"errors"
	"strings"
)

var (
	// ErrRequired indicates a required field was left blank.
	ErrRequired = errors.New("required field missing")

	// ErrInvalidTimelineType indicates a timeline type outside
	// milestone/task/review/audit.
	ErrInvalidTimelineType = errors.New("invalid timeline type")
)

// FieldError reports which field failed validation.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error { return e.Err }

// Field is a named form value checked by RequireFields.
type Field struct {
	Name  string
	Value string
}

// RequireFields returns a FieldError for the first blank field, in argument
// order. Whitespace-only values count as blank.
func RequireFields(fields ...Field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			return &FieldError{Field: f.Name, Err: ErrRequired}
		}
	}
	return nil
}
