package domain

import "fmt"

// ParameterError reports a caller-supplied parameter that cannot produce a
// meaningful result. The engine fails fast with one of these rather than
// computing nonsense from out-of-range input.
type ParameterError struct {
	Field  string
	Reason string
}

// NewParameterError creates a ParameterError for the named field.
func NewParameterError(field, reason string) *ParameterError {
	return &ParameterError{Field: field, Reason: reason}
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Field, e.Reason)
}
