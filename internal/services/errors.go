package services

import (
	"errors"
	"fmt"
)

// ErrNotFound signals an absent record. Callers surface it as an
// empty/absent result, never as a fatal error.
var ErrNotFound = errors.New("record not found")

// ValidationError is a rejected operation carrying the specific offending
// reference or rule. The store is left unchanged when one is returned.
type ValidationError struct {
	Reference string
	Message   string
}

func (e *ValidationError) Error() string {
	if e.Reference != "" {
		return fmt.Sprintf("%s: %s", e.Reference, e.Message)
	}
	return e.Message
}

func newValidationError(reference, format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		Reference: reference,
		Message:   fmt.Sprintf(format, args...),
	}
}

// IsValidation reports whether err is a validation failure, recoverable
// by the caller fixing the input.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
