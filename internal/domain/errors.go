package domain

import (
	"errors"
	"fmt"
)

// Recoverable error kinds surfaced to the caller. Wrap with %w so callers can
// classify with errors.Is.
var (
	ErrNotFound      = errors.New("not found")
	ErrDuplicateName = errors.New("name already exists")
	ErrStaleWrite    = errors.New("state changed by a concurrent evaluation")
)

// ValidationError reports a rejected input field verbatim so the caller can
// surface it for correction.
type ValidationError struct {
	Field string
	Value string
	Rule  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Rule)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
