package blog

import (
	"errors"
	"fmt"
)

// ErrNotFound signals that the addressed post does not exist. It is distinct
// from storage faults, which are returned as wrapped driver errors.
var ErrNotFound = errors.New("post not found")

// ValidationError reports a missing or malformed field on a write request.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// AsValidationError reports whether err is a ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
