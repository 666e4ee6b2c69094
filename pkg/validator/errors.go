package validator

import "errors"

var (
	// ErrValidationFailed is matched by every non-empty ValidationErrors via errors.Is.
	ErrValidationFailed = errors.New("validation failed")
)
