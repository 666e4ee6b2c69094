package logger

import "errors"

var (
	// ErrInvalidFormat is returned for output formats other than text and json.
	ErrInvalidFormat = errors.New("invalid log format")

	// ErrInvalidLevel is returned for unknown level names.
	ErrInvalidLevel = errors.New("invalid log level")
)
