package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrValidationFailed indicates a setting holds an unusable value.
	ErrValidationFailed = errors.New("validation failed")

	// ErrDecode indicates the merged settings do not fit the Config layout.
	ErrDecode = errors.New("config decode failed")
)

// ValidationError describes a single invalid setting.
type ValidationError struct {
	// Path is the dotted setting path, e.g. "layout.textWidth".
	Path string
	// Value is the offending value.
	Value any
	// Message describes the problem.
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s (%v): %s", e.Path, e.Value, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
