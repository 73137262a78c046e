package host

import "errors"

// Errors returned by simulator setup and parsing helpers.
// Queries never return errors; they return sentinels instead.
var (
	// ErrUnknownView indicates a view name could not be parsed.
	ErrUnknownView = errors.New("unknown view")
)
