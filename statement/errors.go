package statement

import "errors"

var (
	// ErrEmptyAttributes is returned when a write is requested with no
	// attributes. Rejected before anything reaches the backend.
	ErrEmptyAttributes = errors.New("empty attribute set")

	// ErrBindCountMismatch is returned when the number of placeholder
	// markers in a statement does not match the number of bind values.
	// This indicates a programming error, not a recoverable condition.
	ErrBindCountMismatch = errors.New("bind count mismatch")
)
