package driver

import "errors"

// Error taxonomy shared by every adapter. Backend-native errors are
// classified into these at the adapter boundary so callers never depend
// on engine-specific error types. Match with errors.Is.
var (
	// ErrConnection means the session is unusable. Not retried at this
	// layer; retry policy belongs to the caller.
	ErrConnection = errors.New("connection error")

	// ErrSyntax means the engine rejected the statement. Always a caller
	// or builder bug, never retried.
	ErrSyntax = errors.New("syntax error")

	// ErrConstraint means a uniqueness, foreign-key or check rule was
	// broken. Surfaced distinctly so callers can branch on expected
	// conflicts.
	ErrConstraint = errors.New("constraint violation")
)
