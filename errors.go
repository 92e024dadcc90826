package sqlhelper

import "errors"

var (
	// ErrNoRows signals that Value, Row or RowMap found an empty result
	// set. A normal control-flow outcome the caller is expected to handle.
	ErrNoRows = errors.New("no rows found")

	// ErrNoFilter is returned by Update when the filter mapping is empty.
	// Updating every row requires the explicit opt-in UpdateAll; silently
	// omitting the WHERE clause is a correctness hazard.
	ErrNoFilter = errors.New("empty filter set: use UpdateAll for an unconditional update")
)
