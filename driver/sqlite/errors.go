package sqlite

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/campbsb/sqlhelper/driver"
)

// classify maps a SQLite driver error into the shared taxonomy. The
// native error is flattened to text so callers only ever branch on the
// sentinel.
func classify(err error) error {
	var se sqlite3.Error
	if !errors.As(err, &se) {
		return err
	}
	switch se.Code {
	case sqlite3.ErrConstraint:
		return fmt.Errorf("%w: %v", driver.ErrConstraint, err)
	case sqlite3.ErrError:
		// Generic SQL error: bad syntax, unknown table or column.
		return fmt.Errorf("%w: %v", driver.ErrSyntax, err)
	case sqlite3.ErrCantOpen, sqlite3.ErrNotADB, sqlite3.ErrIoErr:
		return fmt.Errorf("%w: %v", driver.ErrConnection, err)
	}
	return err
}
