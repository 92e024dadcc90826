package postgres

import (
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/campbsb/sqlhelper/driver"
)

// classify maps a lib/pq error into the shared taxonomy using SQLSTATE
// classes. The native error is flattened to text so callers only ever
// branch on the sentinel.
func classify(err error) error {
	var pe *pq.Error
	if !errors.As(err, &pe) {
		return err
	}
	switch pe.Code.Class() {
	case "23": // integrity constraint violation
		return fmt.Errorf("%w: %v", driver.ErrConstraint, err)
	case "42": // syntax error or access rule violation
		return fmt.Errorf("%w: %v", driver.ErrSyntax, err)
	case "08", "28", "3D": // connection exception, authorization, bad catalog
		return fmt.Errorf("%w: %v", driver.ErrConnection, err)
	}
	return err
}
