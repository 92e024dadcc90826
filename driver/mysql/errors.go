package mysql

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"github.com/campbsb/sqlhelper/driver"
)

// MySQL server error numbers, see
// https://dev.mysql.com/doc/mysql-errors/8.0/en/server-error-reference.html
var constraintErrNums = map[uint16]bool{
	1022: true, // ER_DUP_KEY
	1048: true, // ER_BAD_NULL_ERROR
	1062: true, // ER_DUP_ENTRY
	1169: true, // ER_DUP_UNIQUE
	1216: true, // ER_NO_REFERENCED_ROW
	1217: true, // ER_ROW_IS_REFERENCED
	1451: true, // ER_ROW_IS_REFERENCED_2
	1452: true, // ER_NO_REFERENCED_ROW_2
	1586: true, // ER_DUP_ENTRY_WITH_KEY_NAME
	3819: true, // ER_CHECK_CONSTRAINT_VIOLATED
}

var syntaxErrNums = map[uint16]bool{
	1054: true, // ER_BAD_FIELD_ERROR
	1064: true, // ER_PARSE_ERROR
	1146: true, // ER_NO_SUCH_TABLE
	1149: true, // ER_SYNTAX_ERROR
}

// classify maps a MySQL driver error into the shared taxonomy. The
// native error is flattened to text so callers only ever branch on the
// sentinel.
func classify(err error) error {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		switch {
		case constraintErrNums[me.Number]:
			return fmt.Errorf("%w: %v", driver.ErrConstraint, err)
		case syntaxErrNums[me.Number]:
			return fmt.Errorf("%w: %v", driver.ErrSyntax, err)
		}
		return err
	}
	if errors.Is(err, mysql.ErrInvalidConn) {
		return fmt.Errorf("%w: %v", driver.ErrConnection, err)
	}
	return err
}
