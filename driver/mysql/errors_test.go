package mysql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"

	"github.com/campbsb/sqlhelper/driver"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "duplicate entry",
			err:  &mysql.MySQLError{Number: 1062, Message: "Duplicate entry '1' for key 'PRIMARY'"},
			want: driver.ErrConstraint,
		},
		{
			name: "foreign key violation",
			err:  &mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"},
			want: driver.ErrConstraint,
		},
		{
			name: "null violation",
			err:  &mysql.MySQLError{Number: 1048, Message: "Column 'Id' cannot be null"},
			want: driver.ErrConstraint,
		},
		{
			name: "parse error",
			err:  &mysql.MySQLError{Number: 1064, Message: "You have an error in your SQL syntax"},
			want: driver.ErrSyntax,
		},
		{
			name: "unknown column",
			err:  &mysql.MySQLError{Number: 1054, Message: "Unknown column 'Nope'"},
			want: driver.ErrSyntax,
		},
		{
			name: "no such table",
			err:  &mysql.MySQLError{Number: 1146, Message: "Table 'db.Missing' doesn't exist"},
			want: driver.ErrSyntax,
		},
		{
			name: "invalid connection",
			err:  mysql.ErrInvalidConn,
			want: driver.ErrConnection,
		},
		{
			name: "wrapped server error",
			err:  fmt.Errorf("exec: %w", &mysql.MySQLError{Number: 1062}),
			want: driver.ErrConstraint,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, classify(tt.err), tt.want)
		})
	}
}

func TestClassify_Passthrough(t *testing.T) {
	// Unclassified server errors and unrelated errors come back as-is.
	unknown := &mysql.MySQLError{Number: 1205, Message: "Lock wait timeout exceeded"}
	assert.Equal(t, error(unknown), classify(unknown))

	plain := errors.New("something else")
	assert.Equal(t, plain, classify(plain))
}

func TestClassify_HidesNativeType(t *testing.T) {
	got := classify(&mysql.MySQLError{Number: 1062, Message: "dup"})

	var me *mysql.MySQLError
	assert.False(t, errors.As(got, &me))
}
