package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/campbsb/sqlhelper/driver"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		code pq.ErrorCode
		want error
	}{
		{name: "unique violation", code: "23505", want: driver.ErrConstraint},
		{name: "foreign key violation", code: "23503", want: driver.ErrConstraint},
		{name: "not null violation", code: "23502", want: driver.ErrConstraint},
		{name: "check violation", code: "23514", want: driver.ErrConstraint},
		{name: "syntax error", code: "42601", want: driver.ErrSyntax},
		{name: "undefined table", code: "42P01", want: driver.ErrSyntax},
		{name: "undefined column", code: "42703", want: driver.ErrSyntax},
		{name: "connection failure", code: "08006", want: driver.ErrConnection},
		{name: "invalid password", code: "28P01", want: driver.ErrConnection},
		{name: "invalid catalog", code: "3D000", want: driver.ErrConnection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify(&pq.Error{Code: tt.code})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestClassify_Wrapped(t *testing.T) {
	err := fmt.Errorf("exec: %w", &pq.Error{Code: "23505"})
	assert.ErrorIs(t, classify(err), driver.ErrConstraint)
}

func TestClassify_Passthrough(t *testing.T) {
	// Unclassified SQLSTATE classes and unrelated errors come back as-is.
	serialization := &pq.Error{Code: "40001"}
	assert.Equal(t, error(serialization), classify(serialization))

	plain := errors.New("something else")
	assert.Equal(t, plain, classify(plain))
}

func TestClassify_HidesNativeType(t *testing.T) {
	got := classify(&pq.Error{Code: "23505"})

	var pe *pq.Error
	assert.False(t, errors.As(got, &pe))
}
