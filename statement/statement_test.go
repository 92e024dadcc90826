package statement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campbsb/sqlhelper/driver"
	"github.com/campbsb/sqlhelper/statement"
)

func TestBuildInsert(t *testing.T) {
	attrs := statement.Attrs{
		{Column: "Id", Value: 1},
		{Column: "Col1", Value: "a"},
		{Column: "Col2", Value: "b"},
	}

	sql, binds, err := statement.BuildInsert(driver.MySQL, "TestTab", attrs)
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO `TestTab` (`Id`, `Col1`, `Col2`) VALUES (?, ?, ?)", sql)
	assert.Equal(t, []any{1, "a", "b"}, binds)
}

func TestBuildInsert_BindLengthMatchesColumns(t *testing.T) {
	tests := []struct {
		name  string
		attrs statement.Attrs
	}{
		{
			name:  "single column",
			attrs: statement.Attrs{{Column: "Id", Value: 1}},
		},
		{
			name: "mixed scalar types",
			attrs: statement.Attrs{
				{Column: "A", Value: "text"},
				{Column: "B", Value: 42},
				{Column: "C", Value: 3.14},
				{Column: "D", Value: true},
				{Column: "E", Value: nil},
				{Column: "F", Value: []byte{0x01}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, binds, err := statement.BuildInsert(driver.SQLite, "T", tt.attrs)
			require.NoError(t, err)
			assert.Len(t, binds, len(tt.attrs))
			assert.Equal(t, tt.attrs.Values(), binds)
		})
	}
}

func TestBuildInsert_EmptyAttrs(t *testing.T) {
	_, _, err := statement.BuildInsert(driver.MySQL, "TestTab", nil)
	assert.ErrorIs(t, err, statement.ErrEmptyAttributes)
}

func TestBuildInsert_PostgresQuoting(t *testing.T) {
	attrs := statement.Attrs{{Column: "Id", Value: 1}}

	sql, _, err := statement.BuildInsert(driver.Postgres, "TestTab", attrs)
	require.NoError(t, err)
	assert.Equal(t, `INSERT INTO "TestTab" ("Id") VALUES (?)`, sql)
}

func TestBuildUpdate(t *testing.T) {
	attrs := statement.Attrs{
		{Column: "Col1", Value: "c"},
		{Column: "Col2", Value: "d"},
	}
	filters := statement.Attrs{
		{Column: "Id", Value: 1},
		{Column: "Region", Value: "eu"},
	}

	sql, binds, err := statement.BuildUpdate(driver.MySQL, "TestTab", attrs, filters)
	require.NoError(t, err)

	assert.Equal(t, "UPDATE `TestTab` SET `Col1` = ?, `Col2` = ? WHERE `Id` = ? AND `Region` = ?", sql)
	assert.Equal(t, []any{"c", "d", 1, "eu"}, binds)
}

func TestBuildUpdate_BindOrder(t *testing.T) {
	// Attribute values first, filter values after, each in mapping order.
	attrs := statement.Attrs{
		{Column: "A", Value: 1},
		{Column: "B", Value: 2},
		{Column: "C", Value: 3},
	}
	filters := statement.Attrs{
		{Column: "X", Value: 4},
		{Column: "Y", Value: 5},
	}

	_, binds, err := statement.BuildUpdate(driver.SQLite, "T", attrs, filters)
	require.NoError(t, err)
	assert.Len(t, binds, len(attrs)+len(filters))
	assert.Equal(t, []any{1, 2, 3, 4, 5}, binds)
}

func TestBuildUpdate_NoFilters(t *testing.T) {
	attrs := statement.Attrs{{Column: "Col1", Value: "c"}}

	sql, binds, err := statement.BuildUpdate(driver.MySQL, "TestTab", attrs, nil)
	require.NoError(t, err)

	assert.Equal(t, "UPDATE `TestTab` SET `Col1` = ?", sql)
	assert.Equal(t, []any{"c"}, binds)
}

func TestBuildUpdate_EmptyAttrs(t *testing.T) {
	filters := statement.Attrs{{Column: "Id", Value: 1}}

	_, _, err := statement.BuildUpdate(driver.MySQL, "TestTab", nil, filters)
	assert.ErrorIs(t, err, statement.ErrEmptyAttributes)
}

func TestAttrsFromMap(t *testing.T) {
	attrs := statement.AttrsFromMap(map[string]any{
		"Zebra": 1,
		"Alpha": 2,
		"Mike":  3,
	})

	assert.Equal(t, []string{"Alpha", "Mike", "Zebra"}, attrs.Columns())
	assert.Equal(t, []any{2, 3, 1}, attrs.Values())
}
