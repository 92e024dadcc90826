// Package sqlhelper provides database-engine-independent helpers for
// common SQL access patterns: single-value, single-row and multi-row
// selects plus parameterized insert and update. A Helper is bound to one
// backend adapter, so application code and its tests can target either a
// production engine or an in-memory SQLite database interchangeably.
//
// SQL text uses one "?" marker per bind position regardless of engine;
// the helper translates markers to the adapter's native syntax before
// execution.
//
// Example:
//
//	db := sqlhelper.New(sqlite.NewMemory())
//	defer db.Close()
//
//	_, err := db.Exec(ctx, "CREATE TABLE TestTab (Id INTEGER, Col1 TEXT)")
//	_, err = db.Insert(ctx, "TestTab", statement.Attrs{
//		{Column: "Id", Value: 1},
//		{Column: "Col1", Value: "a"},
//	})
//	col1, err := db.Value(ctx, "SELECT Col1 FROM TestTab WHERE Id=?", 1)
package sqlhelper

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/campbsb/sqlhelper/driver"
	"github.com/campbsb/sqlhelper/internal/debug"
	"github.com/campbsb/sqlhelper/statement"
)

// Helper exposes the query and mutation API over one backend adapter.
//
// A Helper is long-lived: construct it once and reuse it for the
// lifetime of the logical connection. It is not safe for concurrent use;
// use one Helper per worker or synchronize externally.
type Helper struct {
	adapter driver.Adapter

	lastSQL  string
	lastBind []any
}

// New creates a Helper bound to the given adapter.
func New(adapter driver.Adapter) *Helper {
	return &Helper{adapter: adapter}
}

// Adapter returns the backend adapter the helper is bound to.
func (h *Helper) Adapter() driver.Adapter {
	return h.adapter
}

// Close closes the underlying connection.
func (h *Helper) Close() error {
	return h.adapter.Close()
}

// LastSQL returns the last statement text and bind values, for logging
// or debugging.
func (h *Helper) LastSQL() string {
	return fmt.Sprintf("SQL: %s, Bind: %v", h.lastSQL, h.lastBind)
}

// Value executes a query and returns the first column of the first row.
// Extra columns and extra rows are silently dropped: the first column of
// the first row wins. Returns ErrNoRows on an empty result set.
func (h *Helper) Value(ctx context.Context, query string, bind ...any) (any, error) {
	row, err := h.Row(ctx, query, bind...)
	if err != nil {
		return nil, err
	}
	return row[0], nil
}

// Row executes a query and returns the first row as a positional tuple
// matching the projection order. If more than one row matches, only the
// first is returned; callers needing to detect that must not rely on
// this method. Returns ErrNoRows on an empty result set.
func (h *Helper) Row(ctx context.Context, query string, bind ...any) ([]any, error) {
	rows, err := h.query(ctx, query, bind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w for %s", ErrNoRows, h.LastSQL())
	}
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to get columns: %w", err)
	}
	return scanTuple(rows, len(cols))
}

// RowMap executes a query and returns the first row as a mapping from
// column name to value. Same first-row-wins semantics as Row. Returns
// ErrNoRows on an empty result set.
func (h *Helper) RowMap(ctx context.Context, query string, bind ...any) (map[string]any, error) {
	all, err := h.Rows(ctx, query, bind...)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("%w for %s", ErrNoRows, h.LastSQL())
	}
	return all[0], nil
}

// Rows executes a query and returns every row as a mapping from column
// name to value. An empty result set yields an empty slice, not an
// error. Each call recomputes the result; there is no shared cursor.
func (h *Helper) Rows(ctx context.Context, query string, bind ...any) ([]map[string]any, error) {
	rows, err := h.query(ctx, query, bind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to get columns: %w", err)
	}

	results := []map[string]any{}
	for rows.Next() {
		tuple, err := scanTuple(rows, len(cols))
		if err != nil {
			return nil, err
		}
		result := make(map[string]any, len(cols))
		for i, col := range cols {
			result[col] = tuple[i]
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return results, nil
}

// TRows executes a query and returns every row as a positional tuple.
func (h *Helper) TRows(ctx context.Context, query string, bind ...any) ([][]any, error) {
	rows, err := h.query(ctx, query, bind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to get columns: %w", err)
	}

	results := [][]any{}
	for rows.Next() {
		tuple, err := scanTuple(rows, len(cols))
		if err != nil {
			return nil, err
		}
		results = append(results, tuple)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return results, nil
}

// Column executes a query and returns the first field of each row.
func (h *Helper) Column(ctx context.Context, query string, bind ...any) ([]any, error) {
	tuples, err := h.TRows(ctx, query, bind...)
	if err != nil {
		return nil, err
	}
	column := make([]any, len(tuples))
	for i, tuple := range tuples {
		column[i] = tuple[0]
	}
	return column, nil
}

// Insert inserts one row of data into a table and returns the affected
// row count. Expected to be 1; a different count is surfaced as-is, not
// treated as an error at this layer.
func (h *Helper) Insert(ctx context.Context, table string, attrs statement.Attrs) (int64, error) {
	query, binds, err := statement.BuildInsert(h.adapter.Dialect(), table, attrs)
	if err != nil {
		return 0, err
	}
	return h.exec(ctx, query, binds)
}

// Update updates the rows matched by the filter mapping and returns the
// affected row count; 0 means no rows matched, not an error. An empty
// filter mapping is rejected with ErrNoFilter — updating every row
// requires the explicit UpdateAll.
func (h *Helper) Update(ctx context.Context, table string, attrs, filters statement.Attrs) (int64, error) {
	if len(filters) == 0 {
		return 0, fmt.Errorf("update %s: %w", table, ErrNoFilter)
	}
	query, binds, err := statement.BuildUpdate(h.adapter.Dialect(), table, attrs, filters)
	if err != nil {
		return 0, err
	}
	return h.exec(ctx, query, binds)
}

// UpdateAll updates every row of the table. The separate method is the
// explicit opt-in for an unconditional update.
func (h *Helper) UpdateAll(ctx context.Context, table string, attrs statement.Attrs) (int64, error) {
	query, binds, err := statement.BuildUpdate(h.adapter.Dialect(), table, attrs, nil)
	if err != nil {
		return 0, err
	}
	return h.exec(ctx, query, binds)
}

// Exec executes a raw statement that returns no rows, such as DDL or a
// delete, and returns the affected row count.
func (h *Helper) Exec(ctx context.Context, query string, bind ...any) (int64, error) {
	return h.exec(ctx, query, bind)
}

func (h *Helper) query(ctx context.Context, query string, binds []any) (*sql.Rows, error) {
	native, args, err := statement.Translate(h.adapter.Dialect(), query, binds)
	if err != nil {
		return nil, err
	}
	h.lastSQL, h.lastBind = native, binds
	debug.Debug("executing query", "sql", native, "bind", binds)
	return h.adapter.Query(ctx, native, args...)
}

func (h *Helper) exec(ctx context.Context, query string, binds []any) (int64, error) {
	native, args, err := statement.Translate(h.adapter.Dialect(), query, binds)
	if err != nil {
		return 0, err
	}
	h.lastSQL, h.lastBind = native, binds
	debug.Debug("executing statement", "sql", native, "bind", binds)
	return h.adapter.Exec(ctx, native, args...)
}

// scanTuple scans the current row into a positional tuple, converting
// []byte column values to string.
func scanTuple(rows *sql.Rows, n int) ([]any, error) {
	values := make([]any, n)
	ptrs := make([]any, n)
	for i := range values {
		ptrs[i] = &values[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return nil, fmt.Errorf("failed to scan row: %w", err)
	}
	for i, v := range values {
		if b, ok := v.([]byte); ok {
			values[i] = string(b)
		}
	}
	return values, nil
}
