// Package driver defines the capability contract every backend adapter
// must satisfy. Adapters wrap a live connection to one database engine
// and execute statements handed to them; they never generate SQL text
// themselves — that responsibility belongs to the statement package.
package driver

import (
	"context"
	"database/sql"
)

// Adapter is the contract implemented by each supported engine.
//
// An Adapter owns a single logical connection and is not guaranteed safe
// for concurrent use by multiple callers. Callers requiring concurrency
// should use one Adapter per worker or serialize access externally.
type Adapter interface {
	// Connect establishes the database connection eagerly. Adapters also
	// connect lazily on first use, so calling Connect is optional.
	Connect(ctx context.Context) error

	// Close closes the database connection.
	Close() error

	// Exec executes a statement that does not return rows and reports the
	// affected row count. The statement text must already be in the
	// adapter's native placeholder syntax.
	Exec(ctx context.Context, query string, args ...any) (int64, error)

	// Query executes a statement that returns rows.
	Query(ctx context.Context, query string, args ...any) (*sql.Rows, error)

	// Begin starts a transaction. The adapter passes transaction semantics
	// through to the engine; it never auto-commits on its own.
	Begin(ctx context.Context) (Tx, error)

	// Ping checks that the connection is usable.
	Ping(ctx context.Context) error

	// Dialect reports the adapter's SQL dialect.
	Dialect() Dialect
}

// Tx is a transaction started through an Adapter.
type Tx interface {
	Commit() error
	Rollback() error
	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}
