// Package sqlite implements the backend adapter for SQLite, including
// the in-memory database used for unit testing code written against a
// production engine.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/campbsb/sqlhelper/driver"
)

// Memory is the in-memory database designator.
const Memory = ":memory:"

// Adapter implements driver.Adapter for SQLite.
type Adapter struct {
	path string
	db   *sql.DB
}

// New creates a SQLite adapter for the given database file path, or
// Memory for an in-memory database. The connection is opened lazily on
// first use.
func New(path string) *Adapter {
	return &Adapter{path: path}
}

// NewMemory creates an adapter backed by an in-memory database. The
// database exists only for the lifetime of the connection.
func NewMemory() *Adapter {
	return New(Memory)
}

// Connect establishes the connection eagerly.
func (a *Adapter) Connect(ctx context.Context) error {
	if a.db != nil {
		return nil
	}
	db, err := sql.Open("sqlite3", a.path)
	if err != nil {
		return fmt.Errorf("%w: failed to open database: %v", driver.ErrConnection, err)
	}

	// Pin the pool to one connection. An in-memory database lives and
	// dies with its connection, and SQLite writes want a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("%w: failed to ping database: %v", driver.ErrConnection, err)
	}

	// Foreign keys are off by default in SQLite.
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return fmt.Errorf("%w: failed to enable foreign keys: %v", driver.ErrConnection, err)
	}

	a.db = db
	return nil
}

// Close closes the database connection. For an in-memory database this
// discards all data.
func (a *Adapter) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Exec executes a statement and reports the affected row count. Note
// that SQLite counts changed rows, which can differ from other engines
// for updates that set a column to its existing value.
func (a *Adapter) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	if err := a.ensure(ctx); err != nil {
		return 0, err
	}
	res, err := a.db.ExecContext(ctx, rewrite(query), args...)
	if err != nil {
		return 0, classify(err)
	}
	return res.RowsAffected()
}

// Query executes a query that returns rows.
func (a *Adapter) Query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	if err := a.ensure(ctx); err != nil {
		return nil, err
	}
	rows, err := a.db.QueryContext(ctx, rewrite(query), args...)
	if err != nil {
		return nil, classify(err)
	}
	return rows, nil
}

// Begin starts a transaction.
func (a *Adapter) Begin(ctx context.Context) (driver.Tx, error) {
	if err := a.ensure(ctx); err != nil {
		return nil, err
	}
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, classify(err)
	}
	return &Tx{tx: tx}, nil
}

// Ping checks that the connection is usable.
func (a *Adapter) Ping(ctx context.Context) error {
	if err := a.ensure(ctx); err != nil {
		return err
	}
	if err := a.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", driver.ErrConnection, err)
	}
	return nil
}

// Dialect reports the SQLite dialect.
func (a *Adapter) Dialect() driver.Dialect {
	return driver.SQLite
}

// DB returns the underlying connection, or nil before first use.
func (a *Adapter) DB() *sql.DB {
	return a.db
}

func (a *Adapter) ensure(ctx context.Context) error {
	if a.db == nil {
		return a.Connect(ctx)
	}
	return nil
}

var unixTimestampRe = regexp.MustCompile(`(?i)unix_timestamp\(\)`)

// rewrite converts a few common MySQL-isms so statements written for the
// production engine run unchanged against SQLite. Currently handled:
// UNIX_TIMESTAMP(), which SQLite lacks.
func rewrite(query string) string {
	if !unixTimestampRe.MatchString(query) {
		return query
	}
	now := strconv.FormatInt(time.Now().Unix(), 10)
	return unixTimestampRe.ReplaceAllString(query, now)
}

// Tx implements driver.Tx for SQLite.
type Tx struct {
	tx *sql.Tx
}

func (t *Tx) Commit() error   { return t.tx.Commit() }
func (t *Tx) Rollback() error { return t.tx.Rollback() }

func (t *Tx) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := t.tx.ExecContext(ctx, rewrite(query), args...)
	if err != nil {
		return 0, classify(err)
	}
	return res.RowsAffected()
}

func (t *Tx) Query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	rows, err := t.tx.QueryContext(ctx, rewrite(query), args...)
	if err != nil {
		return nil, classify(err)
	}
	return rows, nil
}

var (
	_ driver.Adapter = (*Adapter)(nil)
	_ driver.Tx      = (*Tx)(nil)
)
