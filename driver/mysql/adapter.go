// Package mysql implements the backend adapter for MySQL and MariaDB.
package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/campbsb/sqlhelper/driver"
)

// Adapter implements driver.Adapter for MySQL.
type Adapter struct {
	dsn string
	db  *sql.DB
}

// New creates a MySQL adapter for the given DSN. The DSN is passed
// verbatim to the go-sql-driver, e.g.
// "user:password@tcp(127.0.0.1:3306)/dbname". The connection is opened
// lazily on first use.
func New(dsn string) *Adapter {
	return &Adapter{dsn: dsn}
}

// NewFromDB creates an adapter over an already-open connection.
func NewFromDB(db *sql.DB) *Adapter {
	return &Adapter{db: db}
}

// Connect establishes the connection eagerly.
func (a *Adapter) Connect(ctx context.Context) error {
	if a.db != nil {
		return nil
	}
	db, err := sql.Open("mysql", a.dsn)
	if err != nil {
		return fmt.Errorf("%w: failed to open database: %v", driver.ErrConnection, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("%w: failed to ping database: %v", driver.ErrConnection, err)
	}
	a.db = db
	return nil
}

// Close closes the database connection.
func (a *Adapter) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Exec executes a statement and reports the affected row count.
func (a *Adapter) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	if err := a.ensure(ctx); err != nil {
		return 0, err
	}
	res, err := a.db.ExecContext(ctx, query, args...)
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
	rows, err := a.db.QueryContext(ctx, query, args...)
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

// Dialect reports the MySQL dialect.
func (a *Adapter) Dialect() driver.Dialect {
	return driver.MySQL
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

// Tx implements driver.Tx for MySQL.
type Tx struct {
	tx *sql.Tx
}

func (t *Tx) Commit() error   { return t.tx.Commit() }
func (t *Tx) Rollback() error { return t.tx.Rollback() }

func (t *Tx) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := t.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, classify(err)
	}
	return res.RowsAffected()
}

func (t *Tx) Query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(err)
	}
	return rows, nil
}

var (
	_ driver.Adapter = (*Adapter)(nil)
	_ driver.Tx      = (*Tx)(nil)
)
