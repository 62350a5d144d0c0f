// Package store is the SQLite adapter behind the workspace operations. A
// single SQLiteStore implements every record capability declared by the
// project, attributetype and model packages.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/johnwards/temple/internal/domain"
)

// querier runs statements on the database or on an open transaction.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SQLiteStore implements the workspace repositories backed by SQLite.
type SQLiteStore struct {
	db *sql.DB
	q  querier
	tx *sql.Tx
}

// New creates a SQLiteStore on a migrated database.
func New(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db, q: db}
}

// WithTx runs fn against a store whose statements all belong to one
// transaction, committed when fn returns nil and rolled back otherwise.
// Inside a transaction WithTx joins it.
func (s *SQLiteStore) WithTx(ctx context.Context, fn func(tx *SQLiteStore) error) error {
	if s.tx != nil {
		return fn(s)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Internal(err, "begin transaction")
	}
	if err := fn(&SQLiteStore{db: s.db, q: tx, tx: tx}); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return domain.Internal(err, "commit transaction")
	}
	return nil
}

// DB returns the underlying database handle.
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}

// Ping checks that the database answers.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// notFound maps sql.ErrNoRows to a NotFound error and everything else
// through classify.
func notFound(err error, format string, args ...any) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFound(format, args...)
	}
	return classify(err, format, args...)
}

// classify turns a driver error into a domain error. Constraint failures
// are caller mistakes and become FailedPrecondition; anything else is
// Internal.
func classify(err error, format string, args ...any) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return domain.FailedPrecondition("%s: already exists", fmt.Sprintf(format, args...))
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return domain.FailedPrecondition("%s: still referenced", fmt.Sprintf(format, args...))
	}
	return domain.Internal(err, format, args...)
}

// expectOne reports NotFound when an UPDATE or DELETE touched no row.
func expectOne(res sql.Result, format string, args ...any) error {
	n, err := res.RowsAffected()
	if err != nil {
		return domain.Internal(err, "rows affected")
	}
	if n == 0 {
		return domain.NotFound(format, args...)
	}
	return nil
}
