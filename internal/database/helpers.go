package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
)

// ErrNotFound is returned when an operation addresses a record that does
// not exist (for example an update against a missing project id).
var ErrNotFound = errors.New("record not found")

// querier is the subset of *sql.DB / *sql.Tx the repositories need.
// Repositories normally run against the shared connection; services that
// need a whole sequence to be atomic rebind them onto a transaction with
// WithTx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			log.Printf("failed to rollback transaction: %v", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
