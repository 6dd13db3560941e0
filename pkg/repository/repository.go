// Package repository provides small generic helpers over database/sql used by
// SQL-backed stores: row scanning, transactions, and error mapping.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// pgUniqueViolation is the SQLSTATE for unique constraint violations.
const pgUniqueViolation = "23505"

// Scanner is satisfied by *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// Querier is satisfied by *sql.DB and *sql.Tx.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// QueryOne runs q and scans the single resulting row.
// It returns sql.ErrNoRows when nothing matches.
func QueryOne[T any](ctx context.Context, db Querier, q string, args []any, scan func(Scanner) (T, error)) (T, error) {
	return scan(db.QueryRowContext(ctx, q, args...))
}

// QueryMany runs q and scans every resulting row. The result is never nil.
func QueryMany[T any](ctx context.Context, db Querier, q string, args []any, scan func(Scanner) (T, error)) ([]T, error) {
	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return items, nil
}

// WithTx runs fn inside a transaction, committing on success and rolling back on error.
func WithTx[T any](ctx context.Context, db *sql.DB, fn func(*sql.Tx) (T, error)) (T, error) {
	var zero T

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return zero, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := fn(tx)
	if err != nil {
		return zero, err
	}

	if err := tx.Commit(); err != nil {
		return zero, fmt.Errorf("commit transaction: %w", err)
	}
	return result, nil
}

// ExecExpectOne executes q and returns sql.ErrNoRows unless exactly one row was affected.
func ExecExpectOne(ctx context.Context, db Querier, q string, args ...any) error {
	result, err := db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n != 1 {
		return sql.ErrNoRows
	}
	return nil
}

// MapError translates driver errors into domain errors.
// sql.ErrNoRows maps to notFound and unique violations map to duplicate;
// anything else is returned unchanged. A nil duplicate leaves unique
// violations as they are.
func MapError(err, notFound, duplicate error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}

	var pgErr *pgconn.PgError
	if duplicate != nil && errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return duplicate
	}
	return err
}
