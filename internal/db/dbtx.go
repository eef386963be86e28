package db

import (
	"context"
	"database/sql"
)

// DBTX is what the entry and catalog repositories run their statements on:
// either the shared *sql.DB or the *sql.Tx of a finalize.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
