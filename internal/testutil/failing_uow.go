package testutil

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"sync/atomic"

	"github.com/mariaiw8/apontamentos/internal/db"
)

// ErrItemWrite is the error a FailingItemWriteUoW injects.
var ErrItemWrite = errors.New("injected entry item write failure")

// FailingItemWriteUoW runs transactions like the real unit of work but fails
// the Nth write to entry_items, counted from 1 across the whole transaction.
// Entry writes and reads pass through, so a test can break the second
// rationed share of a batch and check that nothing of it was stored.
type FailingItemWriteUoW struct {
	uow    db.UnitOfWork
	failOn int32
}

func NewFailingItemWriteUoW(database *sql.DB, failOn int) *FailingItemWriteUoW {
	return &FailingItemWriteUoW{uow: db.NewSQLiteUnitOfWork(database), failOn: int32(failOn)}
}

func (u *FailingItemWriteUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return u.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &failingItemWrites{DBTX: tx, failOn: u.failOn})
	})
}

type failingItemWrites struct {
	db.DBTX
	writes atomic.Int32
	failOn int32
}

func (f *failingItemWrites) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if strings.Contains(query, "entry_items") && f.writes.Add(1) == f.failOn {
		return nil, ErrItemWrite
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
