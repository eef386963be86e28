package repository

import (
	"context"

	"github.com/mariaiw8/apontamentos/internal/domain"
)

// EntryFilter narrows entry listings. Zero values match everything.
type EntryFilter struct {
	Sector          domain.Sector
	InProgressOnly  bool
	FinalizedOnly   bool
	IncludeInactive bool
}

type EntryRepo interface {
	Create(ctx context.Context, e *domain.Entry) error
	GetByID(ctx context.Context, id string) (*domain.Entry, error)
	List(ctx context.Context, f EntryFilter) ([]*domain.Entry, error)
	Update(ctx context.Context, e *domain.Entry) error
	SetStatus(ctx context.Context, id string, status domain.RecordStatus) error
}

type EntryItemRepo interface {
	CreateAll(ctx context.Context, entryID string, items []domain.EntryItem) error
	ListByEntry(ctx context.Context, entryID string) ([]domain.EntryItem, error)
	ListByEntries(ctx context.Context, entryIDs []string) (map[string][]domain.EntryItem, error)
	UpdateRationing(ctx context.Context, items []domain.EntryItem) error
}

type CatalogRepo interface {
	Create(ctx context.Context, c *domain.CatalogEntry) error
	GetByID(ctx context.Context, id string) (*domain.CatalogEntry, error)
	List(ctx context.Context, kind domain.CatalogKind, includeInactive bool) ([]*domain.CatalogEntry, error)
	Update(ctx context.Context, c *domain.CatalogEntry) error
	SetStatus(ctx context.Context, id string, status domain.RecordStatus) error
	Count(ctx context.Context) (int, error)
}
