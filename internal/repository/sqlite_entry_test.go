package repository

import (
	"context"
	"testing"

	"github.com/mariaiw8/apontamentos/internal/domain"
	"github.com/mariaiw8/apontamentos/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryRepo_CreateAndGetByID(t *testing.T) {
	repo := NewSQLiteEntryRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	e := testutil.NewTestEntry(domain.SectorPaint, testutil.WithPaint("Forno 2", "Cinza", 12.5))
	e.OrderRef = "OP-77"
	require.NoError(t, repo.Create(ctx, e))

	got, err := repo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SectorPaint, got.Sector)
	assert.Equal(t, "Forno 2", got.Oven)
	assert.Equal(t, "Cinza", got.Color)
	assert.Equal(t, 12.5, got.PaintKg)
	assert.Equal(t, "OP-77", got.OrderRef)
	assert.Equal(t, e.StartedAt, got.StartedAt)
	assert.True(t, got.InProgress())
	assert.Nil(t, got.TotalHours)
	assert.Equal(t, domain.StatusActive, got.Status)
}

func TestEntryRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteEntryRepo(testutil.NewTestDB(t))
	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEntryRepo_UpdateFinalizes(t *testing.T) {
	repo := NewSQLiteEntryRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	e := testutil.NewTestEntry(domain.SectorWeld)
	require.NoError(t, repo.Create(ctx, e))

	require.NoError(t, e.Finalize(testutil.Monday(10, 30), 0.25, 2.75, e.UpdatedAt))
	require.NoError(t, repo.Update(ctx, e))

	got, err := repo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	require.NotNil(t, got.EndedAt)
	assert.Equal(t, testutil.Monday(10, 30), *got.EndedAt)
	assert.Equal(t, 0.25, got.ExtraHours)
	assert.Equal(t, 2.75, got.Hours())
}

func TestEntryRepo_UpdateMissing(t *testing.T) {
	repo := NewSQLiteEntryRepo(testutil.NewTestDB(t))
	e := testutil.NewTestEntry(domain.SectorWeld)
	assert.ErrorIs(t, repo.Update(context.Background(), e), ErrNotFound)
}

func TestEntryRepo_ListFilters(t *testing.T) {
	repo := NewSQLiteEntryRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	open := testutil.NewTestEntry(domain.SectorCut, testutil.WithStart(testutil.Monday(9, 0)))
	done := testutil.NewTestEntry(domain.SectorCut, testutil.WithEnd(testutil.Monday(10, 0), 2))
	weld := testutil.NewTestEntry(domain.SectorWeld)
	gone := testutil.NewTestEntry(domain.SectorCut, testutil.WithEntryStatus(domain.StatusInactive))
	for _, e := range []*domain.Entry{open, done, weld, gone} {
		require.NoError(t, repo.Create(ctx, e))
	}

	all, err := repo.List(ctx, EntryFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, open.ID, all[0].ID, "latest start first")

	cut, err := repo.List(ctx, EntryFilter{Sector: domain.SectorCut})
	require.NoError(t, err)
	assert.Len(t, cut, 2)

	inProgress, err := repo.List(ctx, EntryFilter{Sector: domain.SectorCut, InProgressOnly: true})
	require.NoError(t, err)
	require.Len(t, inProgress, 1)
	assert.Equal(t, open.ID, inProgress[0].ID)

	finalized, err := repo.List(ctx, EntryFilter{FinalizedOnly: true})
	require.NoError(t, err)
	require.Len(t, finalized, 1)
	assert.Equal(t, done.ID, finalized[0].ID)

	withInactive, err := repo.List(ctx, EntryFilter{IncludeInactive: true})
	require.NoError(t, err)
	assert.Len(t, withInactive, 4)
}

func TestEntryRepo_SetStatusCascadesToItems(t *testing.T) {
	database := testutil.NewTestDB(t)
	entries := NewSQLiteEntryRepo(database)
	items := NewSQLiteEntryItemRepo(database)
	ctx := context.Background()

	e := testutil.NewTestEntry(domain.SectorCut, testutil.WithItem("A", 1), testutil.WithItem("B", 2))
	require.NoError(t, entries.Create(ctx, e))
	require.NoError(t, items.CreateAll(ctx, e.ID, e.Items))

	require.NoError(t, entries.SetStatus(ctx, e.ID, domain.StatusInactive))

	got, err := entries.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.False(t, got.Active())

	list, err := items.ListByEntry(ctx, e.ID)
	require.NoError(t, err)
	for _, it := range list {
		assert.Equal(t, domain.StatusInactive, it.Status)
	}

	assert.ErrorIs(t, entries.SetStatus(ctx, "nope", domain.StatusInactive), ErrNotFound)
}
