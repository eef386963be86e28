package repository

import (
	"context"
	"testing"

	"github.com/mariaiw8/apontamentos/internal/domain"
	"github.com/mariaiw8/apontamentos/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRepo_CreateAndList(t *testing.T) {
	repo := NewSQLiteCatalogRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	neri := testutil.NewTestCatalogEntry(domain.CatalogOperators, "Neri", testutil.WithCatalogSector(domain.SectorWeld))
	ana := testutil.NewTestCatalogEntry(domain.CatalogOperators, "ana", testutil.WithCatalogSector(domain.SectorCut))
	black := testutil.NewTestCatalogEntry(domain.CatalogColors, "Preto", testutil.WithCostPerKg(42.5))
	for _, c := range []*domain.CatalogEntry{neri, ana, black} {
		require.NoError(t, repo.Create(ctx, c))
	}

	ops, err := repo.List(ctx, domain.CatalogOperators, false)
	require.NoError(t, err)
	require.Len(t, ops, 2)
	assert.Equal(t, "ana", ops[0].Name, "names sort case-insensitively")
	assert.Equal(t, domain.SectorWeld, ops[1].Sector)

	got, err := repo.GetByID(ctx, black.ID)
	require.NoError(t, err)
	require.NotNil(t, got.CostPerKg)
	assert.Equal(t, 42.5, *got.CostPerKg)

	all, err := repo.List(ctx, "", false)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestCatalogRepo_UniquePerKindNameSector(t *testing.T) {
	repo := NewSQLiteCatalogRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestCatalogEntry(domain.CatalogOvens, "Forno 1")))
	assert.Error(t, repo.Create(ctx, testutil.NewTestCatalogEntry(domain.CatalogOvens, "Forno 1")))
	assert.NoError(t, repo.Create(ctx, testutil.NewTestCatalogEntry(domain.CatalogColors, "Forno 1")))
}

func TestCatalogRepo_SetStatus(t *testing.T) {
	repo := NewSQLiteCatalogRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	c := testutil.NewTestCatalogEntry(domain.CatalogEquipment, "Guilhotina")
	require.NoError(t, repo.Create(ctx, c))
	require.NoError(t, repo.SetStatus(ctx, c.ID, domain.StatusInactive))

	active, err := repo.List(ctx, domain.CatalogEquipment, false)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := repo.List(ctx, domain.CatalogEquipment, true)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.False(t, all[0].Active())

	assert.ErrorIs(t, repo.SetStatus(ctx, "missing", domain.StatusInactive), ErrNotFound)
	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogRepo_Update(t *testing.T) {
	repo := NewSQLiteCatalogRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	c := testutil.NewTestCatalogEntry(domain.CatalogColors, "Preto", testutil.WithCostPerKg(40))
	require.NoError(t, repo.Create(ctx, c))
	require.NoError(t, repo.Create(ctx, testutil.NewTestCatalogEntry(domain.CatalogColors, "Branco")))

	c.Name = "Preto Fosco"
	cost := 44.0
	c.CostPerKg = &cost
	require.NoError(t, repo.Update(ctx, c))

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Preto Fosco", got.Name)
	assert.Equal(t, 44.0, *got.CostPerKg)

	c.CostPerKg = nil
	require.NoError(t, repo.Update(ctx, c))
	got, err = repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, got.CostPerKg)

	c.Name = "Branco"
	assert.Error(t, repo.Update(ctx, c), "renaming onto another entry hits the unique index")

	missing := testutil.NewTestCatalogEntry(domain.CatalogColors, "Cinza")
	assert.ErrorIs(t, repo.Update(ctx, missing), ErrNotFound)
}
