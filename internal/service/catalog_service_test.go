package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mariaiw8/apontamentos/internal/domain"
	"github.com/mariaiw8/apontamentos/internal/repository"
	"github.com/mariaiw8/apontamentos/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogService(t *testing.T) CatalogService {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewCatalogService(repository.NewSQLiteCatalogRepo(database), testutil.NewTestUoW(database))
}

func TestCatalogService_Add(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	op := &domain.CatalogEntry{Kind: domain.CatalogOperators, Name: "  Jonathan ", Sector: "Projeto"}
	require.NoError(t, svc.Add(ctx, op))
	assert.NotEmpty(t, op.ID)
	assert.Equal(t, "Jonathan", op.Name)
	assert.Equal(t, domain.SectorProject, op.Sector)

	cost := 30.0
	oven := &domain.CatalogEntry{Kind: domain.CatalogOvens, Name: "Forno 3", Sector: domain.SectorPaint, CostPerKg: &cost}
	require.NoError(t, svc.Add(ctx, oven))
	assert.Empty(t, oven.Sector)
	assert.Nil(t, oven.CostPerKg)

	assert.Error(t, svc.Add(ctx, &domain.CatalogEntry{Kind: domain.CatalogOperators, Name: "Sem setor"}))
	assert.Error(t, svc.Add(ctx, &domain.CatalogEntry{Kind: domain.CatalogColors, Name: " "}))
	assert.Error(t, svc.Add(ctx, &domain.CatalogEntry{Kind: "clientes", Name: "X"}))

	list, err := svc.List(ctx, "", false)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestCatalogService_SeedOnlyWhenEmpty(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	n, err := svc.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 24, n)

	n, err = svc.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	colors, err := svc.List(ctx, domain.CatalogColors, false)
	require.NoError(t, err)
	require.Len(t, colors, 3)
	assert.Equal(t, "Branco", colors[0].Name)
	assert.Equal(t, 25.0, *colors[0].CostPerKg)

	ops, err := svc.List(ctx, domain.CatalogOperators, false)
	require.NoError(t, err)
	assert.Len(t, ops, 10, "same name in two sectors is two entries")
}

func TestCatalogService_Deactivate(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	c := &domain.CatalogEntry{Kind: domain.CatalogProjectTypes, Name: "Teste"}
	require.NoError(t, svc.Add(ctx, c))
	require.NoError(t, svc.Deactivate(ctx, c.ID))

	active, err := svc.List(ctx, domain.CatalogProjectTypes, false)
	require.NoError(t, err)
	assert.Empty(t, active)

	assert.ErrorIs(t, svc.Deactivate(ctx, "missing"), repository.ErrNotFound)
}

func TestCatalogService_Update(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	cost := 28.0
	color := &domain.CatalogEntry{Kind: domain.CatalogColors, Name: "Preto", CostPerKg: &cost}
	require.NoError(t, svc.Add(ctx, color))
	op := &domain.CatalogEntry{Kind: domain.CatalogOperators, Name: "Neri", Sector: domain.SectorCut}
	require.NoError(t, svc.Add(ctx, op))

	got, err := svc.Update(ctx, color.ID, CatalogUpdate{Name: strPtr(" Preto Fosco "), CostPerKg: floatPtr(31.5)})
	require.NoError(t, err)
	assert.Equal(t, "Preto Fosco", got.Name)
	assert.Equal(t, 31.5, *got.CostPerKg)

	got, err = svc.Update(ctx, op.ID, CatalogUpdate{Sector: strPtr("Solda")})
	require.NoError(t, err)
	assert.Equal(t, domain.SectorWeld, got.Sector)
	assert.Equal(t, "Neri", got.Name)

	colors, err := svc.List(ctx, domain.CatalogColors, false)
	require.NoError(t, err)
	require.Len(t, colors, 1)
	assert.Equal(t, "Preto Fosco", colors[0].Name)
	assert.Equal(t, 31.5, *colors[0].CostPerKg)
}

func TestCatalogService_UpdateRejectsInvalid(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	cost := 28.0
	color := &domain.CatalogEntry{Kind: domain.CatalogColors, Name: "Preto", CostPerKg: &cost}
	require.NoError(t, svc.Add(ctx, color))
	oven := &domain.CatalogEntry{Kind: domain.CatalogOvens, Name: "Forno 1"}
	require.NoError(t, svc.Add(ctx, oven))
	op := &domain.CatalogEntry{Kind: domain.CatalogOperators, Name: "Neri", Sector: domain.SectorCut}
	require.NoError(t, svc.Add(ctx, op))

	cases := []struct {
		name    string
		id      string
		update  CatalogUpdate
		wantErr string
	}{
		{"negative cost", color.ID, CatalogUpdate{CostPerKg: floatPtr(-1)}, "must not be negative"},
		{"cost on oven", oven.ID, CatalogUpdate{CostPerKg: floatPtr(3)}, "only cores have a cost"},
		{"sector on oven", oven.ID, CatalogUpdate{Sector: strPtr("pintura")}, "have no sector"},
		{"unknown sector", op.ID, CatalogUpdate{Sector: strPtr("forja")}, "unknown sector"},
		{"blank name", op.ID, CatalogUpdate{Name: strPtr("  ")}, "name is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Update(ctx, tc.id, tc.update)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}

	_, err := svc.Update(ctx, "missing", CatalogUpdate{Name: strPtr("X")})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	colors, err := svc.List(ctx, domain.CatalogColors, false)
	require.NoError(t, err)
	assert.Equal(t, 28.0, *colors[0].CostPerKg, "rejected edits store nothing")
}

func writeImportFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestCatalogService_ImportSkipsExisting(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()
	_, err := svc.Seed(ctx)
	require.NoError(t, err)

	path := writeImportFile(t, `{
		"operadores": [{"name": "neri", "sector": "corte"}, {"name": "Kleber", "sector": "solda"}],
		"cores": [{"name": "Azul", "cost_per_kg": 31.5}],
		"fornos": [{"name": "Forno 3"}]
	}`)

	res, err := svc.Import(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Added)
	assert.Equal(t, 1, res.Skipped)

	colors, err := svc.List(ctx, domain.CatalogColors, false)
	require.NoError(t, err)
	require.Len(t, colors, 4)
	assert.Equal(t, "Azul", colors[0].Name)
	assert.InDelta(t, 31.5, *colors[0].CostPerKg, 1e-9)

	res, err = svc.Import(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Added)
	assert.Equal(t, 4, res.Skipped)
}

func TestCatalogService_ImportValidationFails(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	path := writeImportFile(t, `{"operadores": [{"name": "Sem setor"}], "tipos": [{"name": ""}]}`)

	_, err := svc.Import(ctx, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import validation failed (2 errors)")

	list, err := svc.List(ctx, "", true)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCatalogService_ImportMissingFile(t *testing.T) {
	svc := newCatalogService(t)

	_, err := svc.Import(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading import file")
}
