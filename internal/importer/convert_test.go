package importer

import (
	"testing"

	"github.com/mariaiw8/apontamentos/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	entries := Convert(validSchema())
	require.Len(t, entries, 6)

	ids := make(map[string]bool)
	for _, c := range entries {
		assert.NotEmpty(t, c.ID)
		assert.False(t, ids[c.ID], "duplicate ID")
		ids[c.ID] = true
		assert.Equal(t, domain.StatusActive, c.Status)
	}

	assert.Equal(t, domain.CatalogOperators, entries[0].Kind)
	assert.Equal(t, domain.SectorCut, entries[0].Sector)
	assert.Equal(t, domain.SectorCut, entries[2].Sector, "sector is normalized")

	color := entries[3]
	assert.Equal(t, domain.CatalogColors, color.Kind)
	require.NotNil(t, color.CostPerKg)
	assert.InDelta(t, 25.0, *color.CostPerKg, 1e-9)

	assert.Empty(t, entries[4].Sector)
	assert.Nil(t, entries[4].CostPerKg)
}

func TestMissing(t *testing.T) {
	existing := []*domain.CatalogEntry{
		{Kind: domain.CatalogOperators, Name: "Neri", Sector: domain.SectorCut},
		{Kind: domain.CatalogOvens, Name: "Forno 1"},
	}
	incoming := Convert(validSchema())

	missing := Missing(existing, incoming)
	require.Len(t, missing, 4)
	for _, c := range missing {
		assert.NotEqual(t, domain.CatalogOvens, c.Kind)
	}
	assert.Equal(t, domain.SectorWeld, missing[0].Sector)
}
