package importer

import (
	"testing"

	"github.com/mariaiw8/apontamentos/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrFloat(f float64) *float64 { return &f }

func validSchema() *CatalogImport {
	return &CatalogImport{
		Operators:    []CatalogItemImport{{Name: "Neri", Sector: "corte"}, {Name: "Neri", Sector: "solda"}},
		Equipment:    []CatalogItemImport{{Name: "Dobradeira", Sector: "Corte"}},
		Colors:       []CatalogItemImport{{Name: "Branco", CostPerKg: ptrFloat(25)}},
		Ovens:        []CatalogItemImport{{Name: "Forno 1"}},
		ProjectTypes: []CatalogItemImport{{Name: "Detalhamento"}},
	}
}

func TestValidateCatalogImport_Valid(t *testing.T) {
	errs := ValidateCatalogImport(validSchema())
	assert.Empty(t, errs)
}

func TestValidateCatalogImport_Empty(t *testing.T) {
	errs := ValidateCatalogImport(&CatalogImport{})
	assert.Empty(t, errs)
}

func TestValidateCatalogImport_CollectsAllErrors(t *testing.T) {
	schema := &CatalogImport{
		Operators: []CatalogItemImport{
			{Name: ""},
			{Name: "Zé"},
			{Name: "Ana", Sector: "forja"},
		},
		Colors: []CatalogItemImport{{Name: "Verde", CostPerKg: ptrFloat(-1)}},
		Ovens:  []CatalogItemImport{{Name: "Forno 1", Sector: "pintura", CostPerKg: ptrFloat(3)}},
	}

	errs := ValidateCatalogImport(schema)
	require.Len(t, errs, 6)
	assert.Contains(t, errs[0].Error(), "operadores[0].name is required")
	assert.Contains(t, errs[1].Error(), "operadores[1].sector")
	assert.Contains(t, errs[2].Error(), "unknown sector")
	assert.Contains(t, errs[3].Error(), "must not be negative")
	assert.Contains(t, errs[4].Error(), "fornos[0].sector")
	assert.Contains(t, errs[5].Error(), "only cores have a cost")
}

func TestValidateCatalogImport_Duplicates(t *testing.T) {
	schema := &CatalogImport{
		Operators: []CatalogItemImport{
			{Name: "Neri", Sector: "corte"},
			{Name: " neri ", Sector: "CORTE"},
			{Name: "Neri", Sector: "solda"},
		},
	}

	errs := ValidateCatalogImport(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "duplicate")
}

func TestParseCatalogImport(t *testing.T) {
	schema, err := ParseCatalogImport([]byte(`{"cores": [{"name": "Cinza", "cost_per_kg": 26.5}], "tipos": [{"name": "Teste"}]}`))
	require.NoError(t, err)
	assert.Equal(t, 2, schema.Len())
	require.Len(t, schema.Colors, 1)
	assert.InDelta(t, 26.5, *schema.Colors[0].CostPerKg, 1e-9)

	_, err = ParseCatalogImport([]byte(`{"cores": [`))
	assert.Error(t, err)
}

func TestValidateCatalogItem(t *testing.T) {
	name, sector, errs := ValidateCatalogItem(domain.CatalogOperators, CatalogItemImport{Name: " Neri ", Sector: "Solda"})
	assert.Empty(t, errs)
	assert.Equal(t, "Neri", name)
	assert.Equal(t, domain.SectorWeld, sector)

	cases := []struct {
		name    string
		kind    domain.CatalogKind
		item    CatalogItemImport
		wantErr string
	}{
		{"blank name", domain.CatalogOvens, CatalogItemImport{Name: " "}, "name is required"},
		{"operator without sector", domain.CatalogOperators, CatalogItemImport{Name: "Zé"}, "sector"},
		{"oven with sector", domain.CatalogOvens, CatalogItemImport{Name: "Forno 1", Sector: "pintura"}, "fornos have no sector"},
		{"cost on equipment", domain.CatalogEquipment, CatalogItemImport{Name: "Laser", Sector: "corte", CostPerKg: ptrFloat(2)}, "only cores have a cost"},
		{"negative cost", domain.CatalogColors, CatalogItemImport{Name: "Azul", CostPerKg: ptrFloat(-0.5)}, "must not be negative"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, errs := ValidateCatalogItem(tc.kind, tc.item)
			require.Len(t, errs, 1)
			assert.Contains(t, errs[0].Error(), tc.wantErr)
		})
	}
}
