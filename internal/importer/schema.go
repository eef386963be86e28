package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// CatalogImport is the top-level JSON structure of a catalog import file.
// Each list holds the entries of one catalog kind.
type CatalogImport struct {
	Operators    []CatalogItemImport `json:"operadores,omitempty"`
	Equipment    []CatalogItemImport `json:"equipamentos,omitempty"`
	Colors       []CatalogItemImport `json:"cores,omitempty"`
	Ovens        []CatalogItemImport `json:"fornos,omitempty"`
	ProjectTypes []CatalogItemImport `json:"tipos,omitempty"`
}

// CatalogItemImport is one catalog entry in the import file. Sector applies
// to operators and equipment, CostPerKg to colors.
type CatalogItemImport struct {
	Name      string   `json:"name"`
	Sector    string   `json:"sector,omitempty"`
	CostPerKg *float64 `json:"cost_per_kg,omitempty"`
}

// Len returns the number of entries across all kinds.
func (c *CatalogImport) Len() int {
	return len(c.Operators) + len(c.Equipment) + len(c.Colors) + len(c.Ovens) + len(c.ProjectTypes)
}

// LoadCatalogImport reads and parses a catalog import JSON file.
func LoadCatalogImport(path string) (*CatalogImport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCatalogImport(data)
}

func ParseCatalogImport(data []byte) (*CatalogImport, error) {
	var schema CatalogImport
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
