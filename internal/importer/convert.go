package importer

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mariaiw8/apontamentos/internal/domain"
)

// Convert transforms a validated CatalogImport into catalog entries ready
// for persistence. Call ValidateCatalogImport first; Convert assumes the
// schema is valid.
func Convert(schema *CatalogImport) []*domain.CatalogEntry {
	now := time.Now().UTC()
	out := make([]*domain.CatalogEntry, 0, schema.Len())

	for _, g := range schema.groups() {
		for _, it := range g.items {
			c := &domain.CatalogEntry{
				ID:        uuid.New().String(),
				Kind:      g.kind,
				Name:      strings.TrimSpace(it.Name),
				Status:    domain.StatusActive,
				CreatedAt: now,
			}
			if g.kind.HasSector() {
				c.Sector, _ = domain.ParseSector(it.Sector)
			}
			if g.kind == domain.CatalogColors && it.CostPerKg != nil {
				cost := *it.CostPerKg
				c.CostPerKg = &cost
			}
			out = append(out, c)
		}
	}
	return out
}

// Missing returns the entries of incoming that existing does not already
// hold, comparing kind, name and sector.
func Missing(existing, incoming []*domain.CatalogEntry) []*domain.CatalogEntry {
	have := make(map[string]bool, len(existing))
	for _, c := range existing {
		have[catalogKey(c.Kind, c.Name, c.Sector)] = true
	}
	var out []*domain.CatalogEntry
	for _, c := range incoming {
		if !have[catalogKey(c.Kind, c.Name, c.Sector)] {
			out = append(out, c)
		}
	}
	return out
}
