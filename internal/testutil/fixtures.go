package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/mariaiw8/apontamentos/internal/domain"
)

// Monday is 2025-01-06 at the given wall-clock time.
func Monday(hour, minute int) time.Time {
	return time.Date(2025, 1, 6, hour, minute, 0, 0, time.UTC)
}

// Entry options
type EntryOption func(*domain.Entry)

func WithStart(t time.Time) EntryOption {
	return func(e *domain.Entry) {
		e.StartedAt = t
	}
}

func WithEnd(end time.Time, total float64) EntryOption {
	return func(e *domain.Entry) {
		e.EndedAt = &end
		e.TotalHours = &total
	}
}

func WithOperator(op string) EntryOption {
	return func(e *domain.Entry) {
		e.Operator = op
	}
}

func WithEquipment(eq string) EntryOption {
	return func(e *domain.Entry) {
		e.Equipment = eq
	}
}

func WithPaint(oven, color string, kg float64) EntryOption {
	return func(e *domain.Entry) {
		e.Oven = oven
		e.Color = color
		e.PaintKg = kg
	}
}

func WithProject(projectType, sku string) EntryOption {
	return func(e *domain.Entry) {
		e.ProjectType = projectType
		e.SKU = sku
	}
}

// WithItem appends a declared line item.
func WithItem(sku string, qty float64) EntryOption {
	return func(e *domain.Entry) {
		e.Items = append(e.Items, domain.EntryItem{SKU: sku, Quantity: qty, Status: domain.StatusActive})
	}
}

func WithEntryStatus(s domain.RecordStatus) EntryOption {
	return func(e *domain.Entry) {
		e.Status = s
	}
}

// NewTestEntry builds a valid in-progress entry of the sector that starts on
// Monday at 08:00. Batch sectors get one item unless options add their own.
func NewTestEntry(sector domain.Sector, opts ...EntryOption) *domain.Entry {
	now := time.Now().UTC().Truncate(time.Second)
	e := &domain.Entry{
		ID:        uuid.New().String(),
		Sector:    sector,
		Operator:  "Neri",
		StartedAt: Monday(8, 0),
		Status:    domain.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	switch sector {
	case domain.SectorProject:
		e.ProjectType = "Projeto"
		e.SKU = "PRJ-1"
	case domain.SectorCut:
		e.Equipment = "Laser"
	case domain.SectorPaint:
		e.Operator = ""
		e.Oven = "Forno 1"
		e.Color = "Preto"
	}
	for _, opt := range opts {
		opt(e)
	}
	if sector.HasItems() && len(e.Items) == 0 {
		e.Items = []domain.EntryItem{{SKU: "SKU-1", Quantity: 1, Status: domain.StatusActive}}
	}
	return e
}

// Catalog options
type CatalogOption func(*domain.CatalogEntry)

func WithCatalogSector(s domain.Sector) CatalogOption {
	return func(c *domain.CatalogEntry) {
		c.Sector = s
	}
}

func WithCostPerKg(v float64) CatalogOption {
	return func(c *domain.CatalogEntry) {
		c.CostPerKg = &v
	}
}

func WithCatalogStatus(s domain.RecordStatus) CatalogOption {
	return func(c *domain.CatalogEntry) {
		c.Status = s
	}
}

func NewTestCatalogEntry(kind domain.CatalogKind, name string, opts ...CatalogOption) *domain.CatalogEntry {
	c := &domain.CatalogEntry{
		ID:        uuid.New().String(),
		Kind:      kind,
		Name:      name,
		Status:    domain.StatusActive,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
