package domain

import "time"

// CatalogEntry is a registered operator, equipment, paint color, oven or
// project type.
type CatalogEntry struct {
	ID        string
	Kind      CatalogKind
	Name      string
	Sector    Sector   // operators and equipment only
	CostPerKg *float64 // colors only
	Status    RecordStatus
	CreatedAt time.Time
}

// Active reports whether the catalog entry is still in use.
func (c *CatalogEntry) Active() bool {
	return c.Status != StatusInactive
}
