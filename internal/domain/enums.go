package domain

import (
	"fmt"
	"strings"

	"github.com/mariaiw8/apontamentos/internal/workhours"
)

// Sector is the shop-floor area an entry belongs to.
type Sector string

const (
	SectorProject Sector = "projeto"
	SectorCut     Sector = "corte"
	SectorWeld    Sector = "solda"
	SectorPaint   Sector = "pintura"
)

// Sectors lists every sector in display order.
var Sectors = []Sector{SectorProject, SectorCut, SectorWeld, SectorPaint}

// ParseSector accepts a sector name in any case.
func ParseSector(s string) (Sector, error) {
	sec := Sector(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range Sectors {
		if v == sec {
			return sec, nil
		}
	}
	return "", fmt.Errorf("unknown sector %q (want projeto, corte, solda or pintura)", s)
}

// Policy returns how the sector's hours are measured. Paint ovens run
// through lunch and after hours, so their batches count raw elapsed time.
func (s Sector) Policy() workhours.Policy {
	return workhours.PolicyFor(s == SectorPaint)
}

// HasItems reports whether entries of the sector are batches of line items.
func (s Sector) HasItems() bool {
	return s == SectorCut || s == SectorWeld || s == SectorPaint
}

// RationsMass reports whether the batch's paint mass is split across items.
func (s Sector) RationsMass() bool {
	return s == SectorPaint
}

// Label is the display name.
func (s Sector) Label() string {
	switch s {
	case SectorProject:
		return "Projeto"
	case SectorCut:
		return "Corte"
	case SectorWeld:
		return "Solda"
	case SectorPaint:
		return "Pintura"
	default:
		return string(s)
	}
}

// RecordStatus marks soft-deleted records.
type RecordStatus string

const (
	StatusActive   RecordStatus = "ativo"
	StatusInactive RecordStatus = "inativo"
)

// CatalogKind is one of the registration lists.
type CatalogKind string

const (
	CatalogOperators    CatalogKind = "operadores"
	CatalogEquipment    CatalogKind = "equipamentos"
	CatalogColors       CatalogKind = "cores"
	CatalogOvens        CatalogKind = "fornos"
	CatalogProjectTypes CatalogKind = "tipos"
)

// CatalogKinds lists every catalog kind.
var CatalogKinds = []CatalogKind{CatalogOperators, CatalogEquipment, CatalogColors, CatalogOvens, CatalogProjectTypes}

// HasSector reports whether entries of this kind belong to a sector.
func (k CatalogKind) HasSector() bool {
	return k == CatalogOperators || k == CatalogEquipment
}

// ParseCatalogKind accepts a catalog kind in any case.
func ParseCatalogKind(s string) (CatalogKind, error) {
	k := CatalogKind(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range CatalogKinds {
		if v == k {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown catalog %q (want operadores, equipamentos, cores, fornos or tipos)", s)
}
