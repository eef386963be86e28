package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mariaiw8/apontamentos/internal/domain"
	"github.com/mariaiw8/apontamentos/internal/rationing"
	"github.com/mariaiw8/apontamentos/internal/repository"
	"github.com/mariaiw8/apontamentos/internal/workhours"
)

// OpenRequest starts an entry. Items are the raw form rows of a batch; rows
// without a SKU or a readable quantity are ignored. A non-nil EndedAt
// finalizes the entry in the same transaction.
type OpenRequest struct {
	Sector      domain.Sector
	Operator    string
	Equipment   string
	Oven        string
	Color       string
	PaintKg     float64
	ProjectType string
	SKU         string
	OrderRef    string
	Description string
	StartedAt   time.Time
	EndedAt     *time.Time
	ExtraHours  float64
	Items       []rationing.Row
}

type FinalizeRequest struct {
	EndedAt    time.Time
	ExtraHours float64
}

// EditRequest corrects the fields of a stored entry. Nil fields are left as
// they are. Items are not editable.
type EditRequest struct {
	Operator    *string
	Equipment   *string
	Oven        *string
	Color       *string
	PaintKg     *float64
	ProjectType *string
	SKU         *string
	OrderRef    *string
	Description *string
	StartedAt   *time.Time
	EndedAt     *time.Time
	ExtraHours  *float64
}

// retimes reports whether the request changes a value the total or the
// rationed shares are computed from.
func (r EditRequest) retimes() bool {
	return r.StartedAt != nil || r.EndedAt != nil || r.ExtraHours != nil || r.PaintKg != nil
}

// apply copies the set fields onto e and returns the names of the ones that
// were set. A field the entry's sector does not record is an error.
func (r EditRequest) apply(e *domain.Entry) ([]string, error) {
	var changed, foreign []string
	setString := func(v *string, dst *string, name string, allowed bool) {
		if v == nil {
			return
		}
		if !allowed {
			foreign = append(foreign, name)
			return
		}
		*dst = strings.TrimSpace(*v)
		changed = append(changed, name)
	}
	setString(r.Operator, &e.Operator, "operator", e.Sector != domain.SectorPaint)
	setString(r.Equipment, &e.Equipment, "equipment", e.Sector == domain.SectorCut)
	setString(r.Oven, &e.Oven, "oven", e.Sector == domain.SectorPaint)
	setString(r.Color, &e.Color, "color", e.Sector == domain.SectorPaint)
	setString(r.ProjectType, &e.ProjectType, "type", e.Sector == domain.SectorProject)
	setString(r.SKU, &e.SKU, "sku", e.Sector == domain.SectorProject)
	setString(r.OrderRef, &e.OrderRef, "order", true)
	setString(r.Description, &e.Description, "description", true)

	if r.PaintKg != nil {
		if e.Sector.RationsMass() {
			e.PaintKg = *r.PaintKg
			changed = append(changed, "kg")
		} else {
			foreign = append(foreign, "kg")
		}
	}
	if r.StartedAt != nil {
		e.StartedAt = *r.StartedAt
		changed = append(changed, "start")
	}
	if r.EndedAt != nil {
		end := *r.EndedAt
		e.EndedAt = &end
		changed = append(changed, "end")
	}
	if r.ExtraHours != nil {
		e.ExtraHours = *r.ExtraHours
		changed = append(changed, "extra")
	}
	if len(foreign) > 0 {
		return nil, fmt.Errorf("%s entries do not record %s", e.Sector, strings.Join(foreign, ", "))
	}
	return changed, nil
}

type EntryService interface {
	Open(ctx context.Context, req OpenRequest) (*domain.Entry, error)
	Finalize(ctx context.Context, id string, req FinalizeRequest) (*domain.Entry, error)
	Edit(ctx context.Context, id string, req EditRequest) (*domain.Entry, error)
	Preview(sector domain.Sector, in workhours.PreviewInput) (*float64, error)
	Get(ctx context.Context, id string) (*domain.Entry, error)
	List(ctx context.Context, f repository.EntryFilter) ([]*domain.Entry, error)
	ListInProgress(ctx context.Context) ([]*domain.Entry, error)
	Inactivate(ctx context.Context, id string) error
}

// BoardColumn is one kanban column with the in-progress entries grouped under it.
type BoardColumn struct {
	Name    string
	Entries []*domain.Entry
}

// BoardColumnGroup is the kanban of one sector.
type BoardColumnGroup struct {
	Sector  domain.Sector
	Columns []BoardColumn
}

// Count returns the number of in-progress entries on the sector's board.
func (g BoardColumnGroup) Count() int {
	n := 0
	for _, c := range g.Columns {
		n += len(c.Entries)
	}
	return n
}

type BoardService interface {
	Board(ctx context.Context) ([]BoardColumnGroup, error)
}

// RecordFilter narrows the consolidated records. SKU matches as a
// case-insensitive substring; the other fields match exactly.
type RecordFilter struct {
	SKU       string
	Operator  string
	Sector    domain.Sector
	Equipment string
}

// SummaryFilter narrows only the history of a SKU summary.
type SummaryFilter struct {
	Sector   domain.Sector
	Operator string
}

type ReportService interface {
	Records(ctx context.Context, f RecordFilter) ([]domain.Record, error)
	Summary(ctx context.Context, sku string, f SummaryFilter) (*domain.SKUSummary, error)
}

type ExportService interface {
	Export(ctx context.Context, dir string) ([]string, error)
}

// ImportResult counts the entries a catalog import added and the ones it
// skipped because the catalog already held them.
type ImportResult struct {
	Added   int
	Skipped int
}

// CatalogUpdate holds the changes to one catalog entry. Nil fields are kept.
type CatalogUpdate struct {
	Name      *string
	Sector    *string
	CostPerKg *float64
}

type CatalogService interface {
	Add(ctx context.Context, c *domain.CatalogEntry) error
	Update(ctx context.Context, id string, u CatalogUpdate) (*domain.CatalogEntry, error)
	List(ctx context.Context, kind domain.CatalogKind, includeInactive bool) ([]*domain.CatalogEntry, error)
	Deactivate(ctx context.Context, id string) error
	Seed(ctx context.Context) (int, error)
	Import(ctx context.Context, filePath string) (*ImportResult, error)
}
