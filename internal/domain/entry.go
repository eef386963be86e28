package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/mariaiw8/apontamentos/internal/rationing"
	"github.com/mariaiw8/apontamentos/internal/workhours"
)

var (
	// ErrAlreadyFinalized is returned when finalizing an entry that has an end time.
	ErrAlreadyFinalized = errors.New("entry already finalized")
	// ErrInactive is returned when changing an inactivated entry.
	ErrInactive = errors.New("entry is inactive")
)

// Entry is one time record ("apontamento"). An entry without EndedAt is in
// progress; finalizing it sets EndedAt and TotalHours together.
type Entry struct {
	ID     string
	Sector Sector

	Operator    string
	Equipment   string // corte
	Oven        string // pintura
	Color       string // pintura
	PaintKg     float64
	ProjectType string // projeto
	SKU         string // projeto
	OrderRef    string
	Description string

	StartedAt  time.Time
	EndedAt    *time.Time
	ExtraHours float64
	TotalHours *float64

	Status    RecordStatus
	Items     []EntryItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EntryItem is a declared line item of a batch entry. The rationed values are
// set when the batch is finalized.
type EntryItem struct {
	ID            string
	EntryID       string
	SKU           string
	Description   string
	OrderRef      string
	Quantity      float64
	RationedHours *float64
	RationedKg    *float64
	Status        RecordStatus
}

// InProgress reports whether the entry is still waiting for its end time.
func (e *Entry) InProgress() bool {
	return e.EndedAt == nil
}

// Active reports whether the entry has not been inactivated.
func (e *Entry) Active() bool {
	return e.Status != StatusInactive
}

// Validate checks the fields each sector requires.
func (e *Entry) Validate() error {
	var missing []string
	require := func(v, name string) {
		if v == "" {
			missing = append(missing, name)
		}
	}
	if e.StartedAt.IsZero() {
		missing = append(missing, "start")
	}
	switch e.Sector {
	case SectorProject:
		require(e.Operator, "operator")
		require(e.ProjectType, "type")
		require(e.SKU, "sku")
	case SectorCut, SectorWeld:
		require(e.Operator, "operator")
	case SectorPaint:
		require(e.Oven, "oven")
		require(e.Color, "color")
	default:
		return fmt.Errorf("unknown sector %q", e.Sector)
	}
	if e.Sector.HasItems() && len(e.Items) == 0 {
		missing = append(missing, "at least one item")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s entry is missing: %v", e.Sector, missing)
	}
	if e.PaintKg < 0 {
		return fmt.Errorf("paint kg %g must not be negative", e.PaintKg)
	}
	return nil
}

// Span returns the entry's span closing at end.
func (e *Entry) Span(end time.Time) workhours.Span {
	return workhours.Span{Start: e.StartedAt, End: end}
}

// Finalize records the end time, the operator's extra hours and the computed total.
func (e *Entry) Finalize(end time.Time, extraHours, totalHours float64, now time.Time) error {
	if !e.Active() {
		return ErrInactive
	}
	if !e.InProgress() {
		return ErrAlreadyFinalized
	}
	return e.Close(end, extraHours, totalHours, now)
}

// Close sets the closing values whether or not the entry was already
// finalized. Editing a finalized entry's times goes through here.
func (e *Entry) Close(end time.Time, extraHours, totalHours float64, now time.Time) error {
	if !e.Active() {
		return ErrInactive
	}
	e.EndedAt = &end
	e.ExtraHours = extraHours
	e.TotalHours = &totalHours
	e.UpdatedAt = now
	return nil
}

// LineItems converts the declared items for the rationing engine.
func (e *Entry) LineItems() []rationing.LineItem {
	out := make([]rationing.LineItem, len(e.Items))
	for i, it := range e.Items {
		out[i] = rationing.LineItem{
			SKU:         it.SKU,
			Description: it.Description,
			OrderRef:    it.OrderRef,
			Quantity:    it.Quantity,
		}
	}
	return out
}

// ApplyRationing stores the hours (and, for paint, kg) shares on the items.
// Shares are matched to items by position.
func (e *Entry) ApplyRationing(hours, kg []rationing.Share) {
	for i := range e.Items {
		if i < len(hours) {
			v := hours[i].Value
			e.Items[i].RationedHours = &v
		}
		if i < len(kg) {
			v := kg[i].Value
			e.Items[i].RationedKg = &v
		}
	}
}

// Column is the value the kanban board groups the entry by.
func (e *Entry) Column() string {
	switch e.Sector {
	case SectorCut:
		return e.Equipment
	case SectorPaint:
		return e.Oven
	default:
		return e.Operator
	}
}

// Hours returns TotalHours or 0 while in progress.
func (e *Entry) Hours() float64 {
	if e.TotalHours == nil {
		return 0
	}
	return *e.TotalHours
}

// FloatFromPtr returns *p, or 0 for nil.
func FloatFromPtr(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
