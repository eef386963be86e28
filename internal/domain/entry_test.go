package domain

import (
	"testing"
	"time"

	"github.com/mariaiw8/apontamentos/internal/rationing"
	"github.com/mariaiw8/apontamentos/internal/workhours"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monday(hour, minute int) time.Time {
	return time.Date(2025, 1, 6, hour, minute, 0, 0, time.UTC)
}

func TestSector_Policy(t *testing.T) {
	assert.Equal(t, workhours.RawElapsed, SectorPaint.Policy())
	assert.Equal(t, workhours.CalendarRestricted, SectorProject.Policy())
	assert.Equal(t, workhours.CalendarRestricted, SectorCut.Policy())
	assert.Equal(t, workhours.CalendarRestricted, SectorWeld.Policy())
}

func TestSector_Flags(t *testing.T) {
	assert.False(t, SectorProject.HasItems())
	assert.True(t, SectorCut.HasItems())
	assert.True(t, SectorPaint.RationsMass())
	assert.False(t, SectorWeld.RationsMass())
}

func TestParseSector(t *testing.T) {
	s, err := ParseSector(" Pintura ")
	require.NoError(t, err)
	assert.Equal(t, SectorPaint, s)

	_, err = ParseSector("montagem")
	assert.Error(t, err)
}

func TestParseCatalogKind(t *testing.T) {
	k, err := ParseCatalogKind("FORNOS")
	require.NoError(t, err)
	assert.Equal(t, CatalogOvens, k)

	_, err = ParseCatalogKind("clientes")
	assert.Error(t, err)
}

func TestEntry_ValidatePerSector(t *testing.T) {
	start := monday(8, 0)
	item := []EntryItem{{SKU: "A", Quantity: 1}}

	cases := []struct {
		name    string
		entry   Entry
		wantErr string
	}{
		{"projeto ok", Entry{Sector: SectorProject, StartedAt: start, Operator: "Rafael", ProjectType: "Projeto", SKU: "X"}, ""},
		{"projeto missing sku", Entry{Sector: SectorProject, StartedAt: start, Operator: "Rafael", ProjectType: "Projeto"}, "sku"},
		{"corte ok", Entry{Sector: SectorCut, StartedAt: start, Operator: "Neri", Items: item}, ""},
		{"corte no items", Entry{Sector: SectorCut, StartedAt: start, Operator: "Neri"}, "at least one item"},
		{"solda missing operator", Entry{Sector: SectorWeld, StartedAt: start, Items: item}, "operator"},
		{"pintura ok", Entry{Sector: SectorPaint, StartedAt: start, Oven: "Forno 1", Color: "Preto", Items: item}, ""},
		{"pintura missing color", Entry{Sector: SectorPaint, StartedAt: start, Oven: "Forno 1", Items: item}, "color"},
		{"missing start", Entry{Sector: SectorWeld, Operator: "Neri", Items: item}, "start"},
		{"bad sector", Entry{Sector: "montagem", StartedAt: start}, "unknown sector"},
		{"negative kg", Entry{Sector: SectorPaint, StartedAt: start, Oven: "Forno 1", Color: "Preto", PaintKg: -1, Items: item}, "must not be negative"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.entry.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestEntry_ValidateAcceptsEndBeforeStart(t *testing.T) {
	end := monday(7, 0)
	e := Entry{Sector: SectorProject, StartedAt: monday(8, 0), EndedAt: &end, Operator: "R", ProjectType: "T", SKU: "S"}
	require.NoError(t, e.Validate())
	assert.Zero(t, workhours.BaseHours(e.Span(end), workhours.DefaultCalendar(), e.Sector.Policy()))
}

func TestEntry_Finalize(t *testing.T) {
	e := &Entry{Sector: SectorWeld, StartedAt: monday(8, 0), Status: StatusActive}
	require.True(t, e.InProgress())

	now := monday(18, 0)
	require.NoError(t, e.Finalize(monday(10, 0), 0.5, 2.5, now))
	assert.False(t, e.InProgress())
	assert.Equal(t, 2.5, e.Hours())
	assert.Equal(t, 0.5, e.ExtraHours)
	assert.Equal(t, now, e.UpdatedAt)

	err := e.Finalize(monday(11, 0), 0, 3, now)
	assert.ErrorIs(t, err, ErrAlreadyFinalized)
	assert.Equal(t, 2.5, e.Hours())
}

func TestEntry_CloseReplacesFinalizedValues(t *testing.T) {
	e := &Entry{Sector: SectorWeld, StartedAt: monday(8, 0), Status: StatusActive}
	require.NoError(t, e.Finalize(monday(10, 0), 0, 2, monday(10, 0)))

	require.NoError(t, e.Close(monday(11, 0), 1, 4, monday(12, 0)))
	assert.Equal(t, monday(11, 0), *e.EndedAt)
	assert.Equal(t, 1.0, e.ExtraHours)
	assert.Equal(t, 4.0, e.Hours())

	e.Status = StatusInactive
	assert.ErrorIs(t, e.Close(monday(12, 0), 0, 5, monday(12, 0)), ErrInactive)
	assert.Equal(t, 4.0, e.Hours())
}

func TestEntry_FinalizeInactive(t *testing.T) {
	e := &Entry{Sector: SectorWeld, StartedAt: monday(8, 0), Status: StatusInactive}
	assert.ErrorIs(t, e.Finalize(monday(10, 0), 0, 2, monday(10, 0)), ErrInactive)
	assert.True(t, e.InProgress())
}

func TestEntry_ApplyRationing(t *testing.T) {
	e := &Entry{
		Sector: SectorPaint,
		Items:  []EntryItem{{SKU: "A", Quantity: 1}, {SKU: "B", Quantity: 3}},
	}
	plan := rationing.NewPlan(e.LineItems())
	e.ApplyRationing(plan.Distribute(8), plan.Distribute(20))

	require.NotNil(t, e.Items[0].RationedHours)
	assert.Equal(t, 2.0, *e.Items[0].RationedHours)
	assert.Equal(t, 6.0, *e.Items[1].RationedHours)
	assert.Equal(t, 5.0, *e.Items[0].RationedKg)
	assert.Equal(t, 15.0, *e.Items[1].RationedKg)
}

func TestEntry_ApplyRationingHoursOnly(t *testing.T) {
	e := &Entry{Sector: SectorCut, Items: []EntryItem{{SKU: "A", Quantity: 2}}}
	e.ApplyRationing(rationing.Allocate(4, e.LineItems()), nil)
	assert.Equal(t, 4.0, *e.Items[0].RationedHours)
	assert.Nil(t, e.Items[0].RationedKg)
}

func TestEntry_Column(t *testing.T) {
	assert.Equal(t, "Laser", (&Entry{Sector: SectorCut, Equipment: "Laser", Operator: "Neri"}).Column())
	assert.Equal(t, "Forno 2", (&Entry{Sector: SectorPaint, Oven: "Forno 2"}).Column())
	assert.Equal(t, "Neri", (&Entry{Sector: SectorWeld, Operator: "Neri"}).Column())
}

func TestOrDash(t *testing.T) {
	assert.Equal(t, "-", OrDash(""))
	assert.Equal(t, "OP1", OrDash("OP1"))
}
