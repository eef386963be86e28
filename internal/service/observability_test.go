package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/mariaiw8/apontamentos/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestLogUseCaseObserver_WritesEntryFields(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	hours := 2.5
	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "finalize-entry",
		Duration: 3 * time.Millisecond,
		EntryID:  "e-1",
		Sector:   domain.SectorWeld,
		Items:    2,
		Hours:    &hours,
		Fields:   map[string]any{"changed": "ended_at"},
	})
	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "use_case=finalize-entry")
	assert.Contains(t, out, "duration_ms=3")
	assert.Contains(t, out, "success=true")
	assert.Contains(t, out, "entry_id=e-1")
	assert.Contains(t, out, "sector=solda")
	assert.Contains(t, out, "items=2")
	assert.Contains(t, out, "hours=2.5")
	assert.Contains(t, out, "changed=ended_at")
}

func TestLogUseCaseObserver_OmitsUnknownEntryFields(t *testing.T) {
	var buf bytes.Buffer
	NewLogUseCaseObserver(&buf).ObserveUseCase(context.Background(), UseCaseEvent{
		Name:   "open-entry",
		Sector: domain.SectorProject,
	})
	out := buf.String()
	assert.Contains(t, out, "sector=projeto")
	assert.NotContains(t, out, "entry_id=")
	assert.NotContains(t, out, "hours=")
	assert.NotContains(t, out, "items=")
}

func TestLogUseCaseObserver_Levels(t *testing.T) {
	cases := []struct {
		name  string
		err   error
		level string
	}{
		{"storage failure", errors.New("disk full"), "level=ERROR"},
		{"already finalized", fmt.Errorf("finalize: %w", domain.ErrAlreadyFinalized), "level=WARN"},
		{"inactive", domain.ErrInactive, "level=WARN"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewLogUseCaseObserver(&buf).ObserveUseCase(context.Background(), UseCaseEvent{Name: "finalize-entry", Err: tc.err})
			assert.Contains(t, buf.String(), tc.level)
			assert.Contains(t, buf.String(), "success=false")
		})
	}
}

func TestUseCaseRun_DescribesEntry(t *testing.T) {
	capture := &captureObserver{}
	run := startUseCase(capture, "open-entry")
	total := 1.5
	run.describe(&domain.Entry{
		ID: "e-9", Sector: domain.SectorPaint, TotalHours: &total,
		Items: []domain.EntryItem{{SKU: "A"}, {SKU: "B"}},
	})
	run.set("changed", "paint_kg")
	run.done(context.Background(), nil)

	assert.Len(t, capture.events, 1)
	ev := capture.events[0]
	assert.Equal(t, "e-9", ev.EntryID)
	assert.Equal(t, domain.SectorPaint, ev.Sector)
	assert.Equal(t, 2, ev.Items)
	assert.Equal(t, 1.5, *ev.Hours)
	assert.Equal(t, "paint_kg", ev.Fields["changed"])
	assert.True(t, ev.Success())
}

func TestNewLogUseCaseObserver_NilWriter(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop([]UseCaseObserver{nil}))
}
