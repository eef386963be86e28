package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/mariaiw8/apontamentos/internal/domain"
	"github.com/mariaiw8/apontamentos/internal/repository"
)

// UseCaseEvent describes one run of an entry use case. The entry it touched is
// described by the typed fields; Fields holds whatever else the use case
// wants logged.
type UseCaseEvent struct {
	Name      string
	StartedAt time.Time
	Duration  time.Duration
	Err       error

	EntryID string
	Sector  domain.Sector
	Items   int
	Hours   *float64

	Fields map[string]any
}

// Success reports whether the use case returned without error.
func (e UseCaseEvent) Success() bool {
	return e.Err == nil
}

// Rejected reports whether the use case failed on a rule of the domain
// rather than on storage.
func (e UseCaseEvent) Rejected() bool {
	return errors.Is(e.Err, domain.ErrAlreadyFinalized) ||
		errors.Is(e.Err, domain.ErrInactive) ||
		errors.Is(e.Err, repository.ErrNotFound)
}

type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

// useCaseRun builds the event of a running use case and reports it once.
type useCaseRun struct {
	observer UseCaseObserver
	event    UseCaseEvent
}

func startUseCase(observer UseCaseObserver, name string) *useCaseRun {
	return &useCaseRun{
		observer: observer,
		event:    UseCaseEvent{Name: name, StartedAt: time.Now()},
	}
}

// describe copies what is known about e into the event.
func (r *useCaseRun) describe(e *domain.Entry) {
	if e == nil {
		return
	}
	r.event.EntryID = e.ID
	r.event.Sector = e.Sector
	r.event.Items = len(e.Items)
	r.event.Hours = e.TotalHours
}

func (r *useCaseRun) set(key string, value any) {
	if r.event.Fields == nil {
		r.event.Fields = make(map[string]any)
	}
	r.event.Fields[key] = value
}

func (r *useCaseRun) done(ctx context.Context, err error) {
	r.event.Duration = time.Since(r.event.StartedAt)
	r.event.Err = err
	r.observer.ObserveUseCase(ctx, r.event)
}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver logs every event as a slog text line on w. A nil
// writer gives a no-op observer.
func NewLogUseCaseObserver(w io.Writer) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

// ObserveUseCase logs successes at INFO, domain rejections at WARN and
// storage failures at ERROR.
func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := []slog.Attr{
		slog.String("use_case", event.Name),
		slog.Int64("duration_ms", event.Duration.Milliseconds()),
		slog.Bool("success", event.Success()),
	}
	if event.EntryID != "" {
		attrs = append(attrs, slog.String("entry_id", event.EntryID))
	}
	if event.Sector != "" {
		attrs = append(attrs, slog.String("sector", string(event.Sector)))
	}
	if event.Items > 0 {
		attrs = append(attrs, slog.Int("items", event.Items))
	}
	if event.Hours != nil {
		attrs = append(attrs, slog.Float64("hours", *event.Hours))
	}
	for _, k := range slices.Sorted(maps.Keys(event.Fields)) {
		attrs = append(attrs, slog.Any(k, event.Fields[k]))
	}

	level := slog.LevelInfo
	if event.Err != nil {
		attrs = append(attrs, slog.String("error", event.Err.Error()))
		level = slog.LevelError
		if event.Rejected() {
			level = slog.LevelWarn
		}
	}
	o.logger.LogAttrs(ctx, level, "service_use_case", attrs...)
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}
