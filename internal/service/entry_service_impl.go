package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mariaiw8/apontamentos/internal/db"
	"github.com/mariaiw8/apontamentos/internal/domain"
	"github.com/mariaiw8/apontamentos/internal/rationing"
	"github.com/mariaiw8/apontamentos/internal/repository"
	"github.com/mariaiw8/apontamentos/internal/workhours"
)

type entryService struct {
	entries  repository.EntryRepo
	items    repository.EntryItemRepo
	uow      db.UnitOfWork
	calendar workhours.Calendar
	observer UseCaseObserver
	now      func() time.Time
}

func NewEntryService(
	entries repository.EntryRepo,
	items repository.EntryItemRepo,
	uow db.UnitOfWork,
	calendar workhours.Calendar,
	observers ...UseCaseObserver,
) EntryService {
	return &entryService{
		entries:  entries,
		items:    items,
		uow:      uow,
		calendar: calendar,
		observer: useCaseObserverOrNoop(observers),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *entryService) Open(ctx context.Context, req OpenRequest) (entry *domain.Entry, err error) {
	run := startUseCase(s.observer, "open-entry")
	run.event.Sector = req.Sector
	defer func() { run.done(ctx, err) }()

	now := s.now()
	e := &domain.Entry{
		ID:          uuid.New().String(),
		Sector:      req.Sector,
		Operator:    req.Operator,
		Equipment:   req.Equipment,
		Oven:        req.Oven,
		Color:       req.Color,
		PaintKg:     req.PaintKg,
		ProjectType: req.ProjectType,
		SKU:         req.SKU,
		OrderRef:    req.OrderRef,
		Description: req.Description,
		StartedAt:   req.StartedAt,
		Status:      domain.StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.Sector.HasItems() {
		for _, li := range rationing.Retain(req.Items) {
			e.Items = append(e.Items, domain.EntryItem{
				SKU:         li.SKU,
				Description: li.Description,
				OrderRef:    li.OrderRef,
				Quantity:    li.Quantity,
				Status:      domain.StatusActive,
			})
		}
	}
	if err = e.Validate(); err != nil {
		return nil, err
	}
	run.describe(e)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txEntries := repository.NewSQLiteEntryRepo(tx)
		txItems := repository.NewSQLiteEntryItemRepo(tx)

		if err := txEntries.Create(ctx, e); err != nil {
			return err
		}
		if err := txItems.CreateAll(ctx, e.ID, e.Items); err != nil {
			return err
		}
		if req.EndedAt == nil {
			return nil
		}
		if err := e.Finalize(*req.EndedAt, req.ExtraHours, s.total(e, *req.EndedAt, req.ExtraHours), s.now()); err != nil {
			return err
		}
		return s.store(ctx, txEntries, txItems, e)
	})
	if err != nil {
		return nil, err
	}
	run.describe(e)
	return e, nil
}

func (s *entryService) Finalize(ctx context.Context, id string, req FinalizeRequest) (entry *domain.Entry, err error) {
	run := startUseCase(s.observer, "finalize-entry")
	run.event.EntryID = id
	defer func() { run.done(ctx, err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txEntries := repository.NewSQLiteEntryRepo(tx)
		txItems := repository.NewSQLiteEntryItemRepo(tx)

		e, err := loadEntry(ctx, txEntries, txItems, id)
		if err != nil {
			return err
		}
		run.describe(e)
		if err := e.Finalize(req.EndedAt, req.ExtraHours, s.total(e, req.EndedAt, req.ExtraHours), s.now()); err != nil {
			return err
		}
		entry = e
		return s.store(ctx, txEntries, txItems, e)
	})
	if err != nil {
		return nil, err
	}
	run.describe(entry)
	return entry, nil
}

// Edit corrects a stored entry. When a finalized entry's start, end, extra
// hours or paint kg change, its total is recomputed and its items rationed
// again in the same transaction. Setting an end on an in-progress entry
// finalizes it.
func (s *entryService) Edit(ctx context.Context, id string, req EditRequest) (entry *domain.Entry, err error) {
	run := startUseCase(s.observer, "edit-entry")
	run.event.EntryID = id
	defer func() { run.done(ctx, err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txEntries := repository.NewSQLiteEntryRepo(tx)
		txItems := repository.NewSQLiteEntryItemRepo(tx)

		e, err := loadEntry(ctx, txEntries, txItems, id)
		if err != nil {
			return err
		}
		run.describe(e)
		if !e.Active() {
			return domain.ErrInactive
		}

		changed, err := req.apply(e)
		if err != nil {
			return err
		}
		run.set("changed", strings.Join(changed, ","))
		if len(changed) == 0 {
			entry = e
			return nil
		}
		if err := e.Validate(); err != nil {
			return err
		}
		entry = e
		if e.InProgress() || !req.retimes() {
			e.UpdatedAt = s.now()
			return txEntries.Update(ctx, e)
		}
		if err := e.Close(*e.EndedAt, e.ExtraHours, s.total(e, *e.EndedAt, e.ExtraHours), s.now()); err != nil {
			return err
		}
		return s.store(ctx, txEntries, txItems, e)
	})
	if err != nil {
		return nil, err
	}
	run.describe(entry)
	return entry, nil
}

func (s *entryService) total(e *domain.Entry, end time.Time, extra float64) float64 {
	return workhours.TotalHours(e.Span(end), s.calendar, extra, e.Sector.Policy())
}

// store writes a closed entry and rations its total over the items. It must
// run inside the caller's transaction.
func (s *entryService) store(ctx context.Context, entries *repository.SQLiteEntryRepo, items *repository.SQLiteEntryItemRepo, e *domain.Entry) error {
	if err := entries.Update(ctx, e); err != nil {
		return err
	}
	if len(e.Items) == 0 {
		return nil
	}

	plan := rationing.NewPlan(e.LineItems())
	var kg []rationing.Share
	if e.Sector.RationsMass() {
		kg = plan.Distribute(e.PaintKg)
	}
	e.ApplyRationing(plan.Distribute(e.Hours()), kg)
	return items.UpdateRationing(ctx, e.Items)
}

func loadEntry(ctx context.Context, entries repository.EntryRepo, items repository.EntryItemRepo, id string) (*domain.Entry, error) {
	e, err := entries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e.Items, err = items.ListByEntry(ctx, id); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *entryService) Preview(sector domain.Sector, in workhours.PreviewInput) (*float64, error) {
	return workhours.Preview(in, s.calendar, sector.Policy())
}

func (s *entryService) Get(ctx context.Context, id string) (*domain.Entry, error) {
	return loadEntry(ctx, s.entries, s.items, id)
}

func (s *entryService) List(ctx context.Context, f repository.EntryFilter) ([]*domain.Entry, error) {
	entries, err := s.entries.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if err := attachItems(ctx, s.items, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *entryService) ListInProgress(ctx context.Context) ([]*domain.Entry, error) {
	return s.List(ctx, repository.EntryFilter{InProgressOnly: true})
}

func (s *entryService) Inactivate(ctx context.Context, id string) error {
	return s.entries.SetStatus(ctx, id, domain.StatusInactive)
}

// attachItems loads the items of all entries with a single query.
func attachItems(ctx context.Context, items repository.EntryItemRepo, entries []*domain.Entry) error {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Sector.HasItems() {
			ids = append(ids, e.ID)
		}
	}
	byEntry, err := items.ListByEntries(ctx, ids)
	if err != nil {
		return err
	}
	for _, e := range entries {
		e.Items = byEntry[e.ID]
	}
	return nil
}
