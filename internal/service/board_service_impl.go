package service

import (
	"context"
	"sort"

	"github.com/mariaiw8/apontamentos/internal/domain"
	"github.com/mariaiw8/apontamentos/internal/repository"
)

type boardService struct {
	entries repository.EntryRepo
	items   repository.EntryItemRepo
	catalog repository.CatalogRepo
}

func NewBoardService(entries repository.EntryRepo, items repository.EntryItemRepo, catalog repository.CatalogRepo) BoardService {
	return &boardService{entries: entries, items: items, catalog: catalog}
}

// Board groups the in-progress entries of every sector into kanban columns.
// Registered columns always appear, even when empty, sorted by name; values
// found only on entries are appended after them.
func (s *boardService) Board(ctx context.Context) ([]BoardColumnGroup, error) {
	open, err := s.entries.List(ctx, repository.EntryFilter{InProgressOnly: true})
	if err != nil {
		return nil, err
	}
	if err := attachItems(ctx, s.items, open); err != nil {
		return nil, err
	}
	catalog, err := s.catalog.List(ctx, "", false)
	if err != nil {
		return nil, err
	}

	bySector := make(map[domain.Sector][]*domain.Entry)
	for _, e := range open {
		bySector[e.Sector] = append(bySector[e.Sector], e)
	}

	groups := make([]BoardColumnGroup, 0, len(domain.Sectors))
	for _, sector := range domain.Sectors {
		groups = append(groups, buildGroup(sector, boardColumnNames(sector, catalog), bySector[sector]))
	}
	return groups, nil
}

// boardColumnNames returns the registered column names of a sector.
func boardColumnNames(sector domain.Sector, catalog []*domain.CatalogEntry) []string {
	var kind domain.CatalogKind
	filterSector := false
	switch sector {
	case domain.SectorProject, domain.SectorWeld:
		kind, filterSector = domain.CatalogOperators, true
	case domain.SectorCut:
		kind = domain.CatalogEquipment
	case domain.SectorPaint:
		kind = domain.CatalogOvens
	}

	seen := make(map[string]bool)
	var names []string
	for _, c := range catalog {
		if c.Kind != kind || (filterSector && c.Sector != sector) || seen[c.Name] {
			continue
		}
		seen[c.Name] = true
		names = append(names, c.Name)
	}
	sort.Strings(names)
	return names
}

func buildGroup(sector domain.Sector, names []string, entries []*domain.Entry) BoardColumnGroup {
	index := make(map[string]int, len(names))
	cols := make([]BoardColumn, len(names))
	for i, n := range names {
		cols[i] = BoardColumn{Name: n}
		index[n] = i
	}

	var extra []string
	extraEntries := make(map[string][]*domain.Entry)
	for _, e := range entries {
		name := domain.OrDash(e.Column())
		if i, ok := index[name]; ok {
			cols[i].Entries = append(cols[i].Entries, e)
			continue
		}
		if _, ok := extraEntries[name]; !ok {
			extra = append(extra, name)
		}
		extraEntries[name] = append(extraEntries[name], e)
	}
	sort.Strings(extra)
	for _, n := range extra {
		cols = append(cols, BoardColumn{Name: n, Entries: extraEntries[n]})
	}
	return BoardColumnGroup{Sector: sector, Columns: cols}
}
