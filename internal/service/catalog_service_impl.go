package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mariaiw8/apontamentos/internal/db"
	"github.com/mariaiw8/apontamentos/internal/domain"
	"github.com/mariaiw8/apontamentos/internal/importer"
	"github.com/mariaiw8/apontamentos/internal/repository"
)

type catalogService struct {
	catalog repository.CatalogRepo
	uow     db.UnitOfWork
}

func NewCatalogService(catalog repository.CatalogRepo, uow db.UnitOfWork) CatalogService {
	return &catalogService{catalog: catalog, uow: uow}
}

func (s *catalogService) Add(ctx context.Context, c *domain.CatalogEntry) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return fmt.Errorf("catalog entry name is required")
	}
	if _, err := domain.ParseCatalogKind(string(c.Kind)); err != nil {
		return err
	}
	if c.Kind.HasSector() {
		sector, err := domain.ParseSector(string(c.Sector))
		if err != nil {
			return fmt.Errorf("%s need a sector: %w", c.Kind, err)
		}
		c.Sector = sector
	} else {
		c.Sector = ""
	}
	if c.Kind != domain.CatalogColors {
		c.CostPerKg = nil
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Status == "" {
		c.Status = domain.StatusActive
	}
	c.CreatedAt = time.Now().UTC()
	return s.catalog.Create(ctx, c)
}

func (s *catalogService) List(ctx context.Context, kind domain.CatalogKind, includeInactive bool) ([]*domain.CatalogEntry, error) {
	return s.catalog.List(ctx, kind, includeInactive)
}

func (s *catalogService) Deactivate(ctx context.Context, id string) error {
	return s.catalog.SetStatus(ctx, id, domain.StatusInactive)
}

// Update renames an entry or changes its sector or cost. The checks are the
// ones a catalog import applies to each of its entries.
func (s *catalogService) Update(ctx context.Context, id string, u CatalogUpdate) (*domain.CatalogEntry, error) {
	var updated *domain.CatalogEntry
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteCatalogRepo(tx)
		c, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		item := importer.CatalogItemImport{Name: c.Name, Sector: string(c.Sector), CostPerKg: c.CostPerKg}
		if u.Name != nil {
			item.Name = *u.Name
		}
		if u.Sector != nil {
			item.Sector = *u.Sector
		}
		if u.CostPerKg != nil {
			item.CostPerKg = u.CostPerKg
		}
		name, sector, errs := importer.ValidateCatalogItem(c.Kind, item)
		if len(errs) > 0 {
			return fmt.Errorf("editing %s %q: %w", c.Kind, c.Name, errors.Join(errs...))
		}

		c.Name, c.Sector, c.CostPerKg = name, sector, item.CostPerKg
		if err := repo.Update(ctx, c); err != nil {
			return fmt.Errorf("editing %s %q: %w", c.Kind, c.Name, err)
		}
		updated = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Seed installs the shop's starting catalog when no entry exists yet and
// returns how many entries it added.
func (s *catalogService) Seed(ctx context.Context) (int, error) {
	n, err := s.catalog.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	seed := initialCatalog()
	now := time.Now().UTC()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteCatalogRepo(tx)
		for _, c := range seed {
			c.ID = uuid.New().String()
			c.Status = domain.StatusActive
			c.CreatedAt = now
			if err := repo.Create(ctx, c); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("seeding catalog: %w", err)
	}
	return len(seed), nil
}

func (s *catalogService) Import(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadCatalogImport(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	if errs := importer.ValidateCatalogImport(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}
	incoming := importer.Convert(schema)

	var added int
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteCatalogRepo(tx)
		existing, err := repo.List(ctx, "", true)
		if err != nil {
			return err
		}
		for _, c := range importer.Missing(existing, incoming) {
			if err := repo.Create(ctx, c); err != nil {
				return fmt.Errorf("creating %s %q: %w", c.Kind, c.Name, err)
			}
			added++
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("importing catalog: %w", err)
	}
	return &ImportResult{Added: added, Skipped: len(incoming) - added}, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}

func initialCatalog() []*domain.CatalogEntry {
	var out []*domain.CatalogEntry
	add := func(kind domain.CatalogKind, sector domain.Sector, names ...string) {
		for _, n := range names {
			out = append(out, &domain.CatalogEntry{Kind: kind, Name: n, Sector: sector})
		}
	}
	color := func(name string, cost float64) {
		out = append(out, &domain.CatalogEntry{Kind: domain.CatalogColors, Name: name, CostPerKg: &cost})
	}

	add(domain.CatalogOperators, domain.SectorCut, "Neri", "Aroeira", "André")
	add(domain.CatalogOperators, domain.SectorWeld, "Neri", "Aroeira", "André")
	add(domain.CatalogOperators, domain.SectorProject, "Rafael", "Jonathan", "Sidney", "Wellington")
	add(domain.CatalogEquipment, domain.SectorCut, "-", "Dobradeira", "Corte à Laser")
	color("Branco", 25.00)
	color("Preto", 28.00)
	color("Cinza", 26.50)
	add(domain.CatalogOvens, "", "Forno 1", "Forno 2")
	add(domain.CatalogProjectTypes, "", "Projeto", "Alteração Projeto", "Detalhamento",
		"Alteração Detalhamento", "Documentação", "Teste")
	return out
}
