package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mariaiw8/apontamentos/internal/cli"
	"github.com/mariaiw8/apontamentos/internal/config"
	"github.com/mariaiw8/apontamentos/internal/db"
	"github.com/mariaiw8/apontamentos/internal/repository"
	"github.com/mariaiw8/apontamentos/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	entryRepo := repository.NewSQLiteEntryRepo(database)
	itemRepo := repository.NewSQLiteEntryItemRepo(database)
	catalogRepo := repository.NewSQLiteCatalogRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	catalogSvc := service.NewCatalogService(catalogRepo, uow)
	// A fresh database starts with the shop's default catalog.
	if _, err := catalogSvc.Seed(context.Background()); err != nil {
		return err
	}

	calendarSource := "default"
	if cfg.CalendarPath != "" {
		calendarSource = cfg.CalendarPath
	}

	app := &cli.App{
		Entries:        service.NewEntryService(entryRepo, itemRepo, uow, cfg.Calendar, observers...),
		Board:          service.NewBoardService(entryRepo, itemRepo, catalogRepo),
		Reports:        service.NewReportService(entryRepo, itemRepo),
		Export:         service.NewExportService(entryRepo, itemRepo, catalogRepo),
		Catalog:        catalogSvc,
		Calendar:       cfg.Calendar,
		CalendarSource: calendarSource,
	}

	// Forms only prompt on a real terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
