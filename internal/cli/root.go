package cli

import (
	"time"

	"github.com/mariaiw8/apontamentos/internal/service"
	"github.com/mariaiw8/apontamentos/internal/workhours"
	"github.com/spf13/cobra"
)

// App holds the services and settings the commands run against.
type App struct {
	Entries service.EntryService
	Board   service.BoardService
	Reports service.ReportService
	Export  service.ExportService
	Catalog service.CatalogService

	Calendar       workhours.Calendar
	CalendarSource string

	// IsInteractive reports whether forms may prompt on the terminal.
	IsInteractive func() bool
	// Now is the clock used for form defaults.
	Now func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// NewRootCmd creates the top-level "apontamentos" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "apontamentos",
		Short:         "Shop-floor time entries with business-hours totals and batch rationing",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newEntryCmd(app),
		newHoursCmd(app),
		newCalendarCmd(app),
		newBoardCmd(app),
		newRecordsCmd(app),
		newSummaryCmd(app),
		newExportCmd(app),
		newCatalogCmd(app),
	)

	return root
}
