package cli

import (
	"context"
	"fmt"

	"github.com/mariaiw8/apontamentos/internal/cli/formatter"
	"github.com/mariaiw8/apontamentos/internal/repository"
	"github.com/mariaiw8/apontamentos/internal/service"
	"github.com/mariaiw8/apontamentos/internal/workhours"
	"github.com/spf13/cobra"
)

func newEntryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "entry",
		Aliases: []string{"apontamento"},
		Short:   "Open, finalize and inspect time entries",
	}

	cmd.AddCommand(
		newEntryOpenCmd(app),
		newEntryFinalizeCmd(app),
		newEntryEditCmd(app),
		newEntryPreviewCmd(app),
		newEntryListCmd(app),
		newEntryShowCmd(app),
		newEntryRemoveCmd(app),
	)

	return cmd
}

func newEntryOpenCmd(app *App) *cobra.Command {
	var (
		sectorStr, start, end, extra                  string
		operator, equipment, oven, color, projectType string
		sku, orderRef, description                    string
		kg                                            float64
		items                                         itemsFlag
	)

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Start a time entry (finalize it at once with --end)",
		RunE: func(cmd *cobra.Command, args []string) error {
			sector, err := parseSectorFlag(sectorStr)
			if err != nil {
				return err
			}
			if sector == "" {
				return fmt.Errorf("--sector is required")
			}

			startedAt, err := workhours.ParseDateTime(start)
			if err != nil {
				return fmt.Errorf("invalid --start: %w", err)
			}
			adj, err := workhours.ParseAdjustment(extra)
			if err != nil {
				return fmt.Errorf("invalid --extra: %w", err)
			}

			req := service.OpenRequest{
				Sector:      sector,
				Operator:    operator,
				Equipment:   equipment,
				Oven:        oven,
				Color:       color,
				PaintKg:     kg,
				ProjectType: projectType,
				SKU:         sku,
				OrderRef:    orderRef,
				Description: description,
				StartedAt:   startedAt,
				ExtraHours:  adj,
				Items:       items.rows,
			}
			if end != "" {
				endedAt, err := workhours.ParseDateTime(end)
				if err != nil {
					return fmt.Errorf("invalid --end: %w", err)
				}
				req.EndedAt = &endedAt
			}

			e, err := app.Entries.Open(context.Background(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if e.InProgress() {
				fmt.Fprintf(out, "Opened %s entry %s\n", e.Sector.Label(), formatter.TruncID(e.ID))
			} else {
				fmt.Fprintf(out, "Recorded %s entry %s: %s h\n", e.Sector.Label(), formatter.TruncID(e.ID), formatter.Decimal(e.Hours()))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sectorStr, "sector", "", "Sector (projeto, corte, solda, pintura)")
	cmd.Flags().StringVar(&start, "start", "", "Start (YYYY-MM-DD HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End (YYYY-MM-DD HH:MM); finalizes immediately")
	cmd.Flags().StringVar(&extra, "extra", "", "Extra hours added to the computed total")
	cmd.Flags().StringVar(&operator, "operator", "", "Operator name")
	cmd.Flags().StringVar(&equipment, "equipment", "", "Cutting equipment (corte)")
	cmd.Flags().StringVar(&oven, "oven", "", "Oven (pintura)")
	cmd.Flags().StringVar(&color, "color", "", "Paint color (pintura)")
	cmd.Flags().Float64Var(&kg, "kg", 0, "Paint consumed in kg (pintura)")
	cmd.Flags().StringVar(&projectType, "type", "", "Project type (projeto)")
	cmd.Flags().StringVar(&sku, "sku", "", "SKU (projeto)")
	cmd.Flags().StringVar(&orderRef, "op", "", "Production order reference")
	cmd.Flags().StringVar(&description, "description", "", "Free-text description")
	cmd.Flags().Var(&items, "item", "Batch item SKU:QTY[:OP[:DESCRIPTION]] (repeatable)")
	_ = cmd.MarkFlagRequired("sector")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func newEntryFinalizeCmd(app *App) *cobra.Command {
	var end, extra string

	cmd := &cobra.Command{
		Use:   "finalize ID",
		Short: "Close an in-progress entry and ration its hours",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveEntryID(ctx, app, args[0])
			if err != nil {
				return err
			}

			if end == "" {
				if !app.interactive() {
					return fmt.Errorf("--end is required")
				}
				end, extra, err = runFinalizeForm(ctx, app, id)
				if err != nil {
					return err
				}
			}

			endedAt, err := workhours.ParseDateTime(end)
			if err != nil {
				return fmt.Errorf("invalid --end: %w", err)
			}
			adj, err := workhours.ParseAdjustment(extra)
			if err != nil {
				return fmt.Errorf("invalid --extra: %w", err)
			}

			e, err := app.Entries.Finalize(ctx, id, service.FinalizeRequest{EndedAt: endedAt, ExtraHours: adj})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatEntry(e))
			return nil
		},
	}

	cmd.Flags().StringVar(&end, "end", "", "End (YYYY-MM-DD HH:MM)")
	cmd.Flags().StringVar(&extra, "extra", "", "Extra hours added to the computed total")

	return cmd
}

func newEntryEditCmd(app *App) *cobra.Command {
	var (
		start, end, extra                             string
		operator, equipment, oven, color, projectType string
		sku, orderRef, description                    string
		kg                                            float64
	)

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Correct an entry; new times on a finalized entry re-ration its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveEntryID(ctx, app, args[0])
			if err != nil {
				return err
			}

			var req service.EditRequest
			flags := cmd.Flags()
			for name, dst := range map[string]**string{
				"operator":    &req.Operator,
				"equipment":   &req.Equipment,
				"oven":        &req.Oven,
				"color":       &req.Color,
				"type":        &req.ProjectType,
				"sku":         &req.SKU,
				"op":          &req.OrderRef,
				"description": &req.Description,
			} {
				if flags.Changed(name) {
					v, _ := flags.GetString(name)
					*dst = &v
				}
			}
			if flags.Changed("kg") {
				req.PaintKg = &kg
			}
			if flags.Changed("start") {
				t, err := workhours.ParseDateTime(start)
				if err != nil {
					return fmt.Errorf("invalid --start: %w", err)
				}
				req.StartedAt = &t
			}
			if flags.Changed("end") {
				t, err := workhours.ParseDateTime(end)
				if err != nil {
					return fmt.Errorf("invalid --end: %w", err)
				}
				req.EndedAt = &t
			}
			if flags.Changed("extra") {
				adj, err := workhours.ParseAdjustment(extra)
				if err != nil {
					return fmt.Errorf("invalid --extra: %w", err)
				}
				req.ExtraHours = &adj
			}

			e, err := app.Entries.Edit(ctx, id, req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatEntry(e))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "New start (YYYY-MM-DD HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "New end (YYYY-MM-DD HH:MM); finalizes an in-progress entry")
	cmd.Flags().StringVar(&extra, "extra", "", "New extra hours")
	cmd.Flags().StringVar(&operator, "operator", "", "Operator name")
	cmd.Flags().StringVar(&equipment, "equipment", "", "Cutting equipment (corte)")
	cmd.Flags().StringVar(&oven, "oven", "", "Oven (pintura)")
	cmd.Flags().StringVar(&color, "color", "", "Paint color (pintura)")
	cmd.Flags().Float64Var(&kg, "kg", 0, "Paint consumed in kg (pintura)")
	cmd.Flags().StringVar(&projectType, "type", "", "Project type (projeto)")
	cmd.Flags().StringVar(&sku, "sku", "", "SKU (projeto)")
	cmd.Flags().StringVar(&orderRef, "op", "", "Production order reference")
	cmd.Flags().StringVar(&description, "description", "", "Free-text description")

	return cmd
}

// runFinalizeForm prompts for the end of an entry, previewing the total as
// the operator types. It returns the end as "YYYY-MM-DD HH:MM" and the raw
// extra-hours text.
func runFinalizeForm(ctx context.Context, app *App, id string) (string, string, error) {
	e, err := app.Entries.Get(ctx, id)
	if err != nil {
		return "", "", err
	}

	now := app.now()
	v := finalizeValues{
		EndDate:  now.Format("2006-01-02"),
		EndClock: now.Format("15:04"),
	}
	preview := func(fv finalizeValues) string {
		h, err := app.Entries.Preview(e.Sector, workhours.PreviewInput{
			StartDate:  e.StartedAt.Format("2006-01-02"),
			StartClock: e.StartedAt.Format("15:04"),
			EndDate:    fv.EndDate,
			EndClock:   fv.EndClock,
			Adjustment: fv.Extra,
		})
		if err != nil {
			return err.Error()
		}
		return "Total: " + formatter.FormatPreview(h)
	}

	if err := finalizeForm(&v, preview).Run(); err != nil {
		return "", "", err
	}
	return v.EndDate + " " + v.EndClock, v.Extra, nil
}

func newEntryPreviewCmd(app *App) *cobra.Command {
	var sectorStr, startDate, startClock, endDate, endClock, extra string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Compute the total an entry would get, without saving",
		RunE: func(cmd *cobra.Command, args []string) error {
			sector, err := parseSectorFlag(sectorStr)
			if err != nil {
				return err
			}
			if sector == "" {
				return fmt.Errorf("--sector is required")
			}
			h, err := app.Entries.Preview(sector, workhours.PreviewInput{
				StartDate:  startDate,
				StartClock: startClock,
				EndDate:    endDate,
				EndClock:   endClock,
				Adjustment: extra,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPreview(h))
			return nil
		},
	}

	cmd.Flags().StringVar(&sectorStr, "sector", "", "Sector (projeto, corte, solda, pintura)")
	cmd.Flags().StringVar(&startDate, "start-date", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&startClock, "start-time", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&endDate, "end-date", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endClock, "end-time", "", "End time (HH:MM)")
	cmd.Flags().StringVar(&extra, "extra", "", "Extra hours")

	return cmd
}

func newEntryListCmd(app *App) *cobra.Command {
	var sectorStr string
	var inProgress, all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			sector, err := parseSectorFlag(sectorStr)
			if err != nil {
				return err
			}
			entries, err := app.Entries.List(context.Background(), repository.EntryFilter{
				Sector:          sector,
				InProgressOnly:  inProgress,
				IncludeInactive: all,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No entries found.")
				return nil
			}
			fmt.Fprintln(out, formatter.FormatEntryList(entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&sectorStr, "sector", "", "Only this sector")
	cmd.Flags().BoolVar(&inProgress, "in-progress", false, "Only entries without an end")
	cmd.Flags().BoolVar(&all, "all", false, "Include inactive entries")

	return cmd
}

func newEntryShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show an entry with its rationed items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveEntryID(ctx, app, args[0])
			if err != nil {
				return err
			}
			e, err := app.Entries.Get(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatEntry(e))
			return nil
		},
	}
}

func newEntryRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Inactivate an entry and its items",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveEntryID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Entries.Inactivate(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Inactivated entry %s\n", formatter.TruncID(id))
			return nil
		},
	}
}
