package cli

import (
	"fmt"

	"github.com/mariaiw8/apontamentos/internal/cli/formatter"
	"github.com/mariaiw8/apontamentos/internal/workhours"
	"github.com/spf13/cobra"
)

func newHoursCmd(app *App) *cobra.Command {
	var start, end, extra string
	var raw bool

	cmd := &cobra.Command{
		Use:   "hours",
		Short: "Compute the hours between two instants under the shop calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := workhours.ParseDateTime(start)
			if err != nil {
				return fmt.Errorf("invalid --start: %w", err)
			}
			e, err := workhours.ParseDateTime(end)
			if err != nil {
				return fmt.Errorf("invalid --end: %w", err)
			}
			adj, err := workhours.ParseAdjustment(extra)
			if err != nil {
				return fmt.Errorf("invalid --extra: %w", err)
			}

			span := workhours.Span{Start: s, End: e}
			policy := workhours.PolicyFor(raw)
			total := workhours.TotalHours(span, app.Calendar, adj, policy)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatComputedHours(span, policy, adj, total))
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Start (YYYY-MM-DD HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End (YYYY-MM-DD HH:MM)")
	cmd.Flags().StringVar(&extra, "extra", "", "Extra hours added to the total")
	cmd.Flags().BoolVar(&raw, "raw", false, "Count raw elapsed time instead of open hours")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newCalendarCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "calendar",
		Short: "Show the working windows used for hour totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCalendar(app.Calendar, app.CalendarSource))
			return nil
		},
	}
}
