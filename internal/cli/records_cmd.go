package cli

import (
	"context"
	"fmt"

	"github.com/mariaiw8/apontamentos/internal/cli/formatter"
	"github.com/mariaiw8/apontamentos/internal/service"
	"github.com/spf13/cobra"
)

func newRecordsCmd(app *App) *cobra.Command {
	var sku, operator, sectorStr, equipment string

	cmd := &cobra.Command{
		Use:   "records",
		Short: "List consolidated finalized records, one per item",
		RunE: func(cmd *cobra.Command, args []string) error {
			sector, err := parseSectorFlag(sectorStr)
			if err != nil {
				return err
			}
			recs, err := app.Reports.Records(context.Background(), service.RecordFilter{
				SKU:       sku,
				Operator:  operator,
				Sector:    sector,
				Equipment: equipment,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(recs) == 0 {
				fmt.Fprintln(out, "No records found.")
				return nil
			}
			fmt.Fprintln(out, formatter.FormatRecords(recs))
			return nil
		},
	}

	cmd.Flags().StringVar(&sku, "sku", "", "SKU substring (case-insensitive)")
	cmd.Flags().StringVar(&operator, "operator", "", "Exact operator")
	cmd.Flags().StringVar(&sectorStr, "sector", "", "Exact sector")
	cmd.Flags().StringVar(&equipment, "equipment", "", "Exact equipment or oven")

	return cmd
}

func newSummaryCmd(app *App) *cobra.Command {
	var sectorStr, operator string

	cmd := &cobra.Command{
		Use:   "summary SKU",
		Short: "Summarize the production history of one SKU",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sector, err := parseSectorFlag(sectorStr)
			if err != nil {
				return err
			}
			s, err := app.Reports.Summary(context.Background(), args[0], service.SummaryFilter{
				Sector:   sector,
				Operator: operator,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSummary(s))
			return nil
		},
	}

	cmd.Flags().StringVar(&sectorStr, "sector", "", "Narrow the history to one sector")
	cmd.Flags().StringVar(&operator, "operator", "", "Narrow the history to one operator")

	return cmd
}
