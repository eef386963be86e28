package cli

import (
	"context"
	"fmt"

	"github.com/mariaiw8/apontamentos/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newBoardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "board",
		Aliases: []string{"kanban"},
		Short:   "Show in-progress entries per sector, one column per resource",
		RunE: func(cmd *cobra.Command, args []string) error {
			groups, err := app.Board.Board(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatBoard(groups))
			return nil
		},
	}
}
