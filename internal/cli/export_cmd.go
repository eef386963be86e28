package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/mariaiw8/apontamentos/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the finalized entries and catalogs as CSV files",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := app.Export.Export(context.Background(), dir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Exported %d files to %s\n", len(paths), dir)
			for _, p := range paths {
				fmt.Fprintf(out, "  %s\n", formatter.Dim(filepath.Base(p)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "Destination directory")

	return cmd
}
