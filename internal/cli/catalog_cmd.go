package cli

import (
	"context"
	"fmt"

	"github.com/mariaiw8/apontamentos/internal/cli/formatter"
	"github.com/mariaiw8/apontamentos/internal/domain"
	"github.com/mariaiw8/apontamentos/internal/service"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "catalog",
		Aliases: []string{"cadastro"},
		Short:   "Manage operators, equipment, colors, ovens and project types",
	}

	cmd.AddCommand(
		newCatalogAddCmd(app),
		newCatalogEditCmd(app),
		newCatalogListCmd(app),
		newCatalogRemoveCmd(app),
		newCatalogSeedCmd(app),
		newCatalogImportCmd(app),
	)

	return cmd
}

func newCatalogAddCmd(app *App) *cobra.Command {
	var sectorStr string
	var cost float64

	cmd := &cobra.Command{
		Use:   "add KIND NAME",
		Short: "Register a catalog entry (operadores, equipamentos, cores, fornos, tipos)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseCatalogKind(args[0])
			if err != nil {
				return err
			}
			c := &domain.CatalogEntry{
				Kind:   kind,
				Name:   args[1],
				Sector: domain.Sector(sectorStr),
			}
			if cmd.Flags().Changed("cost") {
				c.CostPerKg = &cost
			}
			if err := app.Catalog.Add(context.Background(), c); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %q [%s]\n", c.Kind, c.Name, formatter.TruncID(c.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&sectorStr, "sector", "", "Sector (operators and equipment)")
	cmd.Flags().Float64Var(&cost, "cost", 0, "Cost per kg (colors)")

	return cmd
}

func newCatalogEditCmd(app *App) *cobra.Command {
	var name, sectorStr string
	var cost float64

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Rename a catalog entry or change its sector or cost per kg",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveCatalogID(ctx, app, args[0])
			if err != nil {
				return err
			}

			var u service.CatalogUpdate
			if cmd.Flags().Changed("name") {
				u.Name = &name
			}
			if cmd.Flags().Changed("sector") {
				u.Sector = &sectorStr
			}
			if cmd.Flags().Changed("cost") {
				u.CostPerKg = &cost
			}
			if u == (service.CatalogUpdate{}) {
				return fmt.Errorf("nothing to edit: pass --name, --sector or --cost")
			}

			c, err := app.Catalog.Update(ctx, id, u)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s %q [%s]\n", c.Kind, c.Name, formatter.TruncID(c.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&sectorStr, "sector", "", "New sector (operators and equipment)")
	cmd.Flags().Float64Var(&cost, "cost", 0, "New cost per kg (colors)")

	return cmd
}

func newCatalogListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list [KIND]",
		Short: "List catalog entries",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var kind domain.CatalogKind
			if len(args) == 1 {
				k, err := domain.ParseCatalogKind(args[0])
				if err != nil {
					return err
				}
				kind = k
			}
			entries, err := app.Catalog.List(context.Background(), kind, all)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCatalog(entries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include inactive entries")

	return cmd
}

func newCatalogRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Inactivate a catalog entry",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveCatalogID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Catalog.Deactivate(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Inactivated catalog entry %s\n", formatter.TruncID(id))
			return nil
		},
	}
}

func newCatalogSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Install the default catalog when it is empty",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.Catalog.Seed(context.Background())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if n == 0 {
				fmt.Fprintln(out, "Catalog already populated; nothing to seed.")
				return nil
			}
			fmt.Fprintf(out, "Seeded %d catalog entries.\n", n)
			return nil
		},
	}
}

func newCatalogImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Add catalog entries from a JSON file, skipping ones already registered",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Catalog.Import(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d catalog entries (%d already registered).\n", res.Added, res.Skipped)
			return nil
		},
	}
}
