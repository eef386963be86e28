package formatter

import (
	"github.com/mariaiw8/apontamentos/internal/domain"
)

// FormatCatalog renders catalog entries of one or more kinds.
func FormatCatalog(entries []*domain.CatalogEntry) string {
	if len(entries) == 0 {
		return Dim("Catalog is empty. Run 'apontamentos catalog seed' to install the defaults.") + "\n"
	}
	rows := make([][]string, 0, len(entries))
	for _, c := range entries {
		sector := "-"
		if c.Sector != "" {
			sector = SectorBadge(c.Sector)
		}
		rows = append(rows, []string{
			TruncID(c.ID),
			string(c.Kind),
			c.Name,
			sector,
			DecimalPtr(c.CostPerKg),
			StatusPill(c.Status),
		})
	}
	return RenderTable([]string{"ID", "CADASTRO", "NOME", "SETOR", "CUSTO/KG", "STATUS"}, rows)
}
