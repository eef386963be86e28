package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mariaiw8/apontamentos/internal/domain"
	"github.com/mariaiw8/apontamentos/internal/repository"
)

// utf8BOM makes spreadsheet tools read the files as UTF-8.
const utf8BOM = "\ufeff"

type exportService struct {
	entries repository.EntryRepo
	items   repository.EntryItemRepo
	catalog repository.CatalogRepo
}

func NewExportService(entries repository.EntryRepo, items repository.EntryItemRepo, catalog repository.CatalogRepo) ExportService {
	return &exportService{entries: entries, items: items, catalog: catalog}
}

type csvTable struct {
	name string
	rows [][]string
}

// Export writes the finalized entries, their items and the catalog as CSV
// files in dir, inactive rows included. It returns the written paths.
func (s *exportService) Export(ctx context.Context, dir string) ([]string, error) {
	entries, err := s.entries.List(ctx, repository.EntryFilter{FinalizedOnly: true, IncludeInactive: true})
	if err != nil {
		return nil, err
	}
	// Oldest first, as they were recorded.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	if err := attachItems(ctx, s.items, entries); err != nil {
		return nil, err
	}
	catalog, err := s.catalog.List(ctx, "", true)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating export directory: %w", err)
	}

	tables := append(entryTables(entries), catalogTables(catalog)...)
	paths := make([]string, 0, len(tables))
	for _, t := range tables {
		path := filepath.Join(dir, t.name)
		if err := writeCSV(path, t.rows); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func entryTables(entries []*domain.Entry) []csvTable {
	project := csvTable{"Apontamentos_Projeto.csv", [][]string{{"ID", "Data", "Data_Termino", "Operador", "Tipo", "SKU", "OP", "Descricao", "Hora_Inicio", "Hora_Termino", "Horas_Extras", "Horas_Total", "Status"}}}
	cut := csvTable{"Apontamentos_Corte.csv", [][]string{{"ID", "Data", "Data_Termino", "Operador", "Equipamento", "OP", "Hora_Inicio", "Hora_Termino", "Horas_Extras", "Horas_Total", "Status"}}}
	cutItems := csvTable{"Apontamentos_Corte_Itens.csv", [][]string{{"ID_Apontamento", "SKU", "Descricao", "Quantidade", "Horas_Rateadas", "Status"}}}
	weld := csvTable{"Apontamentos_Solda.csv", [][]string{{"ID", "Data", "Data_Termino", "Operador", "Hora_Inicio", "Hora_Termino", "Horas_Extras", "Horas_Total", "Status"}}}
	weldItems := csvTable{"Apontamentos_Solda_Itens.csv", [][]string{{"ID_Apontamento_Solda", "SKU", "Descricao", "OP", "Quantidade", "Horas_Rateadas", "Status"}}}
	paint := csvTable{"Apontamentos_Pintura.csv", [][]string{{"ID_Fornada", "Data", "Data_Termino", "Forno", "Cor", "Kgs_Tinta", "Hora_Inicio", "Hora_Termino", "Horas_Extras", "Horas_Total", "Status"}}}
	paintItems := csvTable{"Apontamentos_Pintura_Itens.csv", [][]string{{"ID_Fornada", "SKU", "Descricao", "OP", "Quantidade", "Horas_Rateadas", "Kgs_Rateados", "Status"}}}

	for _, e := range entries {
		startDate, startClock := splitTime(e.StartedAt.Format("2006-01-02 15:04"))
		var endDate, endClock string
		if e.EndedAt != nil {
			endDate, endClock = splitTime(e.EndedAt.Format("2006-01-02 15:04"))
		}
		extra, total, status := formatFloat(e.ExtraHours), formatFloat(e.Hours()), string(e.Status)

		switch e.Sector {
		case domain.SectorProject:
			project.rows = append(project.rows, []string{e.ID, startDate, endDate, e.Operator, e.ProjectType, e.SKU, e.OrderRef, e.Description, startClock, endClock, extra, total, status})
		case domain.SectorCut:
			cut.rows = append(cut.rows, []string{e.ID, startDate, endDate, e.Operator, e.Equipment, e.OrderRef, startClock, endClock, extra, total, status})
			for _, it := range e.Items {
				cutItems.rows = append(cutItems.rows, []string{e.ID, it.SKU, it.Description, formatFloat(it.Quantity), formatOptional(it.RationedHours), string(it.Status)})
			}
		case domain.SectorWeld:
			weld.rows = append(weld.rows, []string{e.ID, startDate, endDate, e.Operator, startClock, endClock, extra, total, status})
			for _, it := range e.Items {
				weldItems.rows = append(weldItems.rows, []string{e.ID, it.SKU, it.Description, it.OrderRef, formatFloat(it.Quantity), formatOptional(it.RationedHours), string(it.Status)})
			}
		case domain.SectorPaint:
			paint.rows = append(paint.rows, []string{e.ID, startDate, endDate, e.Oven, e.Color, formatFloat(e.PaintKg), startClock, endClock, extra, total, status})
			for _, it := range e.Items {
				paintItems.rows = append(paintItems.rows, []string{e.ID, it.SKU, it.Description, it.OrderRef, formatFloat(it.Quantity), formatOptional(it.RationedHours), formatOptional(it.RationedKg), string(it.Status)})
			}
		}
	}
	return []csvTable{project, cut, cutItems, weld, weldItems, paint, paintItems}
}

func catalogTables(catalog []*domain.CatalogEntry) []csvTable {
	ops := csvTable{"Operadores.csv", [][]string{{"Nome", "Setor", "Status"}}}
	equip := csvTable{"Equipamentos.csv", [][]string{{"Nome", "Setor", "Status"}}}
	colors := csvTable{"Cores.csv", [][]string{{"Nome", "Custo_Kg", "Status"}}}
	ovens := csvTable{"Fornos.csv", [][]string{{"Nome", "Status"}}}
	types := csvTable{"Tipos.csv", [][]string{{"Nome", "Status"}}}

	for _, c := range catalog {
		status := string(c.Status)
		switch c.Kind {
		case domain.CatalogOperators:
			ops.rows = append(ops.rows, []string{c.Name, c.Sector.Label(), status})
		case domain.CatalogEquipment:
			equip.rows = append(equip.rows, []string{c.Name, c.Sector.Label(), status})
		case domain.CatalogColors:
			colors.rows = append(colors.rows, []string{c.Name, formatOptional(c.CostPerKg), status})
		case domain.CatalogOvens:
			ovens.rows = append(ovens.rows, []string{c.Name, status})
		case domain.CatalogProjectTypes:
			types.rows = append(types.rows, []string{c.Name, status})
		}
	}
	return []csvTable{ops, equip, colors, ovens, types}
}

func writeCSV(path string, rows [][]string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", filepath.Base(path), cerr)
		}
	}()

	if _, err := f.WriteString(utf8BOM); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}

func splitTime(s string) (date, clock string) {
	return s[:10], s[11:]
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}
