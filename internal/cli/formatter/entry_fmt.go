package formatter

import (
	"fmt"
	"strings"

	"github.com/mariaiw8/apontamentos/internal/domain"
)

// FormatEntryList renders entries as a table, newest first as given.
func FormatEntryList(entries []*domain.Entry) string {
	if len(entries) == 0 {
		return Dim("No entries.") + "\n"
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		hours := "-"
		if !e.InProgress() {
			hours = Decimal(e.Hours())
		}
		items := "-"
		if e.Sector.HasItems() {
			items = fmt.Sprintf("%d", len(e.Items))
		}
		rows = append(rows, []string{
			TruncID(e.ID),
			SectorBadge(e.Sector),
			domain.OrDash(e.Column()),
			WallClock(e.StartedAt),
			WallClockPtr(e.EndedAt),
			hours,
			items,
			ProgressPill(e),
		})
	}
	return RenderTable([]string{"ID", "SETOR", "COLUNA", "INÍCIO", "FIM", "HORAS", "ITENS", "STATUS"}, rows)
}

// FormatEntry renders one entry with its fields and, for batches, a tree of
// its items and their rationed shares.
func FormatEntry(e *domain.Entry) string {
	var b strings.Builder
	field := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(&b, "%s %s\n", Dim(fmt.Sprintf("%-11s", label)), value)
	}

	field("ID", e.ID)
	field("Setor", SectorBadge(e.Sector))
	field("Status", ProgressPill(e))
	field("Operador", e.Operator)
	field("Equipamento", e.Equipment)
	field("Forno", e.Oven)
	field("Cor", e.Color)
	if e.Sector == domain.SectorPaint {
		field("Kg tinta", Decimal(e.PaintKg))
	}
	field("Tipo", e.ProjectType)
	field("SKU", e.SKU)
	field("OP", e.OrderRef)
	field("Descrição", e.Description)
	field("Início", WallClock(e.StartedAt))
	if !e.InProgress() {
		field("Fim", WallClockPtr(e.EndedAt))
		field("Extras", Decimal(e.ExtraHours))
		field("Total", Bold(Decimal(e.Hours())+" h")+" "+Dim("("+FormatHours(e.Hours())+")"))
	}

	if len(e.Items) > 0 {
		b.WriteString("\n")
		items := make([]TreeItem, 0, len(e.Items)+1)
		items = append(items, TreeItem{Title: Bold(fmt.Sprintf("%d itens", len(e.Items)))})
		for i, it := range e.Items {
			title := it.SKU
			if it.Description != "" {
				title += " " + Dim(it.Description)
			}
			detail := "qtd " + trimDecimal(it.Quantity)
			if it.RationedHours != nil {
				detail += " · " + Decimal(*it.RationedHours) + " h"
			}
			if it.RationedKg != nil {
				detail += " · " + Decimal(*it.RationedKg) + " kg"
			}
			items = append(items, TreeItem{
				Title:  title,
				Level:  1,
				IsLast: i == len(e.Items)-1,
				Done:   it.RationedHours != nil,
				Detail: detail,
			})
		}
		b.WriteString(RenderTree(items))
	}

	return RenderBox(e.Sector.Label(), strings.TrimRight(b.String(), "\n"))
}

// FormatPreview renders a live total, or a hint while the input is incomplete.
func FormatPreview(hours *float64) string {
	if hours == nil {
		return Dim("insufficient input: start and end date and time are required") + "\n"
	}
	return fmt.Sprintf("%s %s\n", Bold(Decimal(*hours)+" h"), Dim("("+FormatHours(*hours)+")"))
}

func trimDecimal(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
