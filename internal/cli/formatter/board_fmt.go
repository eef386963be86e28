package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mariaiw8/apontamentos/internal/domain"
	"github.com/mariaiw8/apontamentos/internal/service"
)

const boardColumnWidth = 26

// FormatBoard renders the in-progress kanban: one row of column cards per
// sector.
func FormatBoard(groups []service.BoardColumnGroup) string {
	total := 0
	for _, g := range groups {
		total += g.Count()
	}

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Em andamento (%d)", total)))
	b.WriteString("\n")

	for _, g := range groups {
		b.WriteString("\n")
		b.WriteString(SectorStyle(g.Sector).Bold(true).Render(fmt.Sprintf("%s (%d)", g.Sector.Label(), g.Count())))
		b.WriteString("\n")
		if len(g.Columns) == 0 {
			b.WriteString(Dim("  no columns registered") + "\n")
			continue
		}
		cards := make([]string, 0, len(g.Columns))
		for _, c := range g.Columns {
			cards = append(cards, boardCard(g.Sector, c))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
		b.WriteString("\n")
	}
	return b.String()
}

func boardCard(sector domain.Sector, c service.BoardColumn) string {
	var lines []string
	lines = append(lines, StyleBold.Render(truncate(c.Name, boardColumnWidth-4))+" "+Dim(fmt.Sprintf("(%d)", len(c.Entries))))
	if len(c.Entries) == 0 {
		lines = append(lines, Dim("vazio"))
	}
	for _, e := range c.Entries {
		lines = append(lines, Dim(e.ID[:min(8, len(e.ID))])+" "+e.StartedAt.Format("02/01 15:04"))
		lines = append(lines, "  "+truncate(cardDetail(e), boardColumnWidth-6))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(SectorStyle(sector).GetForeground()).
		Width(boardColumnWidth).
		PaddingLeft(1).
		Render(strings.Join(lines, "\n"))
}

func cardDetail(e *domain.Entry) string {
	switch e.Sector {
	case domain.SectorProject:
		return domain.OrDash(e.SKU) + " · " + domain.OrDash(e.ProjectType)
	case domain.SectorPaint:
		return e.Color + fmt.Sprintf(" · %d itens", len(e.Items))
	case domain.SectorCut:
		return domain.OrDash(e.Operator) + fmt.Sprintf(" · %d itens", len(e.Items))
	default:
		return fmt.Sprintf("%d itens", len(e.Items))
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
