package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mariaiw8/apontamentos/internal/domain"
)

// FormatRecords renders the consolidated records with a total line.
func FormatRecords(recs []domain.Record) string {
	if len(recs) == 0 {
		return Dim("No records.") + "\n"
	}
	var total float64
	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		total += r.Hours
		qty := "-"
		if r.Quantity != nil {
			qty = trimDecimal(*r.Quantity)
		}
		rows = append(rows, []string{
			r.Date.Format("2006-01-02"),
			SectorBadge(r.Sector),
			r.Operator,
			r.Equipment,
			r.SKU,
			r.OrderRef,
			qty,
			Decimal(r.Hours),
			DecimalPtr(r.PaintKg),
		})
	}
	out := RenderTable([]string{"DATA", "SETOR", "OPERADOR", "EQUIPAMENTO", "SKU", "OP", "QTD", "HORAS", "KG"}, rows)
	return out + fmt.Sprintf("\n%s %s\n", Dim(fmt.Sprintf("%d records,", len(recs))), Bold(Decimal(total)+" h"))
}

// FormatSummary renders the per-SKU dashboard.
func FormatSummary(s *domain.SKUSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s %s\n", Dim("Horas de projeto"), Bold(Decimal(s.DesignHours)+" h"),
		Dim(fmt.Sprintf("(%d apontamentos)", s.DesignCount)))
	for _, t := range sortedKeys(s.HoursByType) {
		h := s.HoursByType[t]
		fmt.Fprintf(&b, "  %-24s %s %6s h\n", t, RenderShareBar(h, s.DesignHours, 12), Decimal(h))
	}

	fmt.Fprintf(&b, "\n%s %s\n", Dim("Corte (média por equipamento, soma)"), Bold(Decimal(s.CutMeanTotal)+" h"))
	for _, eq := range sortedKeys(s.CutMeanByEquip) {
		fmt.Fprintf(&b, "  %-24s %6s h\n", eq, Decimal(s.CutMeanByEquip[eq]))
	}

	fmt.Fprintf(&b, "\n%s %s\n", Dim("Solda (média)"), Bold(Decimal(s.WeldMeanHours)+" h"))
	for i, op := range s.TopWeldOperators {
		fmt.Fprintf(&b, "  %d. %-21s %d\n", i+1, op.Operator, op.Count)
	}

	fmt.Fprintf(&b, "\n%s %s %s\n", Dim("Pintura (média)"), Bold(Decimal(s.PaintMeanHours)+" h"),
		Bold(Decimal(s.PaintMeanKg)+" kg"))

	box := RenderBox("SKU "+s.SKU, strings.TrimRight(b.String(), "\n"))
	return box + "\n\n" + Header("Histórico") + "\n" + FormatRecords(s.History)
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
