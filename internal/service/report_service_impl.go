package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mariaiw8/apontamentos/internal/domain"
	"github.com/mariaiw8/apontamentos/internal/repository"
)

// untypedProject groups design hours recorded without a project type.
const untypedProject = "Sem tipo"

type reportService struct {
	entries repository.EntryRepo
	items   repository.EntryItemRepo
}

func NewReportService(entries repository.EntryRepo, items repository.EntryItemRepo) ReportService {
	return &reportService{entries: entries, items: items}
}

func (s *reportService) Records(ctx context.Context, f RecordFilter) ([]domain.Record, error) {
	all, err := s.activeRecords(ctx)
	if err != nil {
		return nil, err
	}
	sku := strings.ToLower(strings.TrimSpace(f.SKU))
	out := all[:0]
	for _, r := range all {
		if sku != "" && !strings.Contains(strings.ToLower(r.SKU), sku) {
			continue
		}
		if f.Operator != "" && r.Operator != f.Operator {
			continue
		}
		if f.Sector != "" && r.Sector != f.Sector {
			continue
		}
		if f.Equipment != "" && r.Equipment != f.Equipment {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// Summary aggregates every active record of the SKU. The filter only narrows
// the history; the aggregates always cover the whole SKU.
func (s *reportService) Summary(ctx context.Context, sku string, f SummaryFilter) (*domain.SKUSummary, error) {
	sku = strings.TrimSpace(sku)
	all, err := s.activeRecords(ctx)
	if err != nil {
		return nil, err
	}
	var recs []domain.Record
	for _, r := range all {
		if r.SKU == sku {
			recs = append(recs, r)
		}
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("records for sku %s: %w", sku, repository.ErrNotFound)
	}
	return summarize(sku, recs, f), nil
}

func summarize(sku string, recs []domain.Record, f SummaryFilter) *domain.SKUSummary {
	sum := &domain.SKUSummary{
		SKU:            sku,
		HoursByType:    make(map[string]float64),
		CutMeanByEquip: make(map[string]float64),
	}

	cutHours := make(map[string][]float64)
	weldOps := make(map[string]int)
	var weldHours, paintHours, paintKg float64
	var weldN, paintN int

	for _, r := range recs {
		switch r.Sector {
		case domain.SectorProject:
			sum.DesignHours += r.Hours
			sum.DesignCount++
			t := r.Type
			if t == "" {
				t = untypedProject
			}
			sum.HoursByType[t] += r.Hours
		case domain.SectorCut:
			eq := domain.OrDash(r.Equipment)
			cutHours[eq] = append(cutHours[eq], r.Hours)
		case domain.SectorWeld:
			weldHours += r.Hours
			weldN++
			weldOps[r.Operator]++
		case domain.SectorPaint:
			paintHours += r.Hours
			paintKg += domain.FloatFromPtr(r.PaintKg)
			paintN++
		}
	}

	for eq, hrs := range cutHours {
		var total float64
		for _, h := range hrs {
			total += h
		}
		sum.CutMeanByEquip[eq] = total / float64(len(hrs))
	}
	// Add in key order so the total does not depend on map iteration.
	equips := make([]string, 0, len(sum.CutMeanByEquip))
	for eq := range sum.CutMeanByEquip {
		equips = append(equips, eq)
	}
	sort.Strings(equips)
	for _, eq := range equips {
		sum.CutMeanTotal += sum.CutMeanByEquip[eq]
	}

	if weldN > 0 {
		sum.WeldMeanHours = weldHours / float64(weldN)
	}
	if paintN > 0 {
		sum.PaintMeanHours = paintHours / float64(paintN)
		sum.PaintMeanKg = paintKg / float64(paintN)
	}

	for op, n := range weldOps {
		sum.TopWeldOperators = append(sum.TopWeldOperators, domain.OperatorCount{Operator: op, Count: n})
	}
	sort.Slice(sum.TopWeldOperators, func(i, j int) bool {
		a, b := sum.TopWeldOperators[i], sum.TopWeldOperators[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Operator < b.Operator
	})
	if len(sum.TopWeldOperators) > 3 {
		sum.TopWeldOperators = sum.TopWeldOperators[:3]
	}

	for _, r := range recs {
		if f.Sector != "" && r.Sector != f.Sector {
			continue
		}
		if f.Operator != "" && r.Operator != f.Operator {
			continue
		}
		sum.History = append(sum.History, r)
	}
	return sum
}

// activeRecords flattens the finalized, active entries into records sorted
// newest first.
func (s *reportService) activeRecords(ctx context.Context) ([]domain.Record, error) {
	entries, err := s.entries.List(ctx, repository.EntryFilter{FinalizedOnly: true})
	if err != nil {
		return nil, err
	}
	if err := attachItems(ctx, s.items, entries); err != nil {
		return nil, err
	}
	var recs []domain.Record
	for _, e := range entries {
		recs = append(recs, recordsOf(e)...)
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Date.After(recs[j].Date)
	})
	return recs, nil
}

// recordsOf returns one record for a projeto entry and one per item for a
// batch. Only a weld entry stored without items yields an entry-level record.
func recordsOf(e *domain.Entry) []domain.Record {
	base := domain.Record{
		EntryID:   e.ID,
		Sector:    e.Sector,
		Date:      e.StartedAt,
		Operator:  domain.OrDash(e.Operator),
		Equipment: "-",
		OrderRef:  domain.OrDash(e.OrderRef),
		Status:    e.Status,
	}
	switch e.Sector {
	case domain.SectorCut:
		base.Equipment = domain.OrDash(e.Equipment)
	case domain.SectorPaint:
		base.Operator = "-"
		base.Equipment = domain.OrDash(e.Oven)
	}

	if e.Sector == domain.SectorProject {
		r := base
		r.SKU = e.SKU
		r.Type = e.ProjectType
		r.Hours = e.Hours()
		return []domain.Record{r}
	}
	if len(e.Items) == 0 {
		// Weld entries stored before items existed still count their hours.
		if e.Sector != domain.SectorWeld {
			return nil
		}
		r := base
		r.SKU = "-"
		r.Hours = e.Hours()
		return []domain.Record{r}
	}

	out := make([]domain.Record, 0, len(e.Items))
	for _, it := range e.Items {
		r := base
		r.SKU = it.SKU
		if e.Sector != domain.SectorCut {
			r.OrderRef = domain.OrDash(it.OrderRef)
		}
		q := it.Quantity
		r.Quantity = &q
		r.Hours = domain.FloatFromPtr(it.RationedHours)
		if e.Sector.RationsMass() {
			r.PaintKg = it.RationedKg
		}
		out = append(out, r)
	}
	return out
}
