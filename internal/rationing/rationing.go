// Package rationing splits a measured batch total (hours, paint mass) across
// the batch's line items in proportion to their declared quantities.
package rationing

import (
	"math"
	"strconv"
	"strings"
)

// LineItem is one SKU row of a batch. Only Quantity is read by the engine;
// the other fields ride along unchanged.
type LineItem struct {
	SKU         string
	Description string
	OrderRef    string
	Quantity    float64
}

// Share is the part of a total attributed to one item.
type Share struct {
	Item  LineItem
	Value float64
}

// Row is a line item as typed in a form, before parsing.
type Row struct {
	SKU         string
	Description string
	OrderRef    string
	Quantity    string
}

// Retain drops rows without a SKU or without a parseable quantity and parses
// the rest, preserving order. Negative quantities carry no weight.
func Retain(rows []Row) []LineItem {
	items := make([]LineItem, 0, len(rows))
	for _, r := range rows {
		sku := strings.TrimSpace(r.SKU)
		if sku == "" {
			continue
		}
		q, ok := parseQuantity(r.Quantity)
		if !ok {
			continue
		}
		items = append(items, LineItem{
			SKU:         sku,
			Description: strings.TrimSpace(r.Description),
			OrderRef:    strings.TrimSpace(r.OrderRef),
			Quantity:    q,
		})
	}
	return items
}

func parseQuantity(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return math.Max(0, v), true
}

// Plan holds the per-item fractions of one batch. Build it once and apply it
// to every total of the batch so all totals use the same weights.
type Plan struct {
	items     []LineItem
	fractions []float64
}

// NewPlan computes each item's fraction of the summed quantity. When the sum
// is not positive every fraction is zero.
func NewPlan(items []LineItem) Plan {
	var sum float64
	for _, it := range items {
		sum += weight(it)
	}
	fractions := make([]float64, len(items))
	if sum > 0 {
		for i, it := range items {
			fractions[i] = weight(it) / sum
		}
	}
	return Plan{items: append([]LineItem(nil), items...), fractions: fractions}
}

func weight(it LineItem) float64 {
	if it.Quantity > 0 {
		return it.Quantity
	}
	return 0
}

// Len is the number of items in the plan.
func (p Plan) Len() int {
	return len(p.items)
}

// Distribute returns one share of total per item, in item order.
func (p Plan) Distribute(total float64) []Share {
	shares := make([]Share, len(p.items))
	for i, it := range p.items {
		shares[i] = Share{Item: it, Value: total * p.fractions[i]}
	}
	return shares
}

// Allocate splits total across items in proportion to their quantities.
func Allocate(total float64, items []LineItem) []Share {
	return NewPlan(items).Distribute(total)
}

// Sum adds up share values.
func Sum(shares []Share) float64 {
	var s float64
	for _, sh := range shares {
		s += sh.Value
	}
	return s
}
