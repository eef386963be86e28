package rationing

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func items(qty ...float64) []LineItem {
	out := make([]LineItem, len(qty))
	for i, q := range qty {
		out[i] = LineItem{SKU: "SKU-" + string(rune('A'+i)), Quantity: q}
	}
	return out
}

func values(shares []Share) []float64 {
	out := make([]float64, len(shares))
	for i, s := range shares {
		out[i] = s.Value
	}
	return out
}

func TestAllocate_Proportional(t *testing.T) {
	shares := Allocate(100, items(1, 3))
	assert.Equal(t, []float64{25, 75}, values(shares))
	assert.Equal(t, 100.0, Sum(shares))
}

func TestAllocate_ZeroQuantities(t *testing.T) {
	assert.Equal(t, []float64{0, 0}, values(Allocate(100, items(0, 0))))
}

func TestAllocate_Empty(t *testing.T) {
	assert.Empty(t, Allocate(42, nil))
	assert.Empty(t, Allocate(42, []LineItem{}))
}

func TestAllocate_NegativeQuantityHasNoWeight(t *testing.T) {
	assert.Equal(t, []float64{0, 10}, values(Allocate(10, items(-5, 2))))
}

func TestAllocate_CarriesItemData(t *testing.T) {
	in := []LineItem{
		{SKU: "PN-1", Description: "Painel", OrderRef: "OP-9", Quantity: 2},
		{SKU: "PN-2", Quantity: 2},
	}
	shares := Allocate(3, in)
	require.Len(t, shares, 2)
	assert.Equal(t, in[0], shares[0].Item)
	assert.Equal(t, "PN-2", shares[1].Item.SKU)
	assert.Equal(t, 1.5, shares[0].Value)
}

func TestPlan_SameWeightsForEveryTotal(t *testing.T) {
	plan := NewPlan(items(2, 6))
	hours := plan.Distribute(4)
	kg := plan.Distribute(12)
	assert.Equal(t, []float64{1, 3}, values(hours))
	assert.Equal(t, []float64{3, 9}, values(kg))
	assert.Equal(t, 2, plan.Len())
}

func TestPlan_IndependentOfCallerSlice(t *testing.T) {
	in := items(1, 1)
	plan := NewPlan(in)
	in[0].Quantity = 100
	assert.Equal(t, []float64{5, 5}, values(plan.Distribute(10)))
}

func TestAllocate_Idempotent(t *testing.T) {
	in := items(0.3, 1.7, 2.9)
	a := values(Allocate(7.77, in))
	b := values(Allocate(7.77, in))
	for i := range a {
		assert.Equal(t, math.Float64bits(a[i]), math.Float64bits(b[i]))
	}
}

func TestRetain(t *testing.T) {
	rows := []Row{
		{SKU: " A-1 ", Quantity: "2", Description: " chapa "},
		{SKU: "", Quantity: "5"},
		{SKU: "B-2", Quantity: ""},
		{SKU: "C-3", Quantity: "x"},
		{SKU: "D-4", Quantity: "1,5", OrderRef: "OP7"},
		{SKU: "E-5", Quantity: "-3"},
		{SKU: "F-6", Quantity: "0"},
	}
	got := Retain(rows)
	assert.Equal(t, []LineItem{
		{SKU: "A-1", Description: "chapa", Quantity: 2},
		{SKU: "D-4", OrderRef: "OP7", Quantity: 1.5},
		{SKU: "E-5", Quantity: 0},
		{SKU: "F-6", Quantity: 0},
	}, got)
}

// TestAllocate_Invariants property-tests conservation and non-negativity.
func TestAllocate_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 500; trial++ {
		n := rng.Intn(12)
		qty := make([]float64, n)
		var q float64
		for i := range qty {
			if rng.Intn(5) > 0 {
				qty[i] = float64(rng.Intn(1000)) / 10
			}
			q += qty[i]
		}
		total := rng.Float64() * 500

		shares := Allocate(total, items(qty...))
		require.Len(t, shares, n)

		for j, s := range shares {
			assert.GreaterOrEqual(t, s.Value, 0.0, "trial %d share %d", trial, j)
		}
		if q > 0 {
			assert.InDelta(t, total, Sum(shares), 1e-9, "trial %d: shares must sum to total", trial)
		} else {
			assert.Equal(t, 0.0, Sum(shares), "trial %d", trial)
		}
	}
}
