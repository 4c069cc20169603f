package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotals(t *testing.T) {
	tests := []struct {
		name  string
		items []OrderItem
		want  Totals
	}{
		{
			name:  "below free shipping threshold",
			items: []OrderItem{{Price: 45.50, Quantity: 10}},
			want:  Totals{Subtotal: 455.00, Tax: 36.40, Shipping: 25.00, Total: 516.40},
		},
		{
			name:  "above free shipping threshold",
			items: []OrderItem{{Price: 52.75, Quantity: 10}},
			want:  Totals{Subtotal: 527.50, Tax: 42.20, Shipping: 0, Total: 569.70},
		},
		{
			name:  "exactly 500 still pays shipping",
			items: []OrderItem{{Price: 50, Quantity: 10}},
			want:  Totals{Subtotal: 500.00, Tax: 40.00, Shipping: 25.00, Total: 565.00},
		},
		{
			name:  "no items",
			items: nil,
			want:  Totals{Subtotal: 0, Tax: 0, Shipping: 25, Total: 25},
		},
		{
			name: "multiple lines",
			items: []OrderItem{
				{Price: 2.25, Quantity: 100},
				{Price: 58.90, Quantity: 8},
			},
			want: Totals{Subtotal: 696.20, Tax: 55.70, Shipping: 0, Total: 751.90},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateTotals(tt.items))
		})
	}
}

func TestCalculateTotalsRounding(t *testing.T) {
	// A subtotal of 10.005 is a half-cent tie and must round away from
	// zero, to 10.01.
	got := CalculateTotals([]OrderItem{{Price: 10.005, Quantity: 1}})
	assert.Equal(t, 10.01, got.Subtotal)
	assert.Equal(t, got.Subtotal+got.Tax+got.Shipping, got.Total)
}

func TestCalculateTotalsConsistency(t *testing.T) {
	cases := [][]OrderItem{
		{{Price: 89.99, Quantity: 5}},
		{{Price: 45.50, Quantity: 10}, {Price: 2.25, Quantity: 100}},
		{{Price: 0.01, Quantity: 3}},
		{{Price: 0, Quantity: 1}},
	}
	for _, items := range cases {
		got := CalculateTotals(items)
		assert.Equal(t, got.Subtotal+got.Tax+got.Shipping, got.Total)
	}
}
