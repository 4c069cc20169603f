package store

import "github.com/shopspring/decimal"

// Money rules: 8% tax on the subtotal, flat $25 shipping waived strictly
// above a $500 subtotal. A subtotal of exactly 500 still pays shipping.
var (
	taxRate          = decimal.NewFromFloat(0.08)
	flatShipping     = decimal.NewFromInt(25)
	freeShippingOver = decimal.NewFromInt(500)
)

// CalculateTotals derives the money block for a sequence of items. Each
// value is rounded to cents, half away from zero, so total equals
// subtotal + tax + shipping exactly after rounding.
func CalculateTotals(items []OrderItem) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(line)
	}
	tax := subtotal.Mul(taxRate)
	shipping := flatShipping
	if subtotal.GreaterThan(freeShippingOver) {
		shipping = decimal.Zero
	}

	subtotal = subtotal.Round(2)
	tax = tax.Round(2)
	total := subtotal.Add(tax).Add(shipping)

	return Totals{
		Subtotal: toFloat(subtotal),
		Tax:      toFloat(tax),
		Shipping: toFloat(shipping),
		Total:    toFloat(total.Round(2)),
	}
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
