// Package pricing computes server-side order totals. Clients never supply
// totals; every order passes through Calculate before persistence.
package pricing

import (
	"github.com/shopspring/decimal"
	"github.com/storefront-api/server/internal/models"
)

// TaxRate is the flat tax applied to every order.
const TaxRate = 0.10

var taxRate = decimal.NewFromFloat(TaxRate)

// Totals holds the derived monetary values of an order, each rounded to
// two decimal places.
type Totals struct {
	Subtotal float64
	Tax      float64
	Total    float64
}

// Calculate derives subtotal, tax and total from the order items.
// The subtotal accumulates unrounded; tax rounds subtotal*rate to 2 decimals,
// total rounds subtotal+tax to 2 decimals, and the returned subtotal is the
// 2-decimal rounding of the raw sum. An empty item list yields all zeros.
func Calculate(items []models.OrderItem) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		price := decimal.NewFromFloat(item.Price)
		qty := decimal.NewFromInt(int64(item.Quantity))
		subtotal = subtotal.Add(price.Mul(qty))
	}

	tax := subtotal.Mul(taxRate).Round(2)
	total := subtotal.Add(tax).Round(2)

	return Totals{
		Subtotal: subtotal.Round(2).InexactFloat64(),
		Tax:      tax.InexactFloat64(),
		Total:    total.InexactFloat64(),
	}
}
