package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/storefront-api/server/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name     string
		items    []models.OrderItem
		subtotal float64
		tax      float64
		total    float64
	}{
		{
			name: "two items",
			items: []models.OrderItem{
				{ProductID: "a", Title: "Classic Tee", Price: 19.99, Quantity: 2},
				{ProductID: "b", Title: "Ceramic Mug", Price: 12.50, Quantity: 1},
			},
			subtotal: 52.48,
			tax:      5.25,
			total:    57.73,
		},
		{
			name:     "empty item list",
			items:    nil,
			subtotal: 0,
			tax:      0,
			total:    0,
		},
		{
			name: "single item",
			items: []models.OrderItem{
				{ProductID: "c", Title: "Leather Journal", Price: 24.00, Quantity: 1},
			},
			subtotal: 24.00,
			tax:      2.40,
			total:    26.40,
		},
		{
			name: "tax rounds at third decimal",
			items: []models.OrderItem{
				{ProductID: "a", Title: "Classic Tee", Price: 19.99, Quantity: 1},
			},
			subtotal: 19.99,
			tax:      2.00,
			total:    21.99,
		},
		{
			name: "sub-dollar prices",
			items: []models.OrderItem{
				{ProductID: "d", Title: "Sticker", Price: 0.10, Quantity: 3},
			},
			subtotal: 0.30,
			tax:      0.03,
			total:    0.33,
		},
		{
			name: "large quantity",
			items: []models.OrderItem{
				{ProductID: "e", Title: "Desk Lamp", Price: 39.00, Quantity: 100},
			},
			subtotal: 3900.00,
			tax:      390.00,
			total:    4290.00,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Calculate(tc.items)
			assert.Equal(t, tc.subtotal, got.Subtotal, "subtotal")
			assert.Equal(t, tc.tax, got.Tax, "tax")
			assert.Equal(t, tc.total, got.Total, "total")
		})
	}
}

// The derived values must satisfy tax = round(subtotal*rate, 2) and
// total = round(subtotal+tax, 2) for any item mix.
func TestCalculateInvariants(t *testing.T) {
	itemSets := [][]models.OrderItem{
		{{Price: 19.99, Quantity: 2}, {Price: 12.50, Quantity: 1}},
		{{Price: 0.01, Quantity: 1}},
		{{Price: 7.77, Quantity: 3}, {Price: 1.05, Quantity: 9}},
		{{Price: 99.95, Quantity: 7}, {Price: 0.05, Quantity: 1}, {Price: 12.34, Quantity: 2}},
	}

	for _, items := range itemSets {
		got := Calculate(items)

		raw := decimal.Zero
		for _, item := range items {
			raw = raw.Add(decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity))))
		}

		wantTax := raw.Mul(decimal.NewFromFloat(TaxRate)).Round(2)
		wantTotal := raw.Add(wantTax).Round(2)

		require.Equal(t, raw.Round(2).InexactFloat64(), got.Subtotal)
		require.Equal(t, wantTax.InexactFloat64(), got.Tax)
		require.Equal(t, wantTotal.InexactFloat64(), got.Total)
	}
}
