// internal/domain/cart/entity.go
package cart

import (
	"github.com/goldenbarrel/storefront-backend/internal/domain/catalog"
	"github.com/goldenbarrel/storefront-backend/internal/domain/pricing"
)

// LineItem is one product entry in the cart. It embeds a full snapshot of the
// product as it looked at add time, plus the customer's quantity and add-ons.
type LineItem struct {
	catalog.Product
	Quantity        int             `json:"quantity"`
	SelectedOptions pricing.Options `json:"selectedOptions"`
}

// LineTotalCents is (unit price + selected surcharges) * quantity
func (li LineItem) LineTotalCents() int64 {
	return pricing.LineTotalCents(li.PriceCents, li.SelectedOptions, li.Quantity)
}

// TotalItems sums quantities across line items
func TotalItems(items []LineItem) int {
	total := 0
	for _, li := range items {
		total += li.Quantity
	}
	return total
}

// TotalPriceCents sums line totals across line items
func TotalPriceCents(items []LineItem) int64 {
	var total int64
	for _, li := range items {
		total += li.LineTotalCents()
	}
	return total
}

// Totals summarizes a cart for API responses
type Totals struct {
	ItemCount       int    `json:"item_count"`     // number of distinct line items
	TotalQuantity   int    `json:"total_quantity"` // sum of all quantities
	TotalPriceCents int64  `json:"total_price_cents"`
	TotalPrice      string `json:"total_price"`
}

// CalculateTotals computes the summary for a set of line items
func CalculateTotals(items []LineItem) Totals {
	cents := TotalPriceCents(items)
	return Totals{
		ItemCount:       len(items),
		TotalQuantity:   TotalItems(items),
		TotalPriceCents: cents,
		TotalPrice:      pricing.FormatCents(cents),
	}
}
