// Package pricing computes checkout totals for a cart.
package pricing

import (
	"github.com/shopspring/decimal"

	"watchstore/internal/models"
)

var (
	taxRate             = decimal.RequireFromString("0.10")
	expressFee          = decimal.NewFromInt(50)
	standardFee         = decimal.NewFromInt(25)
	freeShippingMinimum = decimal.NewFromInt(500)
)

// Line is a priced quantity of a single product.
type Line struct {
	Price    float64
	Quantity int
}

// Totals is the breakdown shown at checkout and stored on the order.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// Calculate prices lines for the given shipping tier. Any tier other than express is
// charged as standard. An empty cart costs nothing, shipping included.
func Calculate(lines []Line, tier models.ShippingType) Totals {
	if len(lines) == 0 {
		return Totals{}
	}

	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(decimal.NewFromFloat(l.Price).Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	tax := subtotal.Mul(taxRate)
	shipping := shippingFee(subtotal, tier)
	total := subtotal.Add(tax).Add(shipping)

	return Totals{
		Subtotal: subtotal.InexactFloat64(),
		Tax:      tax.InexactFloat64(),
		Shipping: shipping.InexactFloat64(),
		Total:    total.InexactFloat64(),
	}
}

func shippingFee(subtotal decimal.Decimal, tier models.ShippingType) decimal.Decimal {
	if tier == models.ShippingExpress {
		return expressFee
	}
	if subtotal.GreaterThanOrEqual(freeShippingMinimum) {
		return decimal.Zero
	}
	return standardFee
}

// CartLines adapts cart items for Calculate.
func CartLines(items []models.CartItem) []Line {
	lines := make([]Line, 0, len(items))
	for _, it := range items {
		lines = append(lines, Line{Price: it.Price, Quantity: it.Quantity})
	}
	return lines
}

// FormatAmount renders an amount with two decimal places.
func FormatAmount(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
