// Package pricing holds the derivation rules the presentation layer applies
// before handing an order to the ledger. The ledger itself stores whatever
// amounts it is given and never recomputes them.
package pricing

import "math"

const (
	// FreeShippingThreshold is the subtotal above which shipping is free.
	// The comparison is strict: a subtotal of exactly 50.00 still pays.
	FreeShippingThreshold = 50.0

	// FlatShippingRate applies below the free-shipping threshold.
	FlatShippingRate = 5.99

	// TaxRate is the flat sales tax applied to the subtotal.
	TaxRate = 0.08
)

// Quote is a fully derived price breakdown, rounded to cents.
type Quote struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// NewQuote derives shipping, tax and total from a subtotal.
func NewQuote(subtotal float64) Quote {
	subtotal = Round(subtotal)

	shipping := FlatShippingRate
	if subtotal > FreeShippingThreshold {
		shipping = 0
	}

	tax := Round(subtotal * TaxRate)
	return Quote{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    Round(subtotal + shipping + tax),
	}
}

// Round rounds an amount to the nearest cent.
func Round(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// AmountToFreeShipping returns how much more the customer must spend to
// reach free shipping, or 0 if they already qualify.
func AmountToFreeShipping(subtotal float64) float64 {
	if subtotal > FreeShippingThreshold {
		return 0
	}
	return Round(FreeShippingThreshold - subtotal)
}
