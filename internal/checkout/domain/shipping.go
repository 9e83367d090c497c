package domain

import (
	"errors"
	"fmt"
)

var ErrUnknownTier = errors.New("unknown shipping tier")

// TaxRate is applied to the draft subtotal at delivery confirmation.
const TaxRate = 0.07

type ShippingTier struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Cost     float64 `json:"cost"`
	Estimate string  `json:"estimate"`
}

var shippingTiers = []ShippingTier{
	{ID: "standard", Name: "Standard Shipping", Cost: 50, Estimate: "5-7 Business Days"},
	{ID: "express", Name: "Express Shipping", Cost: 150, Estimate: "2-3 Business Days"},
	{ID: "sameday", Name: "Same-Day Delivery", Cost: 300, Estimate: "Today by 8:00 PM"},
}

// ShippingTiers returns the fixed tier list in display order.
func ShippingTiers() []ShippingTier {
	out := make([]ShippingTier, len(shippingTiers))
	copy(out, shippingTiers)
	return out
}

func TierByID(id string) (ShippingTier, error) {
	for _, t := range shippingTiers {
		if t.ID == id {
			return t, nil
		}
	}
	return ShippingTier{}, fmt.Errorf("%w %q", ErrUnknownTier, id)
}

// Taxes rounds the subtotal tax to satang precision.
func Taxes(subtotal float64) float64 {
	return roundCurrency(subtotal * TaxRate)
}

// Total is subtotal + taxes + tier cost.
func Total(subtotal float64, tier ShippingTier) float64 {
	return roundCurrency(subtotal + Taxes(subtotal) + tier.Cost)
}

func roundCurrency(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
