// /internal/handler/summary.go
package handler

import (
	"fmt"
	"strings"

	"github.com/ericoliveiras/creative-store/internal/model"
	"github.com/shopspring/decimal"
)

// ShippingPolicy prices delivery of a cart: free above FreeThreshold,
// otherwise a flat Fee.
type ShippingPolicy struct {
	FreeThreshold decimal.Decimal
	Fee           decimal.Decimal
}

func NewShippingPolicy(freeThreshold, fee string) (ShippingPolicy, error) {
	threshold, err := decimal.NewFromString(freeThreshold)
	if err != nil {
		return ShippingPolicy{}, fmt.Errorf("free shipping threshold %q: %w", freeThreshold, err)
	}
	flat, err := decimal.NewFromString(fee)
	if err != nil {
		return ShippingPolicy{}, fmt.Errorf("shipping fee %q: %w", fee, err)
	}
	return ShippingPolicy{FreeThreshold: threshold, Fee: flat}, nil
}

type CartSummary struct {
	ItemCount             int    `json:"itemCount"`
	Subtotal              string `json:"subtotal"`
	Shipping              string `json:"shipping"`
	Total                 string `json:"total"`
	FreeShippingThreshold string `json:"freeShippingThreshold"`
}

// Summarize totals the cart with the live product prices. Surrounding
// whitespace is ignored and prices that do not parse count as zero.
// An empty cart ships for free.
func (p ShippingPolicy) Summarize(items []model.CartItemWithProduct) CartSummary {
	subtotal := decimal.Zero
	count := 0
	for _, it := range items {
		price, err := decimal.NewFromString(strings.TrimSpace(it.Product.Price))
		if err != nil {
			price = decimal.Zero
		}
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		count += it.Quantity
	}

	shipping := p.Fee
	if len(items) == 0 || subtotal.GreaterThan(p.FreeThreshold) {
		shipping = decimal.Zero
	}

	return CartSummary{
		ItemCount:             count,
		Subtotal:              subtotal.StringFixed(2),
		Shipping:              shipping.StringFixed(2),
		Total:                 subtotal.Add(shipping).StringFixed(2),
		FreeShippingThreshold: p.FreeThreshold.StringFixed(2),
	}
}
