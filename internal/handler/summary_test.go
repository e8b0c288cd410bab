package handler

import (
	"testing"

	"github.com/ericoliveiras/creative-store/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(price string, qty int) model.CartItemWithProduct {
	return model.CartItemWithProduct{
		CartItem: model.CartItem{Quantity: qty},
		Product:  model.Product{Price: price},
	}
}

func TestSummarize(t *testing.T) {
	policy, err := NewShippingPolicy("100", "10")
	require.NoError(t, err)

	tests := []struct {
		name     string
		items    []model.CartItemWithProduct
		subtotal string
		shipping string
		total    string
		count    int
	}{
		{"empty", nil, "0.00", "0.00", "0.00", 0},
		{"below threshold", []model.CartItemWithProduct{line("45.00", 2)}, "90.00", "10.00", "100.00", 2},
		{"exactly threshold pays shipping", []model.CartItemWithProduct{line("50.00", 2)}, "100.00", "10.00", "110.00", 2},
		{"above threshold", []model.CartItemWithProduct{line("100.01", 1)}, "100.01", "0.00", "100.01", 1},
		{"no float drift", []model.CartItemWithProduct{line("0.10", 3), line("0.20", 1)}, "0.50", "10.00", "10.50", 4},
		{"padded price", []model.CartItemWithProduct{line(" 50.00 ", 2)}, "100.00", "10.00", "110.00", 2},
		{"unparseable price counts as zero", []model.CartItemWithProduct{line("n/a", 4), line("12.5", 1)}, "12.50", "10.00", "22.50", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := policy.Summarize(tt.items)
			assert.Equal(t, tt.subtotal, got.Subtotal)
			assert.Equal(t, tt.shipping, got.Shipping)
			assert.Equal(t, tt.total, got.Total)
			assert.Equal(t, tt.count, got.ItemCount)
			assert.Equal(t, "100.00", got.FreeShippingThreshold)
		})
	}
}

func TestNewShippingPolicyRejectsGarbage(t *testing.T) {
	_, err := NewShippingPolicy("lots", "10")
	assert.Error(t, err)

	_, err = NewShippingPolicy("100", "")
	assert.Error(t, err)
}
