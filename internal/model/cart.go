// /internal/model/cart.go
package model

import "time"

// CartItem is one line of a session cart. A session holds at most one
// CartItem per product.
type CartItem struct {
	ID        uint      `json:"id"`
	SessionID string    `json:"sessionId"`
	ProductID uint      `json:"productId"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
}

type NewCartItem struct {
	SessionID string
	ProductID uint
	Quantity  int
}

// CartItemWithProduct is a CartItem joined to its Product.
type CartItemWithProduct struct {
	CartItem
	Product Product `json:"product"`
}
