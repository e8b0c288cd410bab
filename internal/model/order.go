// /internal/model/order.go
package model

import "time"

// Order is a placed order. Orders are never mutated after creation.
type Order struct {
	ID              uint      `json:"id"`
	CustomerName    string    `json:"customerName"`
	CustomerEmail   string    `json:"customerEmail"`
	CustomerPhone   string    `json:"customerPhone"`
	ShippingAddress string    `json:"shippingAddress"`
	TotalAmount     string    `json:"totalAmount"`
	CreatedAt       time.Time `json:"createdAt"`
}

type NewOrder struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress string
	TotalAmount     string
}

// OrderItem is a line of an Order. Price is the unit price at order time
// and is never recomputed from the live product.
type OrderItem struct {
	ID        uint   `json:"id"`
	OrderID   uint   `json:"orderId"`
	ProductID uint   `json:"productId"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}

type NewOrderItem struct {
	ProductID uint
	Quantity  int
	Price     string
}

// OrderItemWithProduct is an OrderItem joined to its Product.
type OrderItemWithProduct struct {
	OrderItem
	Product Product `json:"product"`
}
