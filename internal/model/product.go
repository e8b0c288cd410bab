// /internal/model/product.go
package model

import "time"

// Product represents an item sold in the store. Price, OriginalPrice and
// Rating are decimal strings.
type Product struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         string    `json:"price"`
	OriginalPrice *string   `json:"originalPrice,omitempty"`
	ImageURL      string    `json:"imageUrl"`
	CategoryID    uint      `json:"categoryId"` // not enforced against the categories collection
	Stock         int       `json:"stock"`
	IsNew         *bool     `json:"isNew,omitempty"`
	IsHot         *bool     `json:"isHot,omitempty"`
	IsOnSale      *bool     `json:"isOnSale,omitempty"`
	Rating        *string   `json:"rating,omitempty"`
	ReviewCount   *int      `json:"reviewCount,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NewProduct holds the fields supplied when creating a Product.
type NewProduct struct {
	Name          string
	Description   string
	Price         string
	OriginalPrice *string
	ImageURL      string
	CategoryID    uint
	Stock         int
	IsNew         *bool
	IsHot         *bool
	IsOnSale      *bool
	Rating        *string
	ReviewCount   *int
}
