// /internal/handler/schemas.go
package handler

import (
	"fmt"
	"strings"

	"github.com/ericoliveiras/creative-store/internal/model"
	"github.com/shopspring/decimal"
)

// Request bodies. Structural rules live in the binding tags; decimal
// fields are checked by validate and stored trimmed by toModel.

type createCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

func (r createCategoryRequest) toModel() model.NewCategory {
	return model.NewCategory{
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		ImageURL:    r.ImageURL,
	}
}

type createProductRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	Price         string  `json:"price" binding:"required"`
	OriginalPrice *string `json:"originalPrice"`
	ImageURL      string  `json:"imageUrl"`
	CategoryID    uint    `json:"categoryId" binding:"required"`
	Stock         int     `json:"stock" binding:"min=0"`
	IsNew         *bool   `json:"isNew"`
	IsHot         *bool   `json:"isHot"`
	IsOnSale      *bool   `json:"isOnSale"`
	Rating        *string `json:"rating"`
	ReviewCount   *int    `json:"reviewCount" binding:"omitempty,min=0"`
}

func (r createProductRequest) validate() error {
	if err := checkDecimal("price", r.Price); err != nil {
		return err
	}
	if r.OriginalPrice != nil {
		if err := checkDecimal("originalPrice", *r.OriginalPrice); err != nil {
			return err
		}
	}
	if r.Rating != nil {
		if err := checkDecimal("rating", *r.Rating); err != nil {
			return err
		}
	}
	return nil
}

func (r createProductRequest) toModel() model.NewProduct {
	return model.NewProduct{
		Name:          r.Name,
		Description:   r.Description,
		Price:         strings.TrimSpace(r.Price),
		OriginalPrice: trimmed(r.OriginalPrice),
		ImageURL:      r.ImageURL,
		CategoryID:    r.CategoryID,
		Stock:         r.Stock,
		IsNew:         r.IsNew,
		IsHot:         r.IsHot,
		IsOnSale:      r.IsOnSale,
		Rating:        trimmed(r.Rating),
		ReviewCount:   r.ReviewCount,
	}
}

type updateStockRequest struct {
	Stock *int `json:"stock" binding:"required,min=0"`
}

// productQuery holds the list and export filters. Unknown sortBy values
// are passed through and keep insertion order.
type productQuery struct {
	CategoryID *uint  `form:"categoryId"`
	Search     string `form:"search"`
	SortBy     string `form:"sortBy"`
}

// addToCartRequest defaults a missing quantity to 1.
type addToCartRequest struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"omitempty,min=1"`
}

type updateCartRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type orderDetails struct {
	CustomerName    string `json:"customerName" binding:"required"`
	CustomerEmail   string `json:"customerEmail" binding:"required,email"`
	CustomerPhone   string `json:"customerPhone" binding:"required"`
	ShippingAddress string `json:"shippingAddress" binding:"required"`
	TotalAmount     string `json:"totalAmount" binding:"required"`
}

type orderItemRequest struct {
	ProductID uint   `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Price     string `json:"price" binding:"required"`
}

type createOrderRequest struct {
	Order orderDetails       `json:"order"`
	Items []orderItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r createOrderRequest) validate() error {
	if err := checkDecimal("totalAmount", r.Order.TotalAmount); err != nil {
		return err
	}
	for i, it := range r.Items {
		if err := checkDecimal(fmt.Sprintf("items[%d].price", i), it.Price); err != nil {
			return err
		}
	}
	return nil
}

func (r createOrderRequest) toModel() (model.NewOrder, []model.NewOrderItem) {
	order := model.NewOrder{
		CustomerName:    r.Order.CustomerName,
		CustomerEmail:   r.Order.CustomerEmail,
		CustomerPhone:   r.Order.CustomerPhone,
		ShippingAddress: r.Order.ShippingAddress,
		TotalAmount:     strings.TrimSpace(r.Order.TotalAmount),
	}
	items := make([]model.NewOrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, model.NewOrderItem{ProductID: it.ProductID, Quantity: it.Quantity, Price: strings.TrimSpace(it.Price)})
	}
	return order, items
}

// orderResponse is an order with its items nested, as returned by the API
// and pushed to the order feed.
type orderResponse struct {
	model.Order
	Items []model.OrderItemWithProduct `json:"items"`
}

func checkDecimal(field, v string) error {
	if _, err := decimal.NewFromString(strings.TrimSpace(v)); err != nil {
		return fmt.Errorf("%s must be a decimal number", field)
	}
	return nil
}

func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	return &t
}
