// /internal/handler/cart_handler.go
package handler

import (
	"net/http"

	"github.com/ericoliveiras/creative-store/internal/database"
	"github.com/ericoliveiras/creative-store/internal/model"
	"github.com/gin-gonic/gin"
)

// CartHandler serves the session cart. Every route runs behind
// SessionRequired.
type CartHandler struct {
	Storage  database.Storage
	Shipping ShippingPolicy
}

// ShowCart returns the session's cart lines with their products.
func (h *CartHandler) ShowCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.Storage.GetCartItems(sessionID(c)))
}

func (h *CartHandler) ShowSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.Shipping.Summarize(h.Storage.GetCartItems(sessionID(c))))
}

// AddToCart adds a product to the cart, merging with an existing line for
// the same product.
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if _, ok := h.Storage.GetProduct(req.ProductID); !ok {
		notFound(c, "product not found")
		return
	}

	item := h.Storage.AddToCart(model.NewCartItem{
		SessionID: sessionID(c),
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	c.JSON(http.StatusOK, item)
}

// UpdateCartItem sets the quantity of a line. A quantity below 1 removes
// the line and answers 204.
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	id, ok := h.ownedItem(c)
	if !ok {
		return
	}
	var req updateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	if *req.Quantity < 1 {
		h.Storage.RemoveFromCart(id)
		c.Status(http.StatusNoContent)
		return
	}

	h.Storage.UpdateCartItem(id, *req.Quantity)
	item, _ := h.Storage.GetCartItem(id)
	c.JSON(http.StatusOK, item)
}

func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	id, ok := h.ownedItem(c)
	if !ok {
		return
	}
	h.Storage.RemoveFromCart(id)
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	h.Storage.ClearCart(sessionID(c))
	c.Status(http.StatusNoContent)
}

// ownedItem resolves the :id cart line and checks it belongs to the
// request session. Lines of other sessions look missing.
func (h *CartHandler) ownedItem(c *gin.Context) (uint, bool) {
	id, ok := paramID(c, "id")
	if !ok {
		return 0, false
	}
	item, found := h.Storage.GetCartItem(id)
	if !found || item.SessionID != sessionID(c) {
		notFound(c, "cart item not found")
		return 0, false
	}
	return id, true
}
