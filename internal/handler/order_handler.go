// /internal/handler/order_handler.go
package handler

import (
	"log"
	"net/http"

	"github.com/ericoliveiras/creative-store/internal/database"
	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	Storage database.Storage
	Feed    *OrderFeed
	// ClearCartOnOrder empties the session cart after a successful order.
	ClearCartOnOrder bool
}

// CreateOrder places an order from the {order, items} body. Item prices are
// taken from the request as the price snapshot.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if err := req.validate(); err != nil {
		badRequest(c, err.Error())
		return
	}
	for _, it := range req.Items {
		if _, ok := h.Storage.GetProduct(it.ProductID); !ok {
			notFound(c, "product not found")
			return
		}
	}

	data, items := req.toModel()
	order := h.Storage.CreateOrder(data, items)
	if h.ClearCartOnOrder {
		h.Storage.ClearCart(sessionID(c))
	}

	resp := orderResponse{Order: order, Items: h.Storage.GetOrderItems(order.ID)}
	log.Printf("Order %d placed: %d items, total %s.", order.ID, len(resp.Items), order.TotalAmount)
	if h.Feed != nil {
		h.Feed.Broadcast(resp)
	}
	c.JSON(http.StatusCreated, resp)
}

// ListOrders returns every order, oldest first, with its items. This is
// the back-office sales view.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders := h.Storage.ListOrders()
	resp := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		resp = append(resp, orderResponse{Order: order, Items: h.Storage.GetOrderItems(order.ID)})
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	order, found := h.Storage.GetOrder(id)
	if !found {
		notFound(c, "order not found")
		return
	}
	c.JSON(http.StatusOK, orderResponse{Order: order, Items: h.Storage.GetOrderItems(order.ID)})
}
