// /internal/handler/product_handler.go
package handler

import (
	"net/http"

	"github.com/ericoliveiras/creative-store/internal/database"
	"github.com/gin-gonic/gin"
)

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	filter, ok := bindProductFilter(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.Storage.ListProducts(filter))
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	product, found := h.Storage.GetProduct(id)
	if !found {
		notFound(c, "product not found")
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if err := req.validate(); err != nil {
		badRequest(c, err.Error())
		return
	}
	if _, ok := h.Storage.GetCategory(req.CategoryID); !ok {
		badRequest(c, "unknown categoryId")
		return
	}
	c.JSON(http.StatusCreated, h.Storage.CreateProduct(req.toModel()))
}

// UpdateStock sets the absolute stock level of a product.
func (h *CatalogHandler) UpdateStock(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req updateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if _, found := h.Storage.GetProduct(id); !found {
		notFound(c, "product not found")
		return
	}

	h.Storage.UpdateProductStock(id, *req.Stock)
	product, _ := h.Storage.GetProduct(id)
	c.JSON(http.StatusOK, product)
}

func bindProductFilter(c *gin.Context) (database.ProductFilter, bool) {
	var q productQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "invalid categoryId")
		return database.ProductFilter{}, false
	}
	return database.ProductFilter{CategoryID: q.CategoryID, Search: q.Search, SortBy: q.SortBy}, true
}
