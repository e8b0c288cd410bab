// /internal/handler/category_handler.go
package handler

import (
	"net/http"

	"github.com/ericoliveiras/creative-store/internal/database"
	"github.com/gin-gonic/gin"
)

// CatalogHandler serves categories and products.
type CatalogHandler struct {
	Storage database.Storage
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.Storage.ListCategories())
}

func (h *CatalogHandler) GetCategory(c *gin.Context) {
	category, ok := h.Storage.GetCategoryBySlug(c.Param("slug"))
	if !ok {
		notFound(c, "category not found")
		return
	}
	c.JSON(http.StatusOK, category)
}

// ListCategoryProducts returns the products of the category named by slug.
func (h *CatalogHandler) ListCategoryProducts(c *gin.Context) {
	category, ok := h.Storage.GetCategoryBySlug(c.Param("slug"))
	if !ok {
		notFound(c, "category not found")
		return
	}
	c.JSON(http.StatusOK, h.Storage.GetProductsByCategory(category.ID))
}

func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusCreated, h.Storage.CreateCategory(req.toModel()))
}
