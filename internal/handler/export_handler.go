// /internal/handler/export_handler.go
package handler

import (
	"log"
	"net/http"

	"github.com/ericoliveiras/creative-store/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

var exportHeaders = []string{
	"ID", "Name", "Description", "Price", "OriginalPrice", "CategoryID",
	"Stock", "IsNew", "IsHot", "IsOnSale", "Rating", "ReviewCount", "CreatedAt",
}

// ExportProducts streams the filtered catalog as an XLSX workbook. It takes
// the same query parameters as ListProducts.
func (h *CatalogHandler) ExportProducts(c *gin.Context) {
	filter, ok := bindProductFilter(c)
	if !ok {
		return
	}

	file, err := productWorkbook(h.Storage.ListProducts(filter))
	if err != nil {
		log.Printf("Could not build product export: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create export"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=products.xlsx")
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Expires", "0")
	c.Status(http.StatusOK)

	// headers are already sent; all that is left is logging
	if err := file.Write(c.Writer); err != nil {
		log.Printf("Could not write product export: %v", err)
	}
}

func productWorkbook(products []model.Product) (*xlsx.File, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		return nil, err
	}

	header := sheet.AddRow()
	for _, h := range exportHeaders {
		header.AddCell().SetString(h)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetInt(int(p.ID))
		row.AddCell().SetString(p.Name)
		row.AddCell().SetString(p.Description)
		row.AddCell().SetString(p.Price)
		row.AddCell().SetString(deref(p.OriginalPrice))
		row.AddCell().SetInt(int(p.CategoryID))
		row.AddCell().SetInt(p.Stock)
		row.AddCell().SetBool(deref(p.IsNew))
		row.AddCell().SetBool(deref(p.IsHot))
		row.AddCell().SetBool(deref(p.IsOnSale))
		row.AddCell().SetString(deref(p.Rating))
		row.AddCell().SetInt(deref(p.ReviewCount))
		row.AddCell().SetString(p.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return file, nil
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
