package database

import "github.com/ericoliveiras/creative-store/internal/model"

// joinOrSkip pairs every row with the product it references and silently
// drops rows whose product does not exist. Cart and order item reads both
// go through it.
func joinOrSkip[T, J any](rows []T, products map[uint]model.Product, productID func(T) uint, join func(T, model.Product) J) []J {
	joined := make([]J, 0, len(rows))
	for _, row := range rows {
		product, ok := products[productID(row)]
		if !ok {
			continue
		}
		joined = append(joined, join(row, product))
	}
	return joined
}
