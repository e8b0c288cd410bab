package database

import (
	"slices"
	"strconv"
	"strings"

	"github.com/ericoliveiras/creative-store/internal/model"
)

// Sort keys accepted by ProductFilter.SortBy.
const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortNewest    = "newest"
	SortRating    = "rating"
)

// ProductFilter narrows ListProducts. Zero values disable each filter; an
// unknown SortBy keeps insertion order.
type ProductFilter struct {
	CategoryID *uint
	Search     string
	SortBy     string
}

func (s *MemStorage) ListProducts(filter ProductFilter) []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	search := strings.ToLower(filter.Search)
	products := make([]model.Product, 0, len(s.products))
	for _, id := range sortedKeys(s.products) {
		p := s.products[id]
		if filter.CategoryID != nil && p.CategoryID != *filter.CategoryID {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		products = append(products, p)
	}

	sortProducts(products, filter.SortBy)
	return products
}

func sortProducts(products []model.Product, sortBy string) {
	switch sortBy {
	case SortPriceAsc:
		slices.SortStableFunc(products, func(a, b model.Product) int {
			return compareFloat(parseDecimal(a.Price), parseDecimal(b.Price))
		})
	case SortPriceDesc:
		slices.SortStableFunc(products, func(a, b model.Product) int {
			return compareFloat(parseDecimal(b.Price), parseDecimal(a.Price))
		})
	case SortNewest:
		slices.SortStableFunc(products, func(a, b model.Product) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	case SortRating:
		slices.SortStableFunc(products, func(a, b model.Product) int {
			return compareFloat(ratingOf(b), ratingOf(a))
		})
	}
}

// parseDecimal reads a decimal string as a float64; anything unparseable
// counts as 0.
func parseDecimal(v string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0
	}
	return f
}

func ratingOf(p model.Product) float64 {
	if p.Rating == nil {
		return 0
	}
	return parseDecimal(*p.Rating)
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (s *MemStorage) GetProduct(id uint) (model.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	return product, ok
}

// GetProductsByCategory returns the category's products in insertion order,
// without search or sort.
func (s *MemStorage) GetProductsByCategory(categoryID uint) []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := make([]model.Product, 0)
	for _, id := range sortedKeys(s.products) {
		if p := s.products[id]; p.CategoryID == categoryID {
			products = append(products, p)
		}
	}
	return products
}

func (s *MemStorage) CreateProduct(data model.NewProduct) model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.insertProduct(data)
}

func (s *MemStorage) insertProduct(data model.NewProduct) model.Product {
	product := model.Product{
		ID:            s.nextProductID,
		Name:          data.Name,
		Description:   data.Description,
		Price:         data.Price,
		OriginalPrice: data.OriginalPrice,
		ImageURL:      data.ImageURL,
		CategoryID:    data.CategoryID,
		Stock:         data.Stock,
		IsNew:         data.IsNew,
		IsHot:         data.IsHot,
		IsOnSale:      data.IsOnSale,
		Rating:        data.Rating,
		ReviewCount:   data.ReviewCount,
		CreatedAt:     s.now(),
	}
	s.nextProductID++
	s.products[product.ID] = product
	return product
}

// UpdateProductStock overwrites the stock of a known product. Unknown ids
// are ignored.
func (s *MemStorage) UpdateProductStock(id uint, stock int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.setStock(id, stock)
}

func (s *MemStorage) setStock(id uint, stock int) {
	product, ok := s.products[id]
	if !ok {
		return
	}
	product.Stock = stock
	s.products[id] = product
}
