// /internal/database/database.go
package database

import (
	"slices"
	"sync"
	"time"

	"github.com/ericoliveiras/creative-store/internal/model"
)

// Storage is the data layer used by the HTTP handlers. Lookups report a
// missing entity through the boolean result; no operation returns an error.
type Storage interface {
	// Categories
	ListCategories() []model.Category
	GetCategory(id uint) (model.Category, bool)
	GetCategoryBySlug(slug string) (model.Category, bool)
	CreateCategory(data model.NewCategory) model.Category

	// Products
	ListProducts(filter ProductFilter) []model.Product
	GetProduct(id uint) (model.Product, bool)
	GetProductsByCategory(categoryID uint) []model.Product
	CreateProduct(data model.NewProduct) model.Product
	UpdateProductStock(id uint, stock int)

	// Cart
	GetCartItems(sessionID string) []model.CartItemWithProduct
	GetCartItem(id uint) (model.CartItem, bool)
	AddToCart(data model.NewCartItem) model.CartItem
	UpdateCartItem(id uint, quantity int)
	RemoveFromCart(id uint)
	ClearCart(sessionID string)

	// Orders
	CreateOrder(data model.NewOrder, items []model.NewOrderItem) model.Order
	GetOrder(id uint) (model.Order, bool)
	ListOrders() []model.Order
	GetOrderItems(orderID uint) []model.OrderItemWithProduct
}

var _ Storage = (*MemStorage)(nil)

// MemStorage keeps every collection in process memory. Each method holds
// the store lock for its whole duration, so calls are atomic one by one but
// nothing spans several calls.
type MemStorage struct {
	mu sync.Mutex

	categories map[uint]model.Category
	products   map[uint]model.Product
	cartItems  map[uint]model.CartItem
	orders     map[uint]model.Order
	orderItems map[uint]model.OrderItem

	nextCategoryID  uint
	nextProductID   uint
	nextCartItemID  uint
	nextOrderID     uint
	nextOrderItemID uint

	now  func() time.Time
	seed bool
}

// Option configures a MemStorage at construction.
type Option func(*MemStorage)

// WithClock replaces the timestamp source used for createdAt fields.
func WithClock(now func() time.Time) Option {
	return func(s *MemStorage) {
		s.now = now
	}
}

// WithoutSeed skips the demo catalog.
func WithoutSeed() Option {
	return func(s *MemStorage) {
		s.seed = false
	}
}

// NewMemStorage builds an empty store and, unless WithoutSeed is given,
// loads the demo catalog.
func NewMemStorage(opts ...Option) *MemStorage {
	s := &MemStorage{
		categories:      make(map[uint]model.Category),
		products:        make(map[uint]model.Product),
		cartItems:       make(map[uint]model.CartItem),
		orders:          make(map[uint]model.Order),
		orderItems:      make(map[uint]model.OrderItem),
		nextCategoryID:  1,
		nextProductID:   1,
		nextCartItemID:  1,
		nextOrderID:     1,
		nextOrderItemID: 1,
		now:             time.Now,
		seed:            true,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.seed {
		seedCatalog(s)
	}
	return s
}

// sortedKeys returns the ids of m in ascending order. Ids are assigned
// sequentially, so this is insertion order.
func sortedKeys[V any](m map[uint]V) []uint {
	keys := make([]uint, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
