package database

import (
	"sync"
	"testing"

	"github.com/ericoliveiras/creative-store/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() model.NewOrder {
	return model.NewOrder{
		CustomerName:    "Ada Lovelace",
		CustomerEmail:   "ada@example.com",
		CustomerPhone:   "5551234567",
		ShippingAddress: "12 Analytical Street, London",
		TotalAmount:     "277.00",
	}
}

func TestCreateOrderDecrementsStockAndSnapshotsPrice(t *testing.T) {
	s := NewMemStorage()
	before, _ := s.GetProduct(2)

	order := s.CreateOrder(sampleOrder(), []model.NewOrderItem{{ProductID: 2, Quantity: 3, Price: "89.00"}})

	assert.Equal(t, uint(1), order.ID)
	assert.Equal(t, "277.00", order.TotalAmount)
	assert.False(t, order.CreatedAt.IsZero())

	after, _ := s.GetProduct(2)
	assert.Equal(t, before.Stock-3, after.Stock)

	items := s.GetOrderItems(order.ID)
	require.Len(t, items, 1)
	assert.Equal(t, order.ID, items[0].OrderID)
	assert.Equal(t, "89.00", items[0].Price)
	assert.Equal(t, 3, items[0].Quantity)

	// Live price changes never leak into the snapshot.
	s.mu.Lock()
	p := s.products[2]
	p.Price = "120.00"
	s.products[2] = p
	s.mu.Unlock()

	items = s.GetOrderItems(order.ID)
	require.Len(t, items, 1)
	assert.Equal(t, "89.00", items[0].Price)
	assert.Equal(t, "120.00", items[0].Product.Price)
}

func TestCreateOrderMultipleItems(t *testing.T) {
	s := NewMemStorage()

	order := s.CreateOrder(sampleOrder(), []model.NewOrderItem{
		{ProductID: 1, Quantity: 1, Price: "158.00"},
		{ProductID: 3, Quantity: 2, Price: "45.00"},
		{ProductID: 1, Quantity: 2, Price: "158.00"},
	})

	items := s.GetOrderItems(order.ID)
	require.Len(t, items, 3)
	assert.Less(t, items[0].ID, items[1].ID)
	assert.Less(t, items[1].ID, items[2].ID)

	notebook, _ := s.GetProduct(1)
	assert.Equal(t, 22, notebook.Stock)
	tape, _ := s.GetProduct(3)
	assert.Equal(t, 48, tape.Stock)
}

func TestCreateOrderAllowsNegativeStock(t *testing.T) {
	s := NewMemStorage()

	s.CreateOrder(sampleOrder(), []model.NewOrderItem{{ProductID: 7, Quantity: 12, Price: "220.00"}})

	pen, _ := s.GetProduct(7)
	assert.Equal(t, -2, pen.Stock)
}

func TestCreateOrderWithUnknownProduct(t *testing.T) {
	s := NewMemStorage()

	order := s.CreateOrder(sampleOrder(), []model.NewOrderItem{
		{ProductID: 404, Quantity: 1, Price: "1.00"},
		{ProductID: 2, Quantity: 1, Price: "89.00"},
	})

	_, ok := s.GetProduct(404)
	assert.False(t, ok, "stock update on an unknown product is a no-op")

	items := s.GetOrderItems(order.ID)
	require.Len(t, items, 1, "items without a product are skipped on read")
	assert.Equal(t, uint(2), items[0].ProductID)
}

func TestGetOrder(t *testing.T) {
	s := NewMemStorage()
	first := s.CreateOrder(sampleOrder(), nil)
	second := s.CreateOrder(sampleOrder(), nil)

	got, ok := s.GetOrder(second.ID)
	require.True(t, ok)
	assert.Equal(t, second, got)

	_, ok = s.GetOrder(99)
	assert.False(t, ok)

	assert.Equal(t, []model.Order{first, second}, s.ListOrders())
	assert.Empty(t, s.GetOrderItems(first.ID))
}

func TestCreateOrderDoesNotClearCart(t *testing.T) {
	s := NewMemStorage()
	s.AddToCart(model.NewCartItem{SessionID: "abc", ProductID: 2, Quantity: 1})

	s.CreateOrder(sampleOrder(), []model.NewOrderItem{{ProductID: 2, Quantity: 1, Price: "89.00"}})

	assert.Len(t, s.GetCartItems("abc"), 1)
}

func TestConcurrentOrdersKeepCountersConsistent(t *testing.T) {
	s := NewMemStorage()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.CreateOrder(sampleOrder(), []model.NewOrderItem{{ProductID: 3, Quantity: 1, Price: "45.00"}})
		}()
	}
	wg.Wait()

	assert.Len(t, s.ListOrders(), 20)
	tape, _ := s.GetProduct(3)
	assert.Equal(t, 30, tape.Stock)
}
