package database

import "github.com/ericoliveiras/creative-store/internal/model"

// CreateOrder stores the order and one OrderItem per entry, and lowers each
// referenced product's stock by the item quantity. Stock is allowed to go
// negative and nothing is rolled back.
func (s *MemStorage) CreateOrder(data model.NewOrder, items []model.NewOrderItem) model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := model.Order{
		ID:              s.nextOrderID,
		CustomerName:    data.CustomerName,
		CustomerEmail:   data.CustomerEmail,
		CustomerPhone:   data.CustomerPhone,
		ShippingAddress: data.ShippingAddress,
		TotalAmount:     data.TotalAmount,
		CreatedAt:       s.now(),
	}
	s.nextOrderID++
	s.orders[order.ID] = order

	for _, it := range items {
		orderItem := model.OrderItem{
			ID:        s.nextOrderItemID,
			OrderID:   order.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		}
		s.nextOrderItemID++
		s.orderItems[orderItem.ID] = orderItem

		// TODO: decide on an oversell policy (reject, clamp or backorder)
		// once one is agreed; for now stock is decremented unconditionally.
		s.setStock(it.ProductID, s.products[it.ProductID].Stock-it.Quantity)
	}

	return order
}

func (s *MemStorage) GetOrder(id uint) (model.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	return order, ok
}

// ListOrders returns every order in insertion order.
func (s *MemStorage) ListOrders() []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make([]model.Order, 0, len(s.orders))
	for _, id := range sortedKeys(s.orders) {
		orders = append(orders, s.orders[id])
	}
	return orders
}

func (s *MemStorage) GetOrderItems(orderID uint) []model.OrderItemWithProduct {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []model.OrderItem
	for _, id := range sortedKeys(s.orderItems) {
		if item := s.orderItems[id]; item.OrderID == orderID {
			items = append(items, item)
		}
	}

	return joinOrSkip(items, s.products,
		func(item model.OrderItem) uint { return item.ProductID },
		func(item model.OrderItem, p model.Product) model.OrderItemWithProduct {
			return model.OrderItemWithProduct{OrderItem: item, Product: p}
		})
}
