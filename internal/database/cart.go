package database

import "github.com/ericoliveiras/creative-store/internal/model"

// GetCartItems returns the session's cart lines joined to their products.
func (s *MemStorage) GetCartItems(sessionID string) []model.CartItemWithProduct {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []model.CartItem
	for _, id := range sortedKeys(s.cartItems) {
		if item := s.cartItems[id]; item.SessionID == sessionID {
			items = append(items, item)
		}
	}

	return joinOrSkip(items, s.products,
		func(item model.CartItem) uint { return item.ProductID },
		func(item model.CartItem, p model.Product) model.CartItemWithProduct {
			return model.CartItemWithProduct{CartItem: item, Product: p}
		})
}

func (s *MemStorage) GetCartItem(id uint) (model.CartItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.cartItems[id]
	return item, ok
}

// AddToCart adds data.Quantity to the session's existing line for the
// product, or creates the line when there is none.
func (s *MemStorage) AddToCart(data model.NewCartItem) model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range sortedKeys(s.cartItems) {
		item := s.cartItems[id]
		if item.SessionID == data.SessionID && item.ProductID == data.ProductID {
			item.Quantity += data.Quantity
			s.cartItems[id] = item
			return item
		}
	}

	item := model.CartItem{
		ID:        s.nextCartItemID,
		SessionID: data.SessionID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		CreatedAt: s.now(),
	}
	s.nextCartItemID++
	s.cartItems[item.ID] = item
	return item
}

// UpdateCartItem sets the quantity of a known line. Zero or negative
// quantities are stored as given; removing the line is up to the caller.
func (s *MemStorage) UpdateCartItem(id uint, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.cartItems[id]
	if !ok {
		return
	}
	item.Quantity = quantity
	s.cartItems[id] = item
}

func (s *MemStorage) RemoveFromCart(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.cartItems, id)
}

func (s *MemStorage) ClearCart(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, item := range s.cartItems {
		if item.SessionID == sessionID {
			delete(s.cartItems, id)
		}
	}
}
