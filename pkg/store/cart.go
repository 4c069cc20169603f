package store

import "context"

// Cart returns the current cart contents.
func (s *Store) Cart(ctx context.Context) ([]OrderItem, error) {
	cart := []OrderItem{}
	if err := s.read(ctx, keyCart, &cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// AddToCart adds quantity of the given product to the cart. The product
// must exist in the catalog. When the product is already in the cart the
// quantity accumulates but the notes are replaced with the new value.
// A new entry snapshots the product's name, price, unit and image.
func (s *Store) AddToCart(ctx context.Context, productID string, quantity int, notes string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, err := s.Product(ctx, productID)
	if err != nil {
		return err
	}
	cart, err := s.Cart(ctx)
	if err != nil {
		return err
	}

	for i := range cart {
		if cart[i].ProductID == productID {
			cart[i].Quantity += quantity
			cart[i].Notes = notes
			return s.write(ctx, keyCart, cart)
		}
	}
	cart = append(cart, OrderItem{
		ProductID: productID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  quantity,
		Unit:      product.Unit,
		Notes:     notes,
		Image:     product.Image,
	})
	return s.write(ctx, keyCart, cart)
}

// RemoveFromCart drops every entry for the given product. Removing a
// product that is not in the cart is a no-op.
func (s *Store) RemoveFromCart(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.Cart(ctx)
	if err != nil {
		return err
	}
	kept := cart[:0]
	for _, item := range cart {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	return s.write(ctx, keyCart, kept)
}

// ClearCart empties the cart. Called after a successful order submission.
func (s *Store) ClearCart(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kv.Delete(ctx, keyCart)
}
