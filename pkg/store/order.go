package store

import (
	"context"
	"fmt"
)

// Orders returns every order, oldest first.
func (s *Store) Orders(ctx context.Context) ([]Order, error) {
	orders := []Order{}
	if err := s.read(ctx, keyOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Order returns the order with the given id.
func (s *Store) Order(ctx context.Context, id string) (Order, error) {
	orders, err := s.Orders(ctx)
	if err != nil {
		return Order{}, err
	}
	for _, o := range orders {
		if o.ID == id {
			return o, nil
		}
	}
	return Order{}, ErrNotFound
}

// OrdersByUser returns the orders whose customer id matches username.
func (s *Store) OrdersByUser(ctx context.Context, username string) ([]Order, error) {
	orders, err := s.Orders(ctx)
	if err != nil {
		return nil, err
	}
	matched := []Order{}
	for _, o := range orders {
		if o.CustomerID == username {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

// NextOrderNumber increments the order counter, persists it, and returns
// the new value formatted as a human-facing order number. Numbers are never
// reused, even when a later step of order creation fails.
func (s *Store) NextOrderNumber(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextOrderNumber(ctx)
}

func (s *Store) nextOrderNumber(ctx context.Context) (string, error) {
	n, err := s.counter(ctx)
	if err != nil {
		return "", err
	}
	n++
	if err := s.setCounter(ctx, n); err != nil {
		return "", err
	}
	return fmt.Sprintf("BK%06d", n), nil
}

// CreateOrder validates the input, computes totals, assigns a fresh id and
// order number, and appends the order. Type defaults to PO and status to
// pending when unset.
func (s *Store) CreateOrder(ctx context.Context, in OrderInput) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(in.Items) == 0 {
		return Order{}, ErrInvalidOrder
	}
	for _, item := range in.Items {
		if item.Price < 0 || item.Quantity < 1 {
			return Order{}, ErrInvalidOrder
		}
	}

	orders, err := s.Orders(ctx)
	if err != nil {
		return Order{}, err
	}
	number, err := s.nextOrderNumber(ctx)
	if err != nil {
		return Order{}, err
	}

	now := s.now()
	o := Order{
		ID:           fmt.Sprintf("order-%d", now.UnixMilli()),
		OrderNumber:  number,
		CustomerID:   in.CustomerID,
		Type:         in.Type,
		Status:       in.Status,
		Items:        in.Items,
		Totals:       CalculateTotals(in.Items),
		CustomerInfo: in.CustomerInfo,
		Notes:        in.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if o.Type == "" {
		o.Type = TypePO
	}
	if o.Status == "" {
		o.Status = StatusPending
	}

	if err := s.write(ctx, keyOrders, append(orders, o)); err != nil {
		return Order{}, err
	}
	return o, nil
}

// UpdateOrderStatus sets the status of the order with the given id and
// refreshes its update timestamp.
func (s *Store) UpdateOrderStatus(ctx context.Context, id, status string) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.Orders(ctx)
	if err != nil {
		return Order{}, err
	}
	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		orders[i].Status = status
		orders[i].UpdatedAt = s.now()
		if err := s.write(ctx, keyOrders, orders); err != nil {
			return Order{}, err
		}
		return orders[i], nil
	}
	return Order{}, ErrNotFound
}

// ConvertToInvoice clones a sales order into a new invoice record. The
// original order is left untouched; both records persist. Orders of any
// other type are not convertible.
func (s *Store) ConvertToInvoice(ctx context.Context, id string) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.Orders(ctx)
	if err != nil {
		return Order{}, err
	}
	var original *Order
	for i := range orders {
		if orders[i].ID == id {
			original = &orders[i]
			break
		}
	}
	if original == nil {
		return Order{}, ErrNotFound
	}
	if original.Type != TypeSO {
		return Order{}, ErrNotConvertible
	}

	invoice := *original
	invoice.ID = fmt.Sprintf("invoice-%d", s.now().UnixMilli())
	invoice.Type = TypeInvoice
	invoice.Status = StatusInvoiced
	invoice.InvoiceNumber = "INV-" + original.OrderNumber
	invoice.UpdatedAt = s.now()

	if err := s.write(ctx, keyOrders, append(orders, invoice)); err != nil {
		return Order{}, err
	}
	return invoice, nil
}
