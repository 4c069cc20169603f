package store

import (
	"context"
	"strings"
)

// Products returns the full catalog in insertion order.
func (s *Store) Products(ctx context.Context) ([]Product, error) {
	products := []Product{}
	if err := s.read(ctx, keyProducts, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Product returns the first product with the given id.
func (s *Store) Product(ctx context.Context, id string) (Product, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

// AddProduct appends a product to the catalog. The id must not already be
// taken.
func (s *Store) AddProduct(ctx context.Context, p Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.Products(ctx)
	if err != nil {
		return err
	}
	for _, existing := range products {
		if existing.ID == p.ID {
			return ErrDuplicateID
		}
	}
	return s.write(ctx, keyProducts, append(products, p))
}

// SearchProducts returns products whose name, category or description
// contains query, case-insensitively. An empty query matches everything.
func (s *Store) SearchProducts(ctx context.Context, query string) ([]Product, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	matched := []Product{}
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Category), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// ProductsByCategory returns products whose category matches exactly.
func (s *Store) ProductsByCategory(ctx context.Context, category string) ([]Product, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}
	matched := []Product{}
	for _, p := range products {
		if p.Category == category {
			matched = append(matched, p)
		}
	}
	return matched, nil
}
