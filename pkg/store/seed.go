package store

import (
	"context"
	"errors"
	"fmt"

	"bkstore/pkg/storage"
)

// counterStart is the seed value of the order counter. The first order
// issued after seeding is numbered BK001001.
const counterStart = 1000

var defaultProducts = []Product{
	{
		ID:          "sugar-white-1",
		Name:        "Premium White Sugar",
		Category:    "Sugar",
		Description: "High-quality refined white sugar for industrial use",
		Price:       45.50,
		Unit:        "50kg bag",
		Image:       "resources/sugar-product-1.png",
		Stock:       250,
		MinOrder:    10,
		Specifications: map[string]string{
			"purity":   "99.9%",
			"moisture": "0.05% max",
			"origin":   "Local",
		},
	},
	{
		ID:          "sugar-brown-1",
		Name:        "Golden Brown Sugar",
		Category:    "Sugar",
		Description: "Natural brown sugar with rich molasses flavor",
		Price:       52.75,
		Unit:        "50kg bag",
		Image:       "resources/sugar-product-2.png",
		Stock:       180,
		MinOrder:    5,
		Specifications: map[string]string{
			"purity":   "98.5%",
			"moisture": "0.08% max",
			"origin":   "Local",
		},
	},
	{
		ID:          "sugar-powder-1",
		Name:        "Confectioners Sugar",
		Category:    "Sugar",
		Description: "Ultra-fine powdered sugar for baking applications",
		Price:       58.90,
		Unit:        "25kg bag",
		Image:       "resources/sugar-product-3.png",
		Stock:       120,
		MinOrder:    8,
		Specifications: map[string]string{
			"purity": "99.5%",
			"mesh":   "10X fine",
			"origin": "Local",
		},
	},
	{
		ID:          "packaging-bag-1",
		Name:        "Industrial Food Grade Bags",
		Category:    "Packaging",
		Description: "Food-safe packaging bags for sugar products",
		Price:       2.25,
		Unit:        "per bag",
		Image:       "resources/sugar-product-1.png",
		Stock:       5000,
		MinOrder:    100,
		Specifications: map[string]string{
			"material": "Food grade plastic",
			"capacity": "50kg",
			"features": "Moisture resistant",
		},
	},
	{
		ID:          "sweetener-1",
		Name:        "Natural Sweetener Blend",
		Category:    "Other Products",
		Description: "Healthy alternative sweetener for food processing",
		Price:       89.99,
		Unit:        "25kg bag",
		Image:       "resources/sugar-product-2.png",
		Stock:       75,
		MinOrder:    5,
		Specifications: map[string]string{
			"composition":  "Stevia blend",
			"calories":     "Zero calorie",
			"applications": "Beverages, baking",
		},
	},
}

var defaultUsers = []User{
	{
		ID:       "user-1",
		Username: "demo@bkcustomer.com",
		Password: "demo123",
		Company:  "BK Distribution",
		Contact: Contact{
			Name:    "John Baker",
			Phone:   "+1 (555) 123-4567",
			Address: "123 Bakery St, Food City, FC 12345",
		},
		Preferences: Preferences{
			Notifications: true,
			AutoSync:      true,
		},
		IsActive: true,
	},
}

// Seed writes the default catalog, demo account, empty orders collection
// and order counter, each only if its key has never been written. It is
// safe to call on every startup.
func (s *Store) Seed(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seeds := []struct {
		key   string
		value any
	}{
		{keyProducts, defaultProducts},
		{keyUsers, defaultUsers},
		{keyOrders, []Order{}},
	}
	for _, seed := range seeds {
		_, err := s.kv.Get(ctx, seed.key)
		if errors.Is(err, storage.ErrNoKey) {
			if err := s.write(ctx, seed.key, seed.value); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", seed.key, err)
		}
	}

	if _, err := s.kv.Get(ctx, keyCounter); errors.Is(err, storage.ErrNoKey) {
		return s.setCounter(ctx, counterStart)
	} else if err != nil {
		return fmt.Errorf("read %s: %w", keyCounter, err)
	}
	return nil
}
