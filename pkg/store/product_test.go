package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductLookup(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	p, err := s.Product(ctx, "sugar-brown-1")
	require.NoError(t, err)
	assert.Equal(t, "Golden Brown Sugar", p.Name)
	assert.Equal(t, 52.75, p.Price)

	_, err = s.Product(ctx, "no-such-product")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddProduct(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	p := Product{ID: "sugar-cube-1", Name: "Sugar Cubes", Category: "Sugar", Price: 12.00, Unit: "5kg box", Stock: 40, MinOrder: 2}
	require.NoError(t, s.AddProduct(ctx, p))

	products, err := s.Products(ctx)
	require.NoError(t, err)
	require.Len(t, products, 6)
	// insertion order preserved
	assert.Equal(t, "sugar-cube-1", products[5].ID)

	err = s.AddProduct(ctx, p)
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestSearchProducts(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	tests := []struct {
		query string
		want  int
	}{
		{"sugar", 4},     // name, category or description all count
		{"BROWN", 1},     // case-insensitive
		{"packaging", 1}, // matches category
		{"sweetener", 1}, // matches name and description
		{"", 5},          // empty query matches everything
		{"quinoa", 0},
	}
	for _, tt := range tests {
		got, err := s.SearchProducts(ctx, tt.query)
		require.NoError(t, err)
		assert.Len(t, got, tt.want, "query %q", tt.query)
	}
}

func TestProductsByCategory(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	sugar, err := s.ProductsByCategory(ctx, "Sugar")
	require.NoError(t, err)
	assert.Len(t, sugar, 3)

	// exact and case-sensitive
	none, err := s.ProductsByCategory(ctx, "sugar")
	require.NoError(t, err)
	assert.Empty(t, none)
}
