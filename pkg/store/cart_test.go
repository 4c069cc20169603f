package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToCartSnapshotsProduct(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.AddToCart(ctx, "sugar-white-1", 10, "pallet wrap"))

	cart, err := s.Cart(ctx)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, OrderItem{
		ProductID: "sugar-white-1",
		Name:      "Premium White Sugar",
		Price:     45.50,
		Quantity:  10,
		Unit:      "50kg bag",
		Notes:     "pallet wrap",
		Image:     "resources/sugar-product-1.png",
	}, cart[0])
}

func TestAddToCartUnknownProduct(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	err := s.AddToCart(ctx, "no-such-product", 1, "")
	assert.ErrorIs(t, err, ErrNotFound)

	cart, err := s.Cart(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestAddToCartMergesQuantityReplacesNotes(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.AddToCart(ctx, "sugar-brown-1", 5, "first note"))
	require.NoError(t, s.AddToCart(ctx, "sugar-brown-1", 3, "second note"))

	cart, err := s.Cart(ctx)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, 8, cart[0].Quantity)
	assert.Equal(t, "second note", cart[0].Notes)
}

func TestRemoveFromCart(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.AddToCart(ctx, "sugar-white-1", 10, ""))
	require.NoError(t, s.AddToCart(ctx, "sugar-brown-1", 5, ""))

	require.NoError(t, s.RemoveFromCart(ctx, "sugar-white-1"))
	cart, err := s.Cart(ctx)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, "sugar-brown-1", cart[0].ProductID)

	// removing something absent is a no-op
	require.NoError(t, s.RemoveFromCart(ctx, "sugar-white-1"))
	cart, err = s.Cart(ctx)
	require.NoError(t, err)
	assert.Len(t, cart, 1)
}

func TestClearCart(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.AddToCart(ctx, "sweetener-1", 5, ""))
	require.NoError(t, s.ClearCart(ctx))

	cart, err := s.Cart(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart)
}
