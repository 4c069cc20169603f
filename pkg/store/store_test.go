package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bkstore/pkg/storage/memory"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New(memory.New())
	require.NoError(t, s.Seed(context.Background()))
	return s
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.CreateOrder(ctx, OrderInput{
		CustomerID: "demo@bkcustomer.com",
		Items:      []OrderItem{{ProductID: "sugar-white-1", Price: 45.50, Quantity: 10}},
	})
	require.NoError(t, err)

	// A second seed must not reset collections or the counter.
	require.NoError(t, s.Seed(ctx))

	orders, err := s.Orders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	number, err := s.NextOrderNumber(ctx)
	require.NoError(t, err)
	require.Equal(t, "BK001002", number)
}

func TestSeedDefaults(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	products, err := s.Products(ctx)
	require.NoError(t, err)
	require.Len(t, products, 5)

	users, err := s.Users(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "demo@bkcustomer.com", users[0].Username)

	orders, err := s.Orders(ctx)
	require.NoError(t, err)
	require.Empty(t, orders)

	cart, err := s.Cart(ctx)
	require.NoError(t, err)
	require.Empty(t, cart)
}

// fix pins the store clock.
func fix(s *Store, at time.Time) {
	s.now = func() time.Time { return at }
}
