package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatsEmpty(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	stats, err := s.OrderStats(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, OrderStats{}, stats)
}

func TestOrderStats(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	lastMonth := time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)
	fix(s, lastMonth)
	_, err := s.CreateOrder(ctx, OrderInput{
		CustomerID: demoUser,
		Items:      []OrderItem{{Price: 45.50, Quantity: 10}}, // total 516.40
	})
	require.NoError(t, err)

	thisMonth := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)
	fix(s, thisMonth)
	_, err = s.CreateOrder(ctx, OrderInput{
		CustomerID: demoUser,
		Items:      []OrderItem{{Price: 52.75, Quantity: 10}}, // total 569.70
	})
	require.NoError(t, err)
	_, err = s.CreateOrder(ctx, OrderInput{
		CustomerID: "other@example.com",
		Items:      []OrderItem{{Price: 100, Quantity: 1}}, // total 133.00
	})
	require.NoError(t, err)

	// evaluate with "now" inside June
	fix(s, time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))

	all, err := s.OrderStats(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, OrderStats{
		TotalOrders:     3,
		ThisMonthOrders: 2,
		TotalValue:      1219.10,
		AvgOrderValue:   406.37,
	}, all)

	mine, err := s.OrderStats(ctx, demoUser)
	require.NoError(t, err)
	assert.Equal(t, OrderStats{
		TotalOrders:     2,
		ThisMonthOrders: 1,
		TotalValue:      1086.10,
		AvgOrderValue:   543.05,
	}, mine)
}
