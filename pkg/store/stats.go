package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStats summarizes order activity. An empty username covers every
// order; otherwise only that user's orders count. "This month" means
// created on or after the first of the current calendar month.
func (s *Store) OrderStats(ctx context.Context, username string) (OrderStats, error) {
	var (
		orders []Order
		err    error
	)
	if username != "" {
		orders, err = s.OrdersByUser(ctx, username)
	} else {
		orders, err = s.Orders(ctx)
	}
	if err != nil {
		return OrderStats{}, err
	}

	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	thisMonth := 0
	total := decimal.Zero
	for _, o := range orders {
		if !o.CreatedAt.Before(monthStart) {
			thisMonth++
		}
		total = total.Add(decimal.NewFromFloat(o.Totals.Total))
	}

	stats := OrderStats{
		TotalOrders:     len(orders),
		ThisMonthOrders: thisMonth,
		TotalValue:      toFloat(total.Round(2)),
	}
	if len(orders) > 0 {
		avg := total.Div(decimal.NewFromInt(int64(len(orders))))
		stats.AvgOrderValue = toFloat(avg.Round(2))
	}
	return stats, nil
}
