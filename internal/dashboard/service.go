// Package dashboard aggregates recorded sales into the revenue figures the
// overview screen shows: earnings since the start of the day, month and year,
// plus the best selling items.
package dashboard

import (
	"context"
	"sort"
	"time"

	"kopige-pos/internal/sale"
)

const topItemLimit = 5

type TopItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type Stats struct {
	DailyEarnings   int64     `json:"dailyEarnings"`
	MonthlyEarnings int64     `json:"monthlyEarnings"`
	AnnualEarnings  int64     `json:"annualEarnings"`
	TopSellingItems []TopItem `json:"topSellingItems"`
}

type Service interface {
	Stats(ctx context.Context, now time.Time) (*Stats, error)
}

type service struct {
	sales sale.Service
}

func NewService(sales sale.Service) Service {
	return &service{sales: sales}
}

// Stats reads the annual window once and derives the day and month figures
// from it, since both are subsets of the year.
func (s *service) Stats(ctx context.Context, now time.Time) (*Stats, error) {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	startOfYear := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())

	sales, err := s.sales.Since(ctx, startOfYear)
	if err != nil {
		return nil, err
	}

	stats := &Stats{}
	quantities := make(map[string]int)

	for _, record := range sales {
		stats.AnnualEarnings += record.Total
		if !record.Timestamp.Before(startOfMonth) {
			stats.MonthlyEarnings += record.Total
		}
		if !record.Timestamp.Before(startOfDay) {
			stats.DailyEarnings += record.Total
		}

		for _, item := range record.Items {
			quantities[item.Name] += item.Quantity
		}
	}

	stats.TopSellingItems = topItems(quantities)

	return stats, nil
}

func topItems(quantities map[string]int) []TopItem {
	items := make([]TopItem, 0, len(quantities))
	for name, qty := range quantities {
		items = append(items, TopItem{Name: name, Quantity: qty})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Quantity != items[j].Quantity {
			return items[i].Quantity > items[j].Quantity
		}
		return items[i].Name < items[j].Name
	})

	if len(items) > topItemLimit {
		items = items[:topItemLimit]
	}
	return items
}
