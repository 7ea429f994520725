package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"kopige-pos/internal/cart"
	"kopige-pos/internal/sale"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSaleService mocks sale.Service
type MockSaleService struct {
	mock.Mock
}

func (m *MockSaleService) Record(ctx context.Context, tx *cart.Transaction) (*sale.Sale, error) {
	args := m.Called(ctx, tx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sale.Sale), args.Error(1)
}

func (m *MockSaleService) List(ctx context.Context) ([]*sale.Sale, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sale.Sale), args.Error(1)
}

func (m *MockSaleService) Since(ctx context.Context, from time.Time) ([]*sale.Sale, error) {
	args := m.Called(ctx, from)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sale.Sale), args.Error(1)
}

func TestService_Stats(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)
	startOfYear := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	records := []*sale.Sale{
		// Today.
		{
			Total:     222000,
			Timestamp: time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
			Items:     []sale.Item{{Name: "Cappuccino", Quantity: 2}, {Name: "Croissant", Quantity: 1}},
		},
		// Earlier this month.
		{
			Total:     100000,
			Timestamp: time.Date(2026, 8, 12, 9, 0, 0, 0, time.UTC),
			Items:     []sale.Item{{Name: "Cappuccino", Quantity: 1}},
		},
		// Earlier this year.
		{
			Total:     50000,
			Timestamp: time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
			Items:     []sale.Item{{Name: "Latte", Quantity: 4}},
		},
	}

	t.Run("Windows", func(t *testing.T) {
		sales := new(MockSaleService)
		sales.On("Since", mock.Anything, startOfYear).Return(records, nil)

		stats, err := NewService(sales).Stats(context.Background(), now)
		require.NoError(t, err)

		assert.Equal(t, int64(222000), stats.DailyEarnings)
		assert.Equal(t, int64(322000), stats.MonthlyEarnings)
		assert.Equal(t, int64(372000), stats.AnnualEarnings)
	})

	t.Run("TopSellers", func(t *testing.T) {
		sales := new(MockSaleService)
		sales.On("Since", mock.Anything, startOfYear).Return(records, nil)

		stats, err := NewService(sales).Stats(context.Background(), now)
		require.NoError(t, err)

		require.NotEmpty(t, stats.TopSellingItems)
		assert.Equal(t, TopItem{Name: "Latte", Quantity: 4}, stats.TopSellingItems[0])
		assert.Equal(t, TopItem{Name: "Cappuccino", Quantity: 3}, stats.TopSellingItems[1])
	})

	t.Run("Empty", func(t *testing.T) {
		sales := new(MockSaleService)
		sales.On("Since", mock.Anything, startOfYear).Return([]*sale.Sale{}, nil)

		stats, err := NewService(sales).Stats(context.Background(), now)
		require.NoError(t, err)
		assert.Zero(t, stats.AnnualEarnings)
		assert.Empty(t, stats.TopSellingItems)
	})

	t.Run("QueryFailure", func(t *testing.T) {
		sales := new(MockSaleService)
		sales.On("Since", mock.Anything, startOfYear).Return(nil, errors.New("db down"))

		_, err := NewService(sales).Stats(context.Background(), now)
		assert.Error(t, err)
	})
}
