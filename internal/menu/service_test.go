package menu

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"kopige-pos/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockStore is a mock implementation of the store.Store interface
type MockStore struct {
	mock.Mock
}

func (m *MockStore) ListAll(ctx context.Context, collection string) ([]store.Document, error) {
	args := m.Called(ctx, collection)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.Document), args.Error(1)
}

func (m *MockStore) Get(ctx context.Context, collection, id string) (*store.Document, error) {
	args := m.Called(ctx, collection, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Document), args.Error(1)
}

func (m *MockStore) Create(ctx context.Context, collection string, v any) (string, error) {
	args := m.Called(ctx, collection, v)
	return args.String(0), args.Error(1)
}

func (m *MockStore) Update(ctx context.Context, collection, id string, patch any) error {
	args := m.Called(ctx, collection, id, patch)
	return args.Error(0)
}

func (m *MockStore) Delete(ctx context.Context, collection, id string) error {
	args := m.Called(ctx, collection, id)
	return args.Error(0)
}

func (m *MockStore) QuerySince(ctx context.Context, collection string, from time.Time) ([]store.Document, error) {
	args := m.Called(ctx, collection, from)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.Document), args.Error(1)
}

func menuDoc(t *testing.T, id string, item Item) store.Document {
	t.Helper()
	data, err := json.Marshal(item)
	require.NoError(t, err)
	return store.Document{ID: id, Data: data, CreatedAt: time.Now()}
}

func TestService_List(t *testing.T) {
	docs := []store.Document{
		menuDoc(t, "m-1", Item{Name: "Cappuccino", Price: 72000, Category: CategoryCoffee, Available: true}),
		menuDoc(t, "m-2", Item{Name: "Chocolate Chip Cookie", Price: 40000, Category: CategoryCookies, Available: true}),
		menuDoc(t, "m-3", Item{Name: "Croissant", Price: 56000, Category: CategorySides, Available: true}),
	}

	t.Run("All", func(t *testing.T) {
		st := new(MockStore)
		st.On("ListAll", mock.Anything, Collection).Return(docs, nil)

		items, err := NewService(st).List(context.Background(), ListFilter{})
		assert.NoError(t, err)
		assert.Len(t, items, 3)
		assert.Equal(t, "m-1", items[0].ID)
	})

	t.Run("ByCategory", func(t *testing.T) {
		st := new(MockStore)
		st.On("ListAll", mock.Anything, Collection).Return(docs, nil)

		items, err := NewService(st).List(context.Background(), ListFilter{Category: CategoryCookies})
		assert.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Chocolate Chip Cookie", items[0].Name)
	})

	t.Run("BySearch", func(t *testing.T) {
		st := new(MockStore)
		st.On("ListAll", mock.Anything, Collection).Return(docs, nil)

		items, err := NewService(st).List(context.Background(), ListFilter{Search: "crois"})
		assert.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Croissant", items[0].Name)
	})

	t.Run("FetchError", func(t *testing.T) {
		st := new(MockStore)
		st.On("ListAll", mock.Anything, Collection).Return(nil, errors.New("network down"))

		items, err := NewService(st).List(context.Background(), ListFilter{})
		assert.ErrorIs(t, err, ErrFailedFetchMenu)
		assert.Empty(t, items)
	})
}

func TestService_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		st := new(MockStore)
		st.On("Create", mock.Anything, Collection, mock.Anything).Return("m-9", nil)

		item, err := NewService(st).Create(context.Background(), NewItemInput{
			Name:     "Latte",
			Price:    64000,
			Category: CategoryCoffee,
		})
		assert.NoError(t, err)
		assert.Equal(t, "m-9", item.ID)
		st.AssertExpectations(t)
	})

	t.Run("NegativePrice", func(t *testing.T) {
		st := new(MockStore)

		_, err := NewService(st).Create(context.Background(), NewItemInput{
			Name:     "Latte",
			Price:    -1,
			Category: CategoryCoffee,
		})
		assert.ErrorIs(t, err, ErrNegativePrice)
		st.AssertNotCalled(t, "Create")
	})

	t.Run("InvalidCategory", func(t *testing.T) {
		st := new(MockStore)

		_, err := NewService(st).Create(context.Background(), NewItemInput{
			Name:     "Latte",
			Price:    64000,
			Category: "beverages",
		})
		assert.ErrorIs(t, err, ErrInvalidCategory)
	})

	t.Run("MissingName", func(t *testing.T) {
		st := new(MockStore)

		_, err := NewService(st).Create(context.Background(), NewItemInput{
			Name:     "   ",
			Price:    64000,
			Category: CategoryCoffee,
		})
		assert.ErrorIs(t, err, ErrNameRequired)
	})
}

func TestService_Update(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		st := new(MockStore)
		available := false
		input := UpdateItemInput{Available: &available}

		st.On("Update", mock.Anything, Collection, "m-1", input).Return(nil)
		doc := menuDoc(t, "m-1", Item{Name: "Cappuccino", Price: 72000, Category: CategoryCoffee, Available: false})
		st.On("Get", mock.Anything, Collection, "m-1").Return(&doc, nil)

		item, err := NewService(st).Update(context.Background(), "m-1", input)
		assert.NoError(t, err)
		assert.False(t, item.Available)
	})

	t.Run("NotFound", func(t *testing.T) {
		st := new(MockStore)
		name := "Flat White"
		st.On("Update", mock.Anything, Collection, "missing", mock.Anything).Return(store.ErrNotFound)

		_, err := NewService(st).Update(context.Background(), "missing", UpdateItemInput{Name: &name})
		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		st := new(MockStore)
		st.On("Delete", mock.Anything, Collection, "m-1").Return(nil)

		assert.NoError(t, NewService(st).Delete(context.Background(), "m-1"))
	})

	t.Run("NotFound", func(t *testing.T) {
		st := new(MockStore)
		st.On("Delete", mock.Anything, Collection, "missing").Return(store.ErrNotFound)

		err := NewService(st).Delete(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}
