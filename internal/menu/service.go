package menu

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"kopige-pos/internal/logger"
	"kopige-pos/internal/store"

	"go.uber.org/zap"
)

const Collection = "menu"

// Service defines catalog access for the payment screen and the admin surface.
type Service interface {
	List(ctx context.Context, filter ListFilter) ([]*Item, error)
	Get(ctx context.Context, id string) (*Item, error)
	Create(ctx context.Context, input NewItemInput) (*Item, error)
	Update(ctx context.Context, id string, input UpdateItemInput) (*Item, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	store store.Store
}

func NewService(st store.Store) Service {
	return &service{store: st}
}

// List fetches the whole collection and filters in memory by category and
// case-insensitive name substring, the way the payment screen queries it.
func (s *service) List(ctx context.Context, filter ListFilter) ([]*Item, error) {
	docs, err := s.store.ListAll(ctx, Collection)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to fetch menu", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrFailedFetchMenu, err)
	}

	items := make([]*Item, 0, len(docs))
	search := strings.ToLower(filter.Search)

	for _, doc := range docs {
		var item Item
		if err := doc.Decode(&item); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedFetchMenu, err)
		}
		item.ID = doc.ID

		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(item.Name), search) {
			continue
		}

		items = append(items, &item)
	}

	return items, nil
}

func (s *service) Get(ctx context.Context, id string) (*Item, error) {
	doc, err := s.store.Get(ctx, Collection, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedFetchMenu, err)
	}

	var item Item
	if err := doc.Decode(&item); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedFetchMenu, err)
	}
	item.ID = doc.ID

	return &item, nil
}

func (s *service) Create(ctx context.Context, input NewItemInput) (*Item, error) {
	if err := validateNewItem(input); err != nil {
		return nil, err
	}

	item := &Item{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		ImageURL:    input.ImageURL,
		Available:   input.Available,
	}

	id, err := s.store.Create(ctx, Collection, item)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedCreateItem, err)
	}
	item.ID = id

	logger.FromCtx(ctx).Info("menu item created",
		zap.String("item_id", id),
		zap.String("name", item.Name),
	)

	return item, nil
}

func (s *service) Update(ctx context.Context, id string, input UpdateItemInput) (*Item, error) {
	if input.Price != nil && *input.Price < 0 {
		return nil, ErrNegativePrice
	}
	if input.Category != nil && !input.Category.Valid() {
		return nil, ErrInvalidCategory
	}

	err := s.store.Update(ctx, Collection, id, input)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedUpdateItem, err)
	}

	return s.Get(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string) error {
	err := s.store.Delete(ctx, Collection, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrItemNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedDeleteItem, err)
	}
	return nil
}

func validateNewItem(input NewItemInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return ErrNameRequired
	}
	if input.Price < 0 {
		return ErrNegativePrice
	}
	if !input.Category.Valid() {
		return ErrInvalidCategory
	}
	return nil
}
