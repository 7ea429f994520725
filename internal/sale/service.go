package sale

import (
	"context"
	"fmt"
	"sort"
	"time"

	"kopige-pos/internal/cart"
	"kopige-pos/internal/logger"
	"kopige-pos/internal/store"

	"go.uber.org/zap"
)

const Collection = "sales"

// Service records finalized transactions and reads them back for the sales
// list and the dashboard.
type Service interface {
	// Record persists a checkout snapshot as an immutable sale record. The
	// caller must treat a failure as fatal to that checkout attempt: the
	// pending transaction stays with the caller for an explicit retry, it is
	// never retried here in the background.
	Record(ctx context.Context, tx *cart.Transaction) (*Sale, error)

	// List returns every recorded sale, newest first.
	List(ctx context.Context) ([]*Sale, error)

	// Since returns sales created at or after from, oldest first.
	Since(ctx context.Context, from time.Time) ([]*Sale, error)
}

type service struct {
	store store.Store
}

func NewService(st store.Store) Service {
	return &service{store: st}
}

func (s *service) Record(ctx context.Context, tx *cart.Transaction) (*Sale, error) {
	if len(tx.Lines) == 0 {
		return nil, ErrNoLines
	}

	items := make([]Item, 0, len(tx.Lines))
	for _, line := range tx.Lines {
		items = append(items, Item{
			MenuItemID: line.MenuItemID,
			Name:       line.Name,
			Quantity:   line.Quantity,
			Price:      line.Price,
		})
	}

	record := &Sale{
		Items:         items,
		Subtotal:      tx.Subtotal,
		Tax:           tx.Tax,
		Total:         tx.Total,
		PaymentMethod: string(tx.PaymentMethod),
		CashReceived:  tx.CashTendered,
		Change:        tx.Change,
		Note:          tx.Note,
		Timestamp:     tx.Timestamp,
	}

	id, err := s.store.Create(ctx, Collection, record)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to save sale",
			zap.Int64("total", tx.Total),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrFailedSaveSale, err)
	}
	record.ID = id

	logger.FromCtx(ctx).Info("sale recorded",
		zap.String("sale_id", id),
		zap.Int64("total", record.Total),
		zap.String("payment_method", record.PaymentMethod),
	)

	return record, nil
}

func (s *service) List(ctx context.Context) ([]*Sale, error) {
	docs, err := s.store.ListAll(ctx, Collection)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedListSales, err)
	}

	sales, err := decodeSales(docs)
	if err != nil {
		return nil, err
	}

	sort.Slice(sales, func(i, j int) bool {
		return sales[i].Timestamp.After(sales[j].Timestamp)
	})

	return sales, nil
}

func (s *service) Since(ctx context.Context, from time.Time) ([]*Sale, error) {
	docs, err := s.store.QuerySince(ctx, Collection, from)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedListSales, err)
	}

	return decodeSales(docs)
}

func decodeSales(docs []store.Document) ([]*Sale, error) {
	sales := make([]*Sale, 0, len(docs))
	for _, doc := range docs {
		var record Sale
		if err := doc.Decode(&record); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedListSales, err)
		}
		record.ID = doc.ID
		sales = append(sales, &record)
	}
	return sales, nil
}
