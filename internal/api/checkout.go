package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"kopige-pos/internal/cart"
	"kopige-pos/internal/logger"
	"kopige-pos/internal/menu"
	"kopige-pos/internal/receipt"
	"kopige-pos/internal/sale"

	"go.uber.org/zap"
)

type checkoutItem struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
}

type checkoutRequest struct {
	Items         []checkoutItem     `json:"items"`
	PaymentMethod cart.PaymentMethod `json:"paymentMethod"`
	CashReceived  int64              `json:"cashReceived"`
	Note          string             `json:"note"`
}

type checkoutResponse struct {
	Sale    *sale.Sale `json:"sale"`
	Receipt string     `json:"receipt"`
}

// handleCheckout runs the whole sale: ring up the requested lines against
// the live catalog, validate payment, record the sale and render the
// receipt. The cart is built per request, so two terminals can never trip
// over a shared pending transaction. A failed store write aborts the attempt
// with the transaction intact on the client side; nothing is retried
// silently.
func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	if !requireAuth(w, r) {
		return
	}

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.PaymentMethod == "" {
		req.PaymentMethod = cart.MethodCash
	}
	if !req.PaymentMethod.Valid() {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "invalid payment method"})
		return
	}

	catalog, err := s.Menu.List(r.Context(), menu.ListFilter{})
	if err != nil {
		s.Metrics.StoreErrors.Inc()
		writeError(w, err)
		return
	}

	byID := make(map[string]menu.Item, len(catalog))
	for _, item := range catalog {
		byID[item.ID] = *item
	}

	c := cart.New()
	for _, line := range req.Items {
		if line.Quantity < 1 {
			writeJSON(w, http.StatusUnprocessableEntity,
				map[string]string{"error": fmt.Sprintf("invalid quantity for item %s", line.MenuItemID)})
			return
		}

		item, ok := byID[line.MenuItemID]
		if !ok {
			writeJSON(w, http.StatusUnprocessableEntity,
				map[string]string{"error": fmt.Sprintf("menu item %s not found", line.MenuItemID)})
			return
		}
		if !item.Available {
			writeJSON(w, http.StatusUnprocessableEntity,
				map[string]string{"error": fmt.Sprintf("menu item %s is not available", item.Name)})
			return
		}

		c.AddItem(item)
		if line.Quantity > 1 {
			c.ChangeQuantity(item.ID, line.Quantity-1)
		}
	}

	c.SetPaymentMethod(req.PaymentMethod)
	c.SetCashTendered(req.CashReceived)
	c.SetNote(req.Note)

	tx, err := c.Checkout()
	if err != nil {
		writeError(w, err)
		return
	}

	record, err := s.Sales.Record(r.Context(), tx)
	if err != nil {
		s.Metrics.StoreErrors.Inc()
		writeError(w, err)
		return
	}

	s.Metrics.Checkouts.Inc()
	s.Metrics.Revenue.Add(uint64(record.Total))

	logger.FromCtx(r.Context()).Info("checkout completed",
		zap.String("sale_id", record.ID),
		zap.Int64("total", record.Total),
		zap.String("payment_method", record.PaymentMethod),
	)

	writeJSON(w, http.StatusCreated, checkoutResponse{
		Sale:    record,
		Receipt: receipt.FromTransaction(tx, s.CafeName).Render(),
	})
}
