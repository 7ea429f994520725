package cart

import (
	"time"

	"kopige-pos/internal/menu"
)

type PaymentMethod string

const (
	MethodCash    PaymentMethod = "cash"
	MethodCard    PaymentMethod = "card"
	MethodEWallet PaymentMethod = "ewallet"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCash, MethodCard, MethodEWallet:
		return true
	}
	return false
}

// Line pairs one distinct menu item with its selected quantity.
type Line struct {
	Item     menu.Item
	Quantity int
}

// Amount is the line subtotal before tax.
func (l Line) Amount() int64 {
	return l.Item.Price * int64(l.Quantity)
}

// Totals are derived values, recomputed on every read and never stored.
type Totals struct {
	Subtotal int64
	Tax      int64
	Total    int64
	Change   int64
}

// LineSnapshot is a copy of a cart line taken at checkout, decoupled from any
// later edits to the underlying menu item.
type LineSnapshot struct {
	MenuItemID string `json:"menuItemId"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	Price      int64  `json:"price"`
}

// Transaction is the finalized checkout snapshot handed to the sale recorder.
type Transaction struct {
	Lines         []LineSnapshot
	Subtotal      int64
	Tax           int64
	Total         int64
	PaymentMethod PaymentMethod
	CashTendered  *int64
	Change        *int64
	Note          string
	Timestamp     time.Time
}
