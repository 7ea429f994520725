// Package cart holds the pending transaction of a single cashier: the line
// items being rung up, the chosen payment method, the cash tendered and an
// optional note. The engine has no storage or rendering dependencies; the
// payment surface drives it and the sale recorder consumes its checkout
// snapshots. One cart belongs to one transaction at a time and is not safe
// for concurrent mutation.
package cart

import (
	"time"

	"kopige-pos/internal/menu"
)

const taxRatePercent = 11

// Cart is the mutable working state of a pending transaction.
type Cart struct {
	lines  []*Line
	method PaymentMethod
	cash   int64
	note   string
}

func New() *Cart {
	return &Cart{method: MethodCash}
}

// AddItem rings up one unit of an item. A repeat selection increments the
// existing line instead of appending a duplicate; first-seen order is kept.
// Unavailable items are ignored.
func (c *Cart) AddItem(item menu.Item) {
	if !item.Available {
		return
	}

	for _, line := range c.lines {
		if line.Item.ID == item.ID {
			line.Quantity++
			return
		}
	}

	c.lines = append(c.lines, &Line{Item: item, Quantity: 1})
}

// ChangeQuantity adds delta to the matching line's quantity, removing the
// line when the result drops to zero or below. Unknown ids are a no-op.
func (c *Cart) ChangeQuantity(itemID string, delta int) {
	for i, line := range c.lines {
		if line.Item.ID != itemID {
			continue
		}

		line.Quantity += delta
		if line.Quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.resetCashIfEmpty()
		}
		return
	}
}

// RemoveItem drops the line unconditionally.
func (c *Cart) RemoveItem(itemID string) {
	for i, line := range c.lines {
		if line.Item.ID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.resetCashIfEmpty()
			return
		}
	}
}

func (c *Cart) SetPaymentMethod(method PaymentMethod) {
	c.method = method
}

func (c *Cart) PaymentMethod() PaymentMethod {
	return c.method
}

// SetCashTendered records the cash offered. The amount is stored as given;
// Totals clamps change at zero so an odd input can never produce negative
// change.
func (c *Cart) SetCashTendered(amount int64) {
	c.cash = amount
}

func (c *Cart) CashTendered() int64 {
	return c.cash
}

func (c *Cart) SetNote(note string) {
	c.note = note
}

func (c *Cart) Note() string {
	return c.note
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Lines returns the cart contents in first-selection order.
func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.lines))
	for _, line := range c.lines {
		out = append(out, *line)
	}
	return out
}

// Totals recomputes subtotal, tax, total and change. Tax is rounded half-up
// once on the summed subtotal; rounding per line would diverge on carts with
// multiple lines.
func (c *Cart) Totals() Totals {
	var subtotal int64
	for _, line := range c.lines {
		subtotal += line.Amount()
	}

	tax := roundTax(subtotal)
	total := subtotal + tax

	change := c.cash - total
	if change < 0 {
		change = 0
	}

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    total,
		Change:   change,
	}
}

// CanCheckout reports whether the transaction can be finalized: the cart must
// be non-empty, and a cash payment needs enough cash tendered.
func (c *Cart) CanCheckout() bool {
	if c.IsEmpty() {
		return false
	}
	if c.method == MethodCash && c.cash < c.Totals().Total {
		return false
	}
	return true
}

// Checkout finalizes the transaction. On success it returns an immutable
// snapshot ready for the sale recorder and resets the cart to its initial
// state. On failure the pending state is left untouched so the cashier can
// correct and retry.
func (c *Cart) Checkout() (*Transaction, error) {
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}

	totals := c.Totals()
	if c.method == MethodCash && c.cash < totals.Total {
		return nil, ErrInsufficientCash
	}

	lines := make([]LineSnapshot, 0, len(c.lines))
	for _, line := range c.lines {
		lines = append(lines, LineSnapshot{
			MenuItemID: line.Item.ID,
			Name:       line.Item.Name,
			Quantity:   line.Quantity,
			Price:      line.Item.Price,
		})
	}

	tx := &Transaction{
		Lines:         lines,
		Subtotal:      totals.Subtotal,
		Tax:           totals.Tax,
		Total:         totals.Total,
		PaymentMethod: c.method,
		Note:          c.note,
		Timestamp:     time.Now().UTC(),
	}

	// Cash fields are recorded only for cash payments, as null otherwise.
	if c.method == MethodCash {
		cash := c.cash
		change := totals.Change
		tx.CashTendered = &cash
		tx.Change = &change
	}

	c.lines = nil
	c.cash = 0
	c.note = ""
	c.method = MethodCash

	return tx, nil
}

func (c *Cart) resetCashIfEmpty() {
	if len(c.lines) == 0 {
		c.cash = 0
	}
}

// roundTax applies the 11% rate with half-up rounding on the summed subtotal.
func roundTax(subtotal int64) int64 {
	return (subtotal*taxRatePercent + 50) / 100
}
