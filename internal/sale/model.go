package sale

import "time"

// Item is a snapshot of one sold line, frozen at checkout.
type Item struct {
	MenuItemID string `json:"menuItemId"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	Price      int64  `json:"price"`
}

// Sale is the immutable persisted record of a completed transaction. Once
// written it is owned by the store and never mutated.
type Sale struct {
	ID            string    `json:"id,omitempty"`
	Items         []Item    `json:"items"`
	Subtotal      int64     `json:"subtotal"`
	Tax           int64     `json:"tax"`
	Total         int64     `json:"total"`
	PaymentMethod string    `json:"paymentMethod"`
	CashReceived  *int64    `json:"cashReceived"`
	Change        *int64    `json:"change"`
	Note          string    `json:"note,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}
