package receipt

import (
	"strings"
	"testing"
	"time"

	"kopige-pos/internal/cart"
	"kopige-pos/internal/sale"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTransaction() *cart.Transaction {
	cash := int64(250000)
	change := int64(28000)
	return &cart.Transaction{
		Lines: []cart.LineSnapshot{
			{MenuItemID: "m-1", Name: "Cappuccino", Quantity: 2, Price: 72000},
			{MenuItemID: "m-3", Name: "Croissant", Quantity: 1, Price: 56000},
		},
		Subtotal:      200000,
		Tax:           22000,
		Total:         222000,
		PaymentMethod: cart.MethodCash,
		CashTendered:  &cash,
		Change:        &change,
		Note:          "extra hot",
		Timestamp:     time.Date(2026, 8, 30, 14, 30, 0, 0, time.UTC),
	}
}

func TestFromTransaction(t *testing.T) {
	r := FromTransaction(sampleTransaction(), "Kopige Coffee")

	assert.Equal(t, "Kopige Coffee", r.CafeName)
	assert.True(t, strings.HasPrefix(r.Number, "RCP-"))
	require.Len(t, r.Lines, 2)
	assert.Equal(t, int64(144000), r.Lines[0].Amount)
	assert.Equal(t, int64(56000), r.Lines[1].Amount)
	assert.Equal(t, "Saturday, 30 August 2026", r.Date)
	assert.Equal(t, "14:30", r.Time)
}

func TestRenderCashReceipt(t *testing.T) {
	out := FromTransaction(sampleTransaction(), "Kopige Coffee").Render()

	assert.Contains(t, out, "Kopige Coffee")
	assert.Contains(t, out, "Cappuccino")
	assert.Contains(t, out, "2 x Rp72.000")
	assert.Contains(t, out, "Rp144.000")
	assert.Contains(t, out, "Subtotal")
	assert.Contains(t, out, "Rp200.000")
	assert.Contains(t, out, "Tax (11%)")
	assert.Contains(t, out, "Rp22.000")
	assert.Contains(t, out, "Rp222.000")
	assert.Contains(t, out, "Cash Received")
	assert.Contains(t, out, "Rp250.000")
	assert.Contains(t, out, "Change")
	assert.Contains(t, out, "Rp28.000")
	assert.Contains(t, out, "Note: extra hot")
}

func TestRenderCardReceiptOmitsCashBlock(t *testing.T) {
	tx := sampleTransaction()
	tx.PaymentMethod = cart.MethodCard
	tx.CashTendered = nil
	tx.Change = nil
	tx.Note = ""

	out := FromTransaction(tx, "Kopige Coffee").Render()

	assert.Contains(t, out, "card")
	assert.NotContains(t, out, "Cash Received")
	assert.NotContains(t, out, "Change")
	assert.NotContains(t, out, "Note:")
}

func TestFromSaleReprint(t *testing.T) {
	cash := int64(250000)
	change := int64(28000)
	s := &sale.Sale{
		ID: "sale-1",
		Items: []sale.Item{
			{MenuItemID: "m-1", Name: "Cappuccino", Quantity: 2, Price: 72000},
		},
		Subtotal:      144000,
		Tax:           15840,
		Total:         159840,
		PaymentMethod: "cash",
		CashReceived:  &cash,
		Change:        &change,
		Timestamp:     time.Date(2026, 8, 30, 9, 15, 0, 0, time.UTC),
	}

	out := FromSale(s, "Kopige Coffee").Render()
	assert.Contains(t, out, "Cappuccino")
	assert.Contains(t, out, "Rp159.840")
}
