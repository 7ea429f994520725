package cart

import (
	"testing"

	"kopige-pos/internal/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	cappuccino = menu.Item{ID: "m-1", Name: "Cappuccino", Price: 72000, Category: menu.CategoryCoffee, Available: true}
	cookie     = menu.Item{ID: "m-2", Name: "Chocolate Chip Cookie", Price: 40000, Category: menu.CategoryCookies, Available: true}
	croissant  = menu.Item{ID: "m-3", Name: "Croissant", Price: 56000, Category: menu.CategorySides, Available: true}
	soldOut    = menu.Item{ID: "m-4", Name: "Avocado Toast", Price: 104000, Category: menu.CategorySides, Available: false}
)

func TestAddItem(t *testing.T) {
	t.Run("RepeatedAddCollapsesToOneLine", func(t *testing.T) {
		c := New()
		for i := 0; i < 5; i++ {
			c.AddItem(cappuccino)
		}

		lines := c.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 5, lines[0].Quantity)
	})

	t.Run("PreservesFirstSeenOrder", func(t *testing.T) {
		c := New()
		c.AddItem(croissant)
		c.AddItem(cappuccino)
		c.AddItem(croissant)

		lines := c.Lines()
		require.Len(t, lines, 2)
		assert.Equal(t, "m-3", lines[0].Item.ID)
		assert.Equal(t, "m-1", lines[1].Item.ID)
	})

	t.Run("IgnoresUnavailableItem", func(t *testing.T) {
		c := New()
		c.AddItem(soldOut)
		assert.True(t, c.IsEmpty())
	})
}

func TestChangeQuantity(t *testing.T) {
	t.Run("IncrementAndDecrement", func(t *testing.T) {
		c := New()
		c.AddItem(cappuccino)
		c.ChangeQuantity("m-1", 2)
		assert.Equal(t, 3, c.Lines()[0].Quantity)

		c.ChangeQuantity("m-1", -1)
		assert.Equal(t, 2, c.Lines()[0].Quantity)
	})

	t.Run("DecrementToZeroRemovesLine", func(t *testing.T) {
		c := New()
		c.AddItem(cappuccino)
		c.AddItem(cappuccino)
		c.ChangeQuantity("m-1", -2)
		assert.True(t, c.IsEmpty())
	})

	t.Run("EmptyingCartResetsCash", func(t *testing.T) {
		c := New()
		c.AddItem(cappuccino)
		c.SetCashTendered(100000)
		c.ChangeQuantity("m-1", -1)

		assert.True(t, c.IsEmpty())
		assert.Zero(t, c.CashTendered())
	})

	t.Run("CashKeptWhileLinesRemain", func(t *testing.T) {
		c := New()
		c.AddItem(cappuccino)
		c.AddItem(cookie)
		c.SetCashTendered(100000)
		c.ChangeQuantity("m-1", -1)

		assert.Equal(t, int64(100000), c.CashTendered())
	})

	t.Run("UnknownIDIsNoop", func(t *testing.T) {
		c := New()
		c.AddItem(cappuccino)
		c.ChangeQuantity("nope", -1)
		assert.Len(t, c.Lines(), 1)
	})
}

func TestRemoveItem(t *testing.T) {
	t.Run("RemovesUnconditionally", func(t *testing.T) {
		c := New()
		c.AddItem(cappuccino)
		c.ChangeQuantity("m-1", 4)
		c.RemoveItem("m-1")
		assert.True(t, c.IsEmpty())
	})

	t.Run("EmptyingCartResetsCash", func(t *testing.T) {
		c := New()
		c.AddItem(cookie)
		c.SetCashTendered(50000)
		c.RemoveItem("m-2")
		assert.Zero(t, c.CashTendered())
	})
}

func TestTotals(t *testing.T) {
	t.Run("TaxRoundedOnceOnSummedSubtotal", func(t *testing.T) {
		// 72000×1 + 40000×2 = 152000, tax = round(16720) = 16720
		c := New()
		c.AddItem(cappuccino)
		c.AddItem(cookie)
		c.ChangeQuantity("m-2", 1)

		totals := c.Totals()
		assert.Equal(t, int64(152000), totals.Subtotal)
		assert.Equal(t, int64(16720), totals.Tax)
		assert.Equal(t, int64(168720), totals.Total)
	})

	t.Run("TaxIndependentOfLineOrder", func(t *testing.T) {
		a := New()
		a.AddItem(cappuccino)
		a.AddItem(cookie)

		b := New()
		b.AddItem(cookie)
		b.AddItem(cappuccino)

		assert.Equal(t, a.Totals().Tax, b.Totals().Tax)
	})

	t.Run("TaxRoundsHalfUp", func(t *testing.T) {
		item := menu.Item{ID: "x", Name: "Odd", Price: 50, Available: true}
		c := New()
		c.AddItem(item)

		// 50 * 0.11 = 5.5, rounds up to 6
		assert.Equal(t, int64(6), c.Totals().Tax)
	})

	t.Run("ChangeNeverNegative", func(t *testing.T) {
		c := New()
		c.AddItem(cappuccino)
		c.AddItem(cookie)
		c.ChangeQuantity("m-2", 1)
		c.SetCashTendered(100000)

		// total 168720, tendered 100000
		assert.Zero(t, c.Totals().Change)
	})

	t.Run("NegativeTenderClampedChange", func(t *testing.T) {
		c := New()
		c.AddItem(cookie)
		c.SetCashTendered(-5000)
		assert.Zero(t, c.Totals().Change)
	})
}

func TestCanCheckout(t *testing.T) {
	t.Run("FalseForEmptyCart", func(t *testing.T) {
		for _, method := range []PaymentMethod{MethodCash, MethodCard, MethodEWallet} {
			c := New()
			c.SetPaymentMethod(method)
			assert.False(t, c.CanCheckout(), "method %s", method)
		}
	})

	t.Run("FalseForInsufficientCash", func(t *testing.T) {
		c := New()
		c.AddItem(cappuccino)
		c.SetCashTendered(c.Totals().Total - 1)
		assert.False(t, c.CanCheckout())
	})

	t.Run("TrueForExactCash", func(t *testing.T) {
		c := New()
		c.AddItem(cappuccino)
		c.SetCashTendered(c.Totals().Total)
		assert.True(t, c.CanCheckout())
	})

	t.Run("NonCashIgnoresTender", func(t *testing.T) {
		c := New()
		c.AddItem(cappuccino)
		c.SetPaymentMethod(MethodCard)
		assert.True(t, c.CanCheckout())
	})
}

func TestCheckout(t *testing.T) {
	t.Run("EmptyCart", func(t *testing.T) {
		c := New()
		_, err := c.Checkout()
		assert.ErrorIs(t, err, ErrEmptyCart)
	})

	t.Run("InsufficientCashLeavesStateUntouched", func(t *testing.T) {
		c := New()
		c.AddItem(cappuccino)
		c.SetCashTendered(10000)

		_, err := c.Checkout()
		assert.ErrorIs(t, err, ErrInsufficientCash)
		assert.Len(t, c.Lines(), 1)
		assert.Equal(t, int64(10000), c.CashTendered())
	})

	t.Run("EndToEndCashSale", func(t *testing.T) {
		// Cappuccino ×2 + Croissant ×1, cash 250000
		c := New()
		c.AddItem(cappuccino)
		c.AddItem(cappuccino)
		c.AddItem(croissant)
		c.SetCashTendered(250000)
		c.SetNote("takeaway")

		tx, err := c.Checkout()
		require.NoError(t, err)

		assert.Equal(t, int64(200000), tx.Subtotal)
		assert.Equal(t, int64(22000), tx.Tax)
		assert.Equal(t, int64(222000), tx.Total)
		require.NotNil(t, tx.CashTendered)
		require.NotNil(t, tx.Change)
		assert.Equal(t, int64(250000), *tx.CashTendered)
		assert.Equal(t, int64(28000), *tx.Change)
		assert.Equal(t, "takeaway", tx.Note)
		assert.False(t, tx.Timestamp.IsZero())

		require.Len(t, tx.Lines, 2)
		assert.Equal(t, LineSnapshot{MenuItemID: "m-1", Name: "Cappuccino", Quantity: 2, Price: 72000}, tx.Lines[0])
		assert.Equal(t, LineSnapshot{MenuItemID: "m-3", Name: "Croissant", Quantity: 1, Price: 56000}, tx.Lines[1])

		// Engine fully reset afterwards.
		assert.True(t, c.IsEmpty())
		assert.Zero(t, c.CashTendered())
		assert.Empty(t, c.Note())
		assert.Equal(t, MethodCash, c.PaymentMethod())
	})

	t.Run("CardSaleHasNilCashFields", func(t *testing.T) {
		c := New()
		c.AddItem(cookie)
		c.SetPaymentMethod(MethodCard)

		tx, err := c.Checkout()
		require.NoError(t, err)
		assert.Nil(t, tx.CashTendered)
		assert.Nil(t, tx.Change)
		assert.Equal(t, MethodCard, tx.PaymentMethod)
	})

	t.Run("SnapshotDecoupledFromCatalogEdits", func(t *testing.T) {
		item := menu.Item{ID: "m-7", Name: "Espresso", Price: 48000, Available: true}
		c := New()
		c.AddItem(item)
		c.SetCashTendered(100000)

		tx, err := c.Checkout()
		require.NoError(t, err)

		// A later price change must not leak into the snapshot.
		item.Price = 99000
		item.Name = "Double Espresso"
		assert.Equal(t, int64(48000), tx.Lines[0].Price)
		assert.Equal(t, "Espresso", tx.Lines[0].Name)
	})
}
