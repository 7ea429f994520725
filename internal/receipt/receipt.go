// Package receipt projects a finalized transaction into a printable text
// receipt. It carries no business logic: totals arrive already computed and
// nothing here mutates state. How the rendered receipt reaches paper or a
// customer's phone is the caller's concern.
package receipt

import (
	"fmt"
	"strings"

	"kopige-pos/internal/cart"
	"kopige-pos/internal/currency"
	"kopige-pos/internal/sale"
	"kopige-pos/internal/utils"
)

const width = 40

// Line is one itemized row of the receipt.
type Line struct {
	Name     string
	Quantity int
	Price    int64
	Amount   int64
}

type Receipt struct {
	Number        string
	CafeName      string
	Lines         []Line
	Subtotal      int64
	Tax           int64
	Total         int64
	PaymentMethod string
	CashReceived  *int64
	Change        *int64
	Note          string
	Date          string
	Time          string
}

// FromTransaction builds a receipt from a fresh checkout snapshot.
func FromTransaction(tx *cart.Transaction, cafeName string) *Receipt {
	r := &Receipt{
		Number:        utils.GenerateReceiptNumber(),
		CafeName:      cafeName,
		Subtotal:      tx.Subtotal,
		Tax:           tx.Tax,
		Total:         tx.Total,
		PaymentMethod: string(tx.PaymentMethod),
		CashReceived:  tx.CashTendered,
		Change:        tx.Change,
		Note:          tx.Note,
		Date:          tx.Timestamp.Format("Monday, 02 January 2006"),
		Time:          tx.Timestamp.Format("15:04"),
	}

	for _, line := range tx.Lines {
		r.Lines = append(r.Lines, Line{
			Name:     line.Name,
			Quantity: line.Quantity,
			Price:    line.Price,
			Amount:   line.Price * int64(line.Quantity),
		})
	}

	return r
}

// FromSale rebuilds the receipt of an already persisted sale, for reprints.
func FromSale(s *sale.Sale, cafeName string) *Receipt {
	r := &Receipt{
		Number:        utils.GenerateReceiptNumber(),
		CafeName:      cafeName,
		Subtotal:      s.Subtotal,
		Tax:           s.Tax,
		Total:         s.Total,
		PaymentMethod: s.PaymentMethod,
		CashReceived:  s.CashReceived,
		Change:        s.Change,
		Note:          s.Note,
		Date:          s.Timestamp.Format("Monday, 02 January 2006"),
		Time:          s.Timestamp.Format("15:04"),
	}

	for _, item := range s.Items {
		r.Lines = append(r.Lines, Line{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
			Amount:   item.Price * int64(item.Quantity),
		})
	}

	return r
}

// Render produces the fixed-width text layout: header, itemized lines,
// totals block, payment block (cash details only for cash payments) and an
// optional note block.
func (r *Receipt) Render() string {
	var b strings.Builder

	divider := strings.Repeat("-", width) + "\n"

	center(&b, r.CafeName)
	center(&b, "Jl. Nitimandala Renon No.666")
	center(&b, "Denpasar, Bali - Indonesia")
	b.WriteString(divider)

	row(&b, r.Date, r.Time)
	row(&b, "Receipt #", r.Number)
	b.WriteString(divider)

	for _, line := range r.Lines {
		b.WriteString(line.Name + "\n")
		row(&b,
			fmt.Sprintf("  %d x %s", line.Quantity, currency.FormatIDR(line.Price)),
			currency.FormatIDR(line.Amount),
		)
	}
	b.WriteString(divider)

	row(&b, "Subtotal", currency.FormatIDR(r.Subtotal))
	row(&b, "Tax (11%)", currency.FormatIDR(r.Tax))
	row(&b, "Total", currency.FormatIDR(r.Total))
	b.WriteString(divider)

	row(&b, "Payment Method", r.PaymentMethod)
	if r.PaymentMethod == string(cart.MethodCash) {
		cash := int64(0)
		if r.CashReceived != nil {
			cash = *r.CashReceived
		}
		change := int64(0)
		if r.Change != nil {
			change = *r.Change
		}
		row(&b, "Cash Received", currency.FormatIDR(cash))
		row(&b, "Change", currency.FormatIDR(change))
	}

	if r.Note != "" {
		b.WriteString(divider)
		b.WriteString("Note: " + r.Note + "\n")
	}

	b.WriteString(divider)
	center(&b, "Thank you for your visit!")

	return b.String()
}

func center(b *strings.Builder, s string) {
	pad := (width - len(s)) / 2
	if pad < 0 {
		pad = 0
	}
	b.WriteString(strings.Repeat(" ", pad) + s + "\n")
}

func row(b *strings.Builder, left, right string) {
	gap := width - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(left + strings.Repeat(" ", gap) + right + "\n")
}
