// Package currency formats rupiah amounts for receipts and API payloads.
// Amounts are integers in the smallest display unit; IDR carries no subunits.
package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.Indonesian)

// FormatIDR renders an amount like 152000 as "Rp152.000".
// Negative amounts keep their sign; formatting has no fraction digits.
func FormatIDR(amount int64) string {
	if amount < 0 {
		return printer.Sprintf("-Rp%v", number.Decimal(-amount))
	}
	return printer.Sprintf("Rp%v", number.Decimal(amount))
}
