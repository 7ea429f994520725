package sale

import "errors"

var (
	// -- Validation --
	ErrNoLines = errors.New("transaction has no line items")

	// -- Store Failures --
	ErrFailedSaveSale  = errors.New("failed to save sale record")
	ErrFailedListSales = errors.New("failed to list sale records")
)
