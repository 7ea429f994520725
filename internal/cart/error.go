package cart

import "errors"

var (
	// -- Validation --
	ErrEmptyCart        = errors.New("cart is empty")
	ErrInsufficientCash = errors.New("insufficient cash tendered")
)
