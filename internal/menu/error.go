package menu

import "errors"

var (
	// -- Validation & Input --
	ErrNameRequired    = errors.New("menu item name is required")
	ErrNegativePrice   = errors.New("menu item price must not be negative")
	ErrInvalidCategory = errors.New("invalid menu category")

	// -- Resource State --
	ErrItemNotFound = errors.New("menu item not found")

	// -- Store Failures --
	ErrFailedFetchMenu  = errors.New("failed to fetch menu")
	ErrFailedCreateItem = errors.New("failed to create menu item")
	ErrFailedUpdateItem = errors.New("failed to update menu item")
	ErrFailedDeleteItem = errors.New("failed to delete menu item")
)
