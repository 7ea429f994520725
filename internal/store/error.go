package store

import "errors"

var (
	// -- Resource State --
	ErrNotFound = errors.New("document not found")

	// -- Database & Operation Failures --
	ErrFailedList   = errors.New("failed to list documents")
	ErrFailedGet    = errors.New("failed to get document")
	ErrFailedCreate = errors.New("failed to create document")
	ErrFailedUpdate = errors.New("failed to update document")
	ErrFailedDelete = errors.New("failed to delete document")
	ErrFailedQuery  = errors.New("failed to query documents")
)
