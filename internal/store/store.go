// Package store is the narrow document-collection collaborator the POS talks
// to. Every domain record (menu, users, sales) lives in a named collection as
// a JSON document with a store-assigned id and creation timestamp. Behind the
// interface any hosted document database could sit; the shipped implementation
// keeps documents in Postgres JSONB.
package store

import (
	"context"
	"encoding/json"
	"time"
)

// Document is one record of a collection.
type Document struct {
	ID        string
	Data      json.RawMessage
	CreatedAt time.Time
}

// Decode unmarshals the document body into v.
func (d Document) Decode(v any) error {
	return json.Unmarshal(d.Data, v)
}

type Store interface {
	// ListAll returns every document of a collection, oldest first.
	ListAll(ctx context.Context, collection string) ([]Document, error)

	// Get returns a single document or ErrNotFound.
	Get(ctx context.Context, collection, id string) (*Document, error)

	// Create persists v as a new document and returns the assigned id.
	Create(ctx context.Context, collection string, v any) (string, error)

	// Update merges the fields of patch into an existing document.
	Update(ctx context.Context, collection, id string, patch any) error

	Delete(ctx context.Context, collection, id string) error

	// QuerySince returns documents created at or after from, oldest first.
	QuerySince(ctx context.Context, collection string, from time.Time) ([]Document, error)
}
