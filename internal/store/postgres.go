package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// postgres keeps every collection in one documents table:
//
//	documents(id TEXT PK, collection TEXT, data JSONB, created_at TIMESTAMPTZ)
//
// Partial updates merge through the JSONB || operator, so callers can send
// only the fields they changed.
type postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) Store {
	return &postgres{db: db}
}

func (s *postgres) ListAll(ctx context.Context, collection string) ([]Document, error) {
	const q = `
		SELECT id, data, created_at
		FROM documents
		WHERE collection = $1
		ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, q, collection)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedList, err)
	}
	defer rows.Close()

	return scanDocuments(rows)
}

func (s *postgres) Get(ctx context.Context, collection, id string) (*Document, error) {
	const q = `
		SELECT id, data, created_at
		FROM documents
		WHERE collection = $1 AND id = $2
	`

	var doc Document
	err := s.db.QueryRowContext(ctx, q, collection, id).
		Scan(&doc.ID, &doc.Data, &doc.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedGet, err)
	}

	return &doc, nil
}

func (s *postgres) Create(ctx context.Context, collection string, v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedCreate, err)
	}

	id := uuid.New().String()

	const q = `
		INSERT INTO documents (id, collection, data, created_at)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := s.db.ExecContext(ctx, q, id, collection, data, time.Now().UTC()); err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedCreate, err)
	}

	return id, nil
}

func (s *postgres) Update(ctx context.Context, collection, id string, patch any) error {
	data, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedUpdate, err)
	}

	const q = `
		UPDATE documents
		SET data = data || $3
		WHERE collection = $1 AND id = $2
	`

	res, err := s.db.ExecContext(ctx, q, collection, id, data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedUpdate, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedUpdate, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *postgres) Delete(ctx context.Context, collection, id string) error {
	const q = `
		DELETE FROM documents
		WHERE collection = $1 AND id = $2
	`

	res, err := s.db.ExecContext(ctx, q, collection, id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedDelete, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedDelete, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *postgres) QuerySince(ctx context.Context, collection string, from time.Time) ([]Document, error) {
	const q = `
		SELECT id, data, created_at
		FROM documents
		WHERE collection = $1 AND created_at >= $2
		ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, q, collection, from)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedQuery, err)
	}
	defer rows.Close()

	return scanDocuments(rows)
}

func scanDocuments(rows *sql.Rows) ([]Document, error) {
	var docs []Document
	for rows.Next() {
		var doc Document
		if err := rows.Scan(&doc.ID, &doc.Data, &doc.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedList, err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedList, err)
	}
	return docs, nil
}
