package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// DocumentRepository handles JSON document rows keyed by (company, filename)
type DocumentRepository interface {
	Get(ctx context.Context, company, filename string) (string, error)
	Upsert(ctx context.Context, company, filename, data string) error
	ListFilenames(ctx context.Context, company string) ([]string, error)
}

type documentRepository struct {
	db *sql.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *sql.DB) DocumentRepository {
	return &documentRepository{db: db}
}

// Get returns the raw JSON text stored for (company, filename)
func (r *documentRepository) Get(ctx context.Context, company, filename string) (string, error) {
	query := `SELECT data FROM json_data WHERE company = ? AND filename = ?`

	var data string
	err := r.db.QueryRowContext(ctx, query, company, filename).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("document %s/%s: %w", company, filename, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to get document: %w", err)
	}

	return data, nil
}

// Upsert inserts or replaces the document
func (r *documentRepository) Upsert(ctx context.Context, company, filename, data string) error {
	query := `
		INSERT INTO json_data (company, filename, data)
		VALUES (?, ?, ?)
		ON CONFLICT (company, filename) DO UPDATE SET data = excluded.data
	`

	if _, err := r.db.ExecContext(ctx, query, company, filename, data); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

// ListFilenames returns the document names stored for a company, sorted
func (r *documentRepository) ListFilenames(ctx context.Context, company string) ([]string, error) {
	query := `SELECT filename FROM json_data WHERE company = ? ORDER BY filename ASC`

	rows, err := r.db.QueryContext(ctx, query, company)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan document name: %w", err)
		}
		names = append(names, name)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating documents: %w", err)
	}

	return names, nil
}
