package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// CompanyRow is a raw registry row: the company name and its metadata JSON
type CompanyRow struct {
	Name string
	Meta string
}

// CompanyRepository handles the company registry
type CompanyRepository interface {
	GetAll(ctx context.Context) ([]CompanyRow, error)
	GetByName(ctx context.Context, name string) (*CompanyRow, error)
	Create(ctx context.Context, name, meta string, documents map[string]string) error
	Delete(ctx context.Context, name string) error
}

type companyRepository struct {
	db *sql.DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *sql.DB) CompanyRepository {
	return &companyRepository{db: db}
}

// GetAll retrieves every registered company ordered by name
func (r *companyRepository) GetAll(ctx context.Context) ([]CompanyRow, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, meta FROM companies ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query companies: %w", err)
	}
	defer rows.Close()

	var companies []CompanyRow
	for rows.Next() {
		var row CompanyRow
		if err := rows.Scan(&row.Name, &row.Meta); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating companies: %w", err)
	}

	return companies, nil
}

// GetByName retrieves a company by name
func (r *companyRepository) GetByName(ctx context.Context, name string) (*CompanyRow, error) {
	row := CompanyRow{Name: name}
	err := r.db.QueryRowContext(ctx, `SELECT meta FROM companies WHERE name = ?`, name).Scan(&row.Meta)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("company %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return &row, nil
}

// Create inserts the registry row and the company's initial documents in one
// transaction. A name that is already registered yields ErrDuplicate.
func (r *companyRepository) Create(ctx context.Context, name, meta string, documents map[string]string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `INSERT INTO companies (name, meta) VALUES (?, ?)`, name, meta); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("company %q: %w", name, ErrDuplicate)
		}
		return fmt.Errorf("failed to create company: %w", err)
	}

	for filename, data := range documents {
		_, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO json_data (company, filename, data) VALUES (?, ?, ?)`,
			name, filename, data,
		)
		if err != nil {
			return fmt.Errorf("failed to seed document %s: %w", filename, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit company creation: %w", err)
	}
	return nil
}

// Delete removes the company row and all of its documents atomically
func (r *companyRepository) Delete(ctx context.Context, name string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `DELETE FROM companies WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("company %q: %w", name, ErrNotFound)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM json_data WHERE company = ?`, name); err != nil {
		return fmt.Errorf("failed to delete company documents: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit company deletion: %w", err)
	}
	return nil
}
