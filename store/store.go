// Package store persists per-company JSON documents and the company registry.
//
// Two backends implement Store: FileStore keeps one JSON file per document
// under <data_dir>/companies/<company>/ with a companies.json registry, and
// SQLiteStore keeps the same documents as rows of a SQLite database.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/accountapp/accountapp/authenticator"
	"github.com/accountapp/accountapp/config"
	"github.com/accountapp/accountapp/logging"
	"github.com/accountapp/accountapp/models"
	"github.com/accountapp/accountapp/repositories"
)

var (
	// ErrNotFound is returned when a company or document does not exist
	ErrNotFound = repositories.ErrNotFound
	// ErrDuplicate is returned when creating a company that is already registered
	ErrDuplicate = repositories.ErrDuplicate
)

// DecodeError reports a stored document that could not be decoded
type DecodeError struct {
	Company  string
	Filename string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s/%s: %v", e.Company, e.Filename, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Store is the persistent document store used by the application
type Store interface {
	// LoadJSON decodes the document into v
	LoadJSON(ctx context.Context, company, filename string, v any) error
	// SaveJSON inserts or replaces the document
	SaveJSON(ctx context.Context, company, filename string, v any) error
	// Documents lists the document names stored for a company
	Documents(ctx context.Context, company string) ([]string, error)

	CreateCompany(ctx context.Context, company models.Company) error
	Company(ctx context.Context, name string) (*models.Company, error)
	Companies(ctx context.Context) ([]models.Company, error)
	// DeleteCompany removes the registry entry and every document of the company
	DeleteCompany(ctx context.Context, name string) error

	// Backup writes a backup artifact for company into destDir and returns its path
	Backup(ctx context.Context, company, destDir string) (string, error)
	// Restore replaces stored data with the contents of a backup artifact
	Restore(ctx context.Context, path string) error

	Close() error
}

// New opens the backend selected by the configuration
func New(cfg *config.Config, logger *logrus.Logger) (Store, error) {
	if cfg.Store.UseSQLite {
		return OpenSQLite(cfg.Store.SQLitePath, logger)
	}
	return NewFileStore(cfg.DataDir, logger)
}

// validateCompany rejects registry entries that cannot be stored
func validateCompany(c models.Company) error {
	form := models.CompanyForm{Name: c.Name}
	if errs := form.Validate(); errs.HasErrors() {
		return errs
	}
	return nil
}

// defaultDocuments returns the documents every new company starts with
func defaultDocuments(company models.Company, now time.Time) (map[string]any, error) {
	if err := validateCompany(company); err != nil {
		return nil, err
	}

	adminHash, err := authenticator.HashPassword("admin")
	if err != nil {
		return nil, err
	}

	meta := company
	meta.Extra = make(map[string]any, len(company.Extra)+1)
	for k, v := range company.Extra {
		meta.Extra[k] = v
	}
	meta.Extra["modified_at"] = now.Format(time.RFC3339Nano)

	return map[string]any{
		models.DocumentMeta:     meta,
		models.DocumentClients:  []any{},
		models.DocumentInvoices: []any{},
		models.DocumentExpenses: []any{},
		models.DocumentAccounts: models.DefaultAccounts(),
		models.DocumentUsers: []models.User{{
			Username:  "admin",
			FullName:  "Administrator",
			Password:  adminHash,
			Role:      "admin",
			CreatedAt: now.Format(time.RFC3339Nano),
		}},
	}, nil
}

func marshalDocument(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return data, nil
}

func componentLogger(logger *logrus.Logger, backend string) *logrus.Entry {
	if logger == nil {
		logger = logging.Discard()
	}
	return logger.WithFields(logrus.Fields{"component": "store", "backend": backend})
}
