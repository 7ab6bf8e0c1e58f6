package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/accountapp/accountapp/database"
	"github.com/accountapp/accountapp/models"
	"github.com/accountapp/accountapp/repositories"
)

// SQLiteStore keeps documents and the company registry in a SQLite database
type SQLiteStore struct {
	mu    sync.RWMutex
	path  string
	db    *sql.DB
	repos *repositories.Repositories
	log   *logrus.Entry
	now   func() time.Time
}

// OpenSQLite opens (and migrates) the database at path
func OpenSQLite(path string, logger *logrus.Logger) (*SQLiteStore, error) {
	db, err := database.InitializeDatabase(path)
	if err != nil {
		return nil, err
	}

	s := &SQLiteStore{
		path:  path,
		db:    db,
		repos: repositories.NewRepositories(db),
		log:   componentLogger(logger, "sqlite"),
		now:   time.Now,
	}
	s.log.WithField("path", path).Info("Document store opened")
	return s, nil
}

// Path returns the database file path
func (s *SQLiteStore) Path() string {
	return s.path
}

// LoadJSON decodes the stored document into v
func (s *SQLiteStore) LoadJSON(ctx context.Context, company, filename string, v any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := s.repos.Documents.Get(ctx, company, filename)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(data), v); err != nil {
		return &DecodeError{Company: company, Filename: filename, Err: err}
	}
	return nil
}

// SaveJSON encodes v and upserts it
func (s *SQLiteStore) SaveJSON(ctx context.Context, company, filename string, v any) error {
	data, err := marshalDocument(v)
	if err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.repos.Documents.Upsert(ctx, company, filename, string(data))
}

// SaveRaw stores already-encoded JSON text without re-encoding it
func (s *SQLiteStore) SaveRaw(ctx context.Context, company, filename string, data []byte) error {
	if !json.Valid(data) {
		return &DecodeError{Company: company, Filename: filename, Err: errors.New("invalid JSON")}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.repos.Documents.Upsert(ctx, company, filename, string(data))
}

// Documents lists the document names stored for company
func (s *SQLiteStore) Documents(ctx context.Context, company string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.repos.Documents.ListFilenames(ctx, company)
}

// CreateCompany registers the company and seeds its default documents
func (s *SQLiteStore) CreateCompany(ctx context.Context, company models.Company) error {
	docs, err := defaultDocuments(company, s.now())
	if err != nil {
		return err
	}

	encoded := make(map[string]string, len(docs))
	for name, doc := range docs {
		data, err := marshalDocument(doc)
		if err != nil {
			return err
		}
		encoded[name] = string(data)
	}

	meta, err := json.Marshal(company)
	if err != nil {
		return fmt.Errorf("failed to encode company: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.repos.Companies.Create(ctx, company.Name, string(meta), encoded); err != nil {
		return err
	}

	s.log.WithField("company", company.Name).Info("Company created")
	return nil
}

// RegisterCompany inserts a registry row without seeding documents
func (s *SQLiteStore) RegisterCompany(ctx context.Context, company models.Company) error {
	if err := validateCompany(company); err != nil {
		return err
	}

	meta, err := json.Marshal(company)
	if err != nil {
		return fmt.Errorf("failed to encode company: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.repos.Companies.Create(ctx, company.Name, string(meta), nil)
}

// Company returns the registry entry for name
func (s *SQLiteStore) Company(ctx context.Context, name string) (*models.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, err := s.repos.Companies.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return decodeCompanyRow(*row)
}

// Companies returns every registered company ordered by name
func (s *SQLiteStore) Companies(ctx context.Context) ([]models.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.repos.Companies.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	companies := make([]models.Company, 0, len(rows))
	for _, row := range rows {
		c, err := decodeCompanyRow(row)
		if err != nil {
			return nil, err
		}
		companies = append(companies, *c)
	}
	return companies, nil
}

// DeleteCompany removes the company and its documents in one transaction
func (s *SQLiteStore) DeleteCompany(ctx context.Context, name string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.repos.Companies.Delete(ctx, name); err != nil {
		return err
	}

	s.log.WithField("company", name).Info("Company deleted")
	return nil
}

// Backup copies the whole database file to <destDir>/<company>_backup.db
func (s *SQLiteStore) Backup(ctx context.Context, company, destDir string) (string, error) {
	// Exclusive lock so no statement runs while the file is copied
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.repos.Companies.GetByName(ctx, company); err != nil {
		return "", err
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	dest := filepath.Join(destDir, company+"_backup.db")
	if err := copyFile(s.path, dest); err != nil {
		return "", fmt.Errorf("failed to back up database: %w", err)
	}

	s.log.WithFields(logrus.Fields{"company": company, "dest": dest}).Info("Backup written")
	return dest, nil
}

// Restore replaces the database file with a backup and reopens it. The
// backup must pass SQLite's quick_check before anything is replaced.
func (s *SQLiteStore) Restore(ctx context.Context, path string) error {
	if err := checkDatabaseFile(ctx, path); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	tmp := s.path + ".restore"
	copyErr := copyFile(path, tmp)
	if copyErr == nil {
		copyErr = os.Rename(tmp, s.path)
	}
	if copyErr != nil {
		os.Remove(tmp)
	}

	// Reopen whatever is on disk now so the store stays usable either way
	db, err := database.InitializeDatabase(s.path)
	if err != nil {
		return fmt.Errorf("failed to reopen database: %w", err)
	}
	s.db = db
	s.repos = repositories.NewRepositories(db)

	if copyErr != nil {
		return fmt.Errorf("failed to restore backup: %w", copyErr)
	}

	s.log.WithField("source", path).Info("Database restored")
	return nil
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Close()
}

func decodeCompanyRow(row repositories.CompanyRow) (*models.Company, error) {
	var c models.Company
	if err := json.Unmarshal([]byte(row.Meta), &c); err != nil {
		return nil, &DecodeError{Company: row.Name, Filename: "companies", Err: err}
	}
	// The registry key wins over whatever the metadata says
	c.Name = row.Name
	return &c, nil
}

// checkDatabaseFile verifies that path is a readable, consistent SQLite database
func checkDatabaseFile(ctx context.Context, path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("backup %s: %w", path, err)
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open backup: %w", err)
	}
	defer db.Close()

	var result string
	if err := db.QueryRowContext(ctx, "PRAGMA quick_check").Scan(&result); err != nil {
		return fmt.Errorf("backup %s is not a valid database: %w", path, err)
	}
	if result != "ok" {
		return fmt.Errorf("backup %s failed integrity check: %s", path, result)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Sync(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
