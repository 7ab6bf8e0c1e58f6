package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/accountapp/accountapp/models"
)

const (
	// IndexFile is the company registry kept at the root of the data directory
	IndexFile = "companies.json"
	// CompaniesDir holds one directory per company
	CompaniesDir = "companies"
	// AuditTrailFile is the per-company audit log; it is not a document
	AuditTrailFile = "audit_trail.json"
)

// FileStore keeps every document as a JSON file inside the company directory
type FileStore struct {
	mu      sync.Mutex
	dataDir string
	log     *logrus.Entry
	now     func() time.Time
}

// NewFileStore creates the data directory layout if needed
func NewFileStore(dataDir string, logger *logrus.Logger) (*FileStore, error) {
	s := &FileStore{
		dataDir: dataDir,
		log:     componentLogger(logger, "files"),
		now:     time.Now,
	}

	if err := os.MkdirAll(filepath.Join(dataDir, CompaniesDir), 0755); err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	if _, err := os.Stat(s.indexPath()); errors.Is(err, fs.ErrNotExist) {
		if err := writeJSONFile(s.indexPath(), map[string]models.Company{}); err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
	}

	s.log.WithField("data_dir", dataDir).Info("Document store opened")
	return s, nil
}

// DataDir returns the root data directory
func (s *FileStore) DataDir() string {
	return s.dataDir
}

func (s *FileStore) indexPath() string {
	return filepath.Join(s.dataDir, IndexFile)
}

// CompanyPath returns the directory holding a company's documents
func (s *FileStore) CompanyPath(company string) string {
	return filepath.Join(s.dataDir, CompaniesDir, models.CompanyDirName(company))
}

func (s *FileStore) documentPath(company, filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) || filename == "." || filename == ".." {
		return "", fmt.Errorf("invalid document name %q", filename)
	}
	return filepath.Join(s.CompanyPath(company), filename), nil
}

// LoadJSON decodes the document file into v
func (s *FileStore) LoadJSON(ctx context.Context, company, filename string, v any) error {
	path, err := s.documentPath(company, filename)
	if err != nil {
		return err
	}

	s.mu.Lock()
	data, err := os.ReadFile(path)
	s.mu.Unlock()

	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("document %s/%s: %w", company, filename, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return &DecodeError{Company: company, Filename: filename, Err: err}
	}
	return nil
}

// SaveJSON writes the document through a temporary file
func (s *FileStore) SaveJSON(ctx context.Context, company, filename string, v any) error {
	path, err := s.documentPath(company, filename)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return writeJSONFile(path, v)
}

// Documents lists the JSON documents in the company directory
func (s *FileStore) Documents(ctx context.Context, company string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.CompanyPath(company))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || filepath.Ext(name) != ".json" || name == AuditTrailFile {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// CreateCompany creates the company directory, its default documents and
// the registry entry. On failure the partially written directory is removed.
func (s *FileStore) CreateCompany(ctx context.Context, company models.Company) error {
	docs, err := defaultDocuments(company, s.now())
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	index, err := s.loadIndex()
	if err != nil {
		return err
	}
	if _, ok := index[company.Name]; ok {
		return fmt.Errorf("company %q: %w", company.Name, ErrDuplicate)
	}

	dir := s.CompanyPath(company.Name)
	existed, err := unclaimedDir(dir)
	if err != nil {
		return fmt.Errorf("company %q: %w", company.Name, err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create company directory: %w", err)
	}

	cleanup := func() {
		if existed {
			for name := range docs {
				os.Remove(filepath.Join(dir, name))
			}
			return
		}
		os.RemoveAll(dir)
	}

	for name, doc := range docs {
		if err := writeJSONFile(filepath.Join(dir, name), doc); err != nil {
			cleanup()
			return err
		}
	}

	index[company.Name] = company
	if err := writeJSONFile(s.indexPath(), index); err != nil {
		cleanup()
		return fmt.Errorf("failed to update companies index: %w", err)
	}

	s.log.WithField("company", company.Name).Info("Company created")
	return nil
}

// unclaimedDir reports whether dir exists. An existing directory may only
// hold the audit trail left behind by a deleted company.
func unclaimedDir(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to inspect company directory: %w", err)
	}
	for _, e := range entries {
		if e.Name() != AuditTrailFile {
			return true, fmt.Errorf("directory %s is already in use: %w", dir, ErrDuplicate)
		}
	}
	return true, nil
}

// Company returns the registry entry for name
func (s *FileStore) Company(ctx context.Context, name string) (*models.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index, err := s.loadIndex()
	if err != nil {
		return nil, err
	}
	c, ok := index[name]
	if !ok {
		return nil, fmt.Errorf("company %q: %w", name, ErrNotFound)
	}
	c.Name = name
	return &c, nil
}

// Companies returns every registered company ordered by name
func (s *FileStore) Companies(ctx context.Context) ([]models.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index, err := s.loadIndex()
	if err != nil {
		return nil, err
	}

	companies := make([]models.Company, 0, len(index))
	for name, c := range index {
		c.Name = name
		companies = append(companies, c)
	}
	sort.Slice(companies, func(i, j int) bool {
		return companies[i].Name < companies[j].Name
	})
	return companies, nil
}

// DeleteCompany removes the company directory, including its audit trail,
// and the registry entry
func (s *FileStore) DeleteCompany(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	index, err := s.loadIndex()
	if err != nil {
		return err
	}
	if _, ok := index[name]; !ok {
		return fmt.Errorf("company %q: %w", name, ErrNotFound)
	}

	if err := os.RemoveAll(s.CompanyPath(name)); err != nil {
		return fmt.Errorf("failed to delete company directory: %w", err)
	}

	delete(index, name)
	if err := writeJSONFile(s.indexPath(), index); err != nil {
		return fmt.Errorf("failed to update companies index: %w", err)
	}

	s.log.WithField("company", name).Info("Company deleted")
	return nil
}

// Close is a no-op for the file backend
func (s *FileStore) Close() error {
	return nil
}

// Resync rebuilds companies.json from the meta.json of every company directory.
// Directories without a readable meta.json are skipped.
func (s *FileStore) Resync(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.resyncLocked()
}

func (s *FileStore) resyncLocked() error {
	entries, err := os.ReadDir(filepath.Join(s.dataDir, CompaniesDir))
	if err != nil {
		return fmt.Errorf("failed to scan companies: %w", err)
	}

	index := make(map[string]models.Company)
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dataDir, CompaniesDir, e.Name(), models.DocumentMeta))
		if err != nil {
			continue
		}
		var meta models.Company
		if err := json.Unmarshal(data, &meta); err != nil || validateCompany(meta) != nil {
			s.log.WithField("dir", e.Name()).Warn("Skipping company with unreadable or invalid meta.json")
			continue
		}
		// The registry only carries the summary fields
		meta.Extra = nil
		index[meta.Name] = meta
	}

	return writeJSONFile(s.indexPath(), index)
}

func (s *FileStore) loadIndex() (map[string]models.Company, error) {
	data, err := os.ReadFile(s.indexPath())
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]models.Company{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read companies index: %w", err)
	}

	index := map[string]models.Company{}
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, &DecodeError{Company: "", Filename: IndexFile, Err: err}
	}
	return index, nil
}

// writeJSONFile writes v as indented JSON to a temp file and renames it into place
func writeJSONFile(path string, v any) error {
	data, err := marshalDocument(v)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", filepath.Base(path), err)
	}
	return nil
}
