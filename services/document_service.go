package services

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"

	"github.com/accountapp/accountapp/audit"
	"github.com/accountapp/accountapp/metrics"
	"github.com/accountapp/accountapp/models"
	"github.com/accountapp/accountapp/store"
)

// DocumentService interface defines per-company document business logic
type DocumentService interface {
	List(ctx context.Context, company string) ([]string, error)
	Get(ctx context.Context, company, filename string) (json.RawMessage, error)
	Put(ctx context.Context, actor models.Actor, company, filename string, data json.RawMessage) error
	ExportCSV(ctx context.Context, actor models.Actor, company, filename string, w io.Writer) (int, error)
}

// documentService implements DocumentService interface
type documentService struct {
	store   store.Store
	audit   AuditRecorder
	metrics *metrics.Metrics
	log     *logrus.Entry
}

// NewDocumentService creates a new document service. m may be nil.
func NewDocumentService(st store.Store, recorder AuditRecorder, m *metrics.Metrics, log *logrus.Entry) DocumentService {
	return &documentService{
		store:   st,
		audit:   recorder,
		metrics: m,
		log:     log,
	}
}

// ValidateFilename checks that filename names a storable JSON document
func ValidateFilename(filename string) models.ValidationErrors {
	var errs models.ValidationErrors

	switch {
	case filename == "":
		errs = append(errs, models.ValidationError{Field: "filename", Message: "Document name is required"})
	case filename != filepath.Base(filename) || strings.ContainsAny(filename, `/\`):
		errs = append(errs, models.ValidationError{Field: "filename", Message: "Document name must not contain path separators"})
	case filepath.Ext(filename) != ".json" || filename == ".json":
		errs = append(errs, models.ValidationError{Field: "filename", Message: "Document name must end in .json"})
	case filename == store.AuditTrailFile:
		errs = append(errs, models.ValidationError{Field: "filename", Message: "The audit trail cannot be written as a document"})
	}

	return errs
}

// List returns the document names of an existing company
func (s *documentService) List(ctx context.Context, company string) ([]string, error) {
	if _, err := s.store.Company(ctx, company); err != nil {
		return nil, err
	}
	return s.store.Documents(ctx, company)
}

// Get returns the stored document text of an existing company
func (s *documentService) Get(ctx context.Context, company, filename string) (json.RawMessage, error) {
	if errs := ValidateFilename(filename); errs.HasErrors() {
		return nil, errs
	}
	if _, err := s.store.Company(ctx, company); err != nil {
		return nil, err
	}

	var raw json.RawMessage
	if err := s.store.LoadJSON(ctx, company, filename, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Put stores the document and records CREATE when it did not exist before,
// UPDATE with the previous and new values otherwise
func (s *documentService) Put(ctx context.Context, actor models.Actor, company, filename string, data json.RawMessage) error {
	if errs := ValidateFilename(filename); errs.HasErrors() {
		return errs
	}
	if !json.Valid(data) {
		return &store.DecodeError{Company: company, Filename: filename, Err: errors.New("request body is not valid JSON")}
	}
	if _, err := s.store.Company(ctx, company); err != nil {
		return err
	}

	var old json.RawMessage
	err := s.store.LoadJSON(ctx, company, filename, &old)
	existed := err == nil
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		var decodeErr *store.DecodeError
		if !errors.As(err, &decodeErr) {
			return fmt.Errorf("failed to load current document: %w", err)
		}
		// Unreadable previous content is replaced and audited as a create
		s.log.WithError(err).WithField("company", company).Warn("Overwriting undecodable document")
	}

	if err := s.store.SaveJSON(ctx, company, filename, data); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	if s.metrics != nil {
		s.metrics.DocumentWritesTotal.WithLabelValues(filename).Inc()
	}

	if existed {
		_, err = s.audit.LogUpdate(company, actor.Username, audit.EntityDocument, filename, rawValues(old), rawValues(data), actor.IPAddress)
	} else {
		_, err = s.audit.LogCreate(company, actor.Username, audit.EntityDocument, filename, rawValues(data), actor.IPAddress)
	}
	logAuditError(s.log, company, err)

	return nil
}

// ExportCSV writes a list document as CSV. Columns are the union of the
// record keys in sorted order; nested values are written as JSON.
func (s *documentService) ExportCSV(ctx context.Context, actor models.Actor, company, filename string, w io.Writer) (int, error) {
	if errs := ValidateFilename(filename); errs.HasErrors() {
		return 0, errs
	}
	if _, err := s.store.Company(ctx, company); err != nil {
		return 0, err
	}

	var records []map[string]any
	if err := s.store.LoadJSON(ctx, company, filename, &records); err != nil {
		return 0, err
	}

	keySet := make(map[string]struct{})
	for _, r := range records {
		for k := range r {
			keySet[k] = struct{}{}
		}
	}
	columns := make([]string, 0, len(keySet))
	for k := range keySet {
		columns = append(columns, k)
	}
	sort.Strings(columns)

	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return 0, err
	}
	row := make([]string, len(columns))
	for _, r := range records {
		for i, col := range columns {
			row[i] = csvValue(r[col])
		}
		if err := cw.Write(row); err != nil {
			return 0, err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, err
	}

	exportType := strings.TrimSuffix(filename, filepath.Ext(filename))
	_, err := s.audit.LogExport(company, actor.Username, exportType, len(records), actor.IPAddress)
	logAuditError(s.log, company, err)

	return len(records), nil
}

func csvValue(v any) string {
	switch v.(type) {
	case nil:
		return ""
	case map[string]any, []any:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	}
	return cast.ToString(v)
}
