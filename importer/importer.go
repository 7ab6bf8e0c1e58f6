// Package importer copies a JSON-files data directory into a SQLite store.
package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sirupsen/logrus"

	"github.com/accountapp/accountapp/logging"
	"github.com/accountapp/accountapp/models"
	"github.com/accountapp/accountapp/store"
)

// DocumentPattern matches every per-company document in a data directory
const DocumentPattern = store.CompaniesDir + "/*/*.json"

// ErrUnregisteredCompany is reported for documents whose directory belongs to
// no company registered in the target
var ErrUnregisteredCompany = errors.New("no registered company for directory")

// Target is what the importer writes into
type Target interface {
	RegisterCompany(ctx context.Context, company models.Company) error
	SaveRaw(ctx context.Context, company, filename string, data []byte) error
}

// Failure records one file that could not be imported
type Failure struct {
	Path string `json:"path"`
	Err  string `json:"error"`
}

// Report summarises an import
type Report struct {
	Companies         int       `json:"companies"`
	ExistingCompanies int       `json:"existing_companies"`
	Documents         int       `json:"documents"`
	Failures          []Failure `json:"failures,omitempty"`
}

// Importer reads the files layout from src
type Importer struct {
	src fs.FS
	dst Target
	log *logrus.Entry
}

// New creates an importer reading from src, typically os.DirFS(dataDir)
func New(src fs.FS, dst Target, logger *logrus.Logger) *Importer {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Importer{src: src, dst: dst, log: logger.WithField("component", "importer")}
}

// Run imports the registry first, then every document. Companies already in
// the target are kept and their documents overwritten. Documents are matched
// to companies by directory name and skipped when their company could not be
// registered. Audit trails stay on disk. Individual failures are collected in the report; only a failure to
// read the source layout aborts the run.
func (im *Importer) Run(ctx context.Context) (*Report, error) {
	report := &Report{}

	companies, err := im.readIndex()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(companies))
	for name := range companies {
		names = append(names, name)
	}
	sort.Strings(names)

	// directory name -> registered company
	registered := make(map[string]string, len(names))
	for _, name := range names {
		c := companies[name]
		c.Name = name
		err := im.dst.RegisterCompany(ctx, c)
		switch {
		case err == nil:
			report.Companies++
		case errors.Is(err, store.ErrDuplicate):
			report.ExistingCompanies++
		default:
			report.Failures = append(report.Failures, Failure{Path: store.IndexFile + "#" + name, Err: err.Error()})
			continue
		}
		registered[models.CompanyDirName(name)] = name
	}

	matches, err := doublestar.Glob(im.src, DocumentPattern)
	if err != nil {
		return nil, fmt.Errorf("failed to scan documents: %w", err)
	}
	sort.Strings(matches)

	for _, p := range matches {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		filename := path.Base(p)
		if filename == store.AuditTrailFile {
			continue
		}
		dir := path.Base(path.Dir(p))
		company, ok := registered[dir]
		if !ok {
			err := fmt.Errorf("%w %q", ErrUnregisteredCompany, dir)
			im.log.WithError(err).WithField("path", p).Warn("Document not imported")
			report.Failures = append(report.Failures, Failure{Path: p, Err: err.Error()})
			continue
		}

		if err := im.importDocument(ctx, company, filename, p); err != nil {
			im.log.WithError(err).WithField("path", p).Warn("Document not imported")
			report.Failures = append(report.Failures, Failure{Path: p, Err: err.Error()})
			continue
		}
		report.Documents++
	}

	im.log.WithFields(logrus.Fields{
		"companies": report.Companies,
		"existing":  report.ExistingCompanies,
		"documents": report.Documents,
		"failed":    len(report.Failures),
	}).Info("Import finished")
	return report, nil
}

func (im *Importer) importDocument(ctx context.Context, company, filename, p string) error {
	data, err := fs.ReadFile(im.src, p)
	if err != nil {
		return err
	}
	return im.dst.SaveRaw(ctx, company, filename, data)
}

// readIndex loads companies.json. A missing index is treated as empty.
func (im *Importer) readIndex() (map[string]models.Company, error) {
	data, err := fs.ReadFile(im.src, store.IndexFile)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]models.Company{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", store.IndexFile, err)
	}

	var index map[string]models.Company
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", store.IndexFile, err)
	}
	return index, nil
}
