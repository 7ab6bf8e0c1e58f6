// Package audit records per-company change history in an append-only JSON
// log stored next to the company's documents.
package audit

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/accountapp/accountapp/logging"
	"github.com/accountapp/accountapp/models"
)

const (
	// FileName is the audit log inside a company directory
	FileName = "audit_trail.json"
	// DefaultRetention is the number of entries kept per company
	DefaultRetention = 10000
	// DefaultLimit applies when a filter does not set Limit
	DefaultLimit = 100
	// HistoryLimit bounds EntityHistory and UserActivity
	HistoryLimit = 1000
)

// ErrCorrupt is returned when the audit file exists but cannot be decoded
var ErrCorrupt = errors.New("audit trail is corrupt")

// Filter selects entries. Zero fields match everything.
type Filter struct {
	EntityType string
	EntityID   string
	User       string
	Action     models.Action
	Start      time.Time // inclusive
	End        time.Time // inclusive
	Limit      int       // 0 means DefaultLimit, negative means no limit
}

func (f Filter) matches(e models.AuditEntry) bool {
	if f.EntityType != "" && e.EntityType != f.EntityType {
		return false
	}
	if f.EntityID != "" && e.EntityID != f.EntityID {
		return false
	}
	if f.User != "" && e.User != f.User {
		return false
	}
	if f.Action != "" && e.Action != f.Action {
		return false
	}
	return models.DateRange{Start: f.Start, End: f.End}.Contains(e.Timestamp)
}

// Option configures a Trail
type Option func(*Trail)

// WithRetention sets how many entries are kept
func WithRetention(n int) Option {
	return func(t *Trail) {
		if n > 0 {
			t.retention = n
		}
	}
}

// WithLogger sets the logger used for entry summaries
func WithLogger(logger *logrus.Logger) Option {
	return func(t *Trail) {
		if logger != nil {
			t.log = logger.WithField("component", "audit")
		}
	}
}

// WithClock overrides time.Now, used by tests
func WithClock(now func() time.Time) Option {
	return func(t *Trail) {
		if now != nil {
			t.now = now
		}
	}
}

// Trail is the audit log of one company. It is safe for concurrent use.
type Trail struct {
	mu        sync.RWMutex
	company   string
	path      string
	entries   []models.AuditEntry
	retention int
	log       *logrus.Entry
	now       func() time.Time
}

// Path returns the audit file location for company under dataDir
func Path(dataDir, company string) string {
	return filepath.Join(dataDir, "companies", models.CompanyDirName(company), FileName)
}

// Open loads the company's audit trail. A missing file yields an empty trail.
// A file that cannot be decoded yields ErrCorrupt together with an empty,
// usable trail so the caller can choose to continue.
func Open(dataDir, company string, opts ...Option) (*Trail, error) {
	t := &Trail{
		company:   company,
		path:      Path(dataDir, company),
		retention: DefaultRetention,
		log:       logging.Discard().WithField("component", "audit"),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.log = t.log.WithField("company", company)

	data, err := os.ReadFile(t.path)
	if errors.Is(err, fs.ErrNotExist) {
		return t, nil
	}
	if err != nil {
		return t, fmt.Errorf("failed to read audit trail %s: %w", t.path, err)
	}

	var entries []models.AuditEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return t, fmt.Errorf("%w: %s: %v", ErrCorrupt, t.path, err)
	}
	t.entries = trim(entries, t.retention)

	t.log.WithField("entries", len(t.entries)).Debug("Audit trail loaded")
	return t, nil
}

// Company returns the company this trail belongs to
func (t *Trail) Company() string {
	return t.company
}

// Path returns the audit file path
func (t *Trail) Path() string {
	return t.path
}

// Len returns the number of retained entries
func (t *Trail) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Log appends an entry and rewrites the audit file. The entry is kept in
// memory only if the file was written.
func (t *Trail) Log(user string, action models.Action, entityType, entityID string, oldValues, newValues map[string]any, ip string) (models.AuditEntry, error) {
	entry, err := models.NewAuditEntry(t.company, user, action, entityType, entityID, oldValues, newValues, ip, t.now)
	if err != nil {
		return models.AuditEntry{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	next := trim(append(t.entries[:len(t.entries):len(t.entries)], entry), t.retention)
	if err := t.save(next); err != nil {
		return models.AuditEntry{}, err
	}
	t.entries = next

	t.log.WithFields(logrus.Fields{
		"user":   user,
		"action": string(action),
	}).Info("Audit: " + entry.Summary())
	return entry, nil
}

// Entries returns matching entries, most recent first
func (t *Trail) Entries(f Filter) []models.AuditEntry {
	limit := f.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	var out []models.AuditEntry
	for i := len(t.entries) - 1; i >= 0; i-- {
		if limit > 0 && len(out) >= limit {
			break
		}
		if f.matches(t.entries[i]) {
			out = append(out, t.entries[i])
		}
	}
	return out
}

// EntityHistory returns the changes recorded for one entity
func (t *Trail) EntityHistory(entityType, entityID string) []models.AuditEntry {
	return t.Entries(Filter{EntityType: entityType, EntityID: entityID, Limit: HistoryLimit})
}

// UserActivity returns what user did during the last days days
func (t *Trail) UserActivity(user string, days int) []models.AuditEntry {
	r := models.LastDays(t.now(), days)
	return t.Entries(Filter{User: user, Start: r.Start, Limit: HistoryLimit})
}

// save writes entries to a temp file and renames it over the audit file
func (t *Trail) save(entries []models.AuditEntry) error {
	if entries == nil {
		entries = []models.AuditEntry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode audit trail: %w", err)
	}

	dir := filepath.Dir(t.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create audit directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, FileName+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to save audit trail: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to save audit trail: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to save audit trail: %w", err)
	}
	if err := os.Rename(tmp.Name(), t.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to save audit trail: %w", err)
	}
	return nil
}

// trim keeps the most recent n entries
func trim(entries []models.AuditEntry, n int) []models.AuditEntry {
	if n <= 0 || len(entries) <= n {
		return entries
	}
	kept := make([]models.AuditEntry, n)
	copy(kept, entries[len(entries)-n:])
	return kept
}
