package audit

import (
	"errors"
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"

	"github.com/accountapp/accountapp/config"
	"github.com/accountapp/accountapp/logging"
	"github.com/accountapp/accountapp/metrics"
	"github.com/accountapp/accountapp/models"
)

// Entity types used by the Manager helpers
const (
	EntityAuthentication = "authentication"
	EntityCompany        = "company"
	EntityDocument       = "document"
)

// Manager hands out the audit trail of each company. Open trails are kept in
// a bounded LRU cache; evicted trails are reloaded from disk on next use.
type Manager struct {
	mu             sync.Mutex
	dataDir        string
	retention      int
	recoverCorrupt bool
	trails         *lru.Cache[string, *Trail]
	logger         *logrus.Logger
	log            *logrus.Entry
	metrics        *metrics.Metrics
	now            func() time.Time
}

// NewManager creates a manager for trails stored under dataDir
func NewManager(dataDir string, cfg config.AuditConfig, logger *logrus.Logger) (*Manager, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	size := cfg.CacheSize
	if size <= 0 {
		size = 32
	}
	retention := cfg.Retention
	if retention <= 0 {
		retention = DefaultRetention
	}

	m := &Manager{
		dataDir:        dataDir,
		retention:      retention,
		recoverCorrupt: cfg.RecoverCorrupt,
		logger:         logger,
		log:            logger.WithField("component", "audit"),
		now:            time.Now,
	}

	cache, err := lru.NewWithEvict(size, func(company string, _ *Trail) {
		m.log.WithField("company", company).Debug("Audit trail evicted from cache")
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create audit cache: %w", err)
	}
	m.trails = cache

	return m, nil
}

// SetClock overrides the time source of trails opened afterwards
func (m *Manager) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

// Instrument counts written entries and failures on m
func (m *Manager) Instrument(mt *metrics.Metrics) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.metrics = mt
}

// Trail returns the audit trail for company, opening it if needed
func (m *Manager) Trail(company string) (*Trail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.trailLocked(company)
}

func (m *Manager) trailLocked(company string) (*Trail, error) {
	if t, ok := m.trails.Get(company); ok {
		return t, nil
	}

	t, err := Open(m.dataDir, company,
		WithRetention(m.retention),
		WithLogger(m.logger),
		WithClock(m.now),
	)
	if err != nil {
		if !errors.Is(err, ErrCorrupt) || !m.recoverCorrupt {
			return nil, err
		}
		// History is discarded; the next append overwrites the file
		m.log.WithError(err).WithField("company", company).Error("Starting with an empty audit trail")
	}

	m.trails.Add(company, t)
	return t, nil
}

// Forget drops the cached trail of company, used when a company is deleted
func (m *Manager) Forget(company string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trails.Remove(company)
}

// Cached returns the number of open trails
func (m *Manager) Cached() int {
	return m.trails.Len()
}

// Log records an entry in the company's trail. Appends are serialized so an
// evicted trail and its reloaded copy never write concurrently.
func (m *Manager) Log(company, user string, action models.Action, entityType, entityID string, oldValues, newValues map[string]any, ip string) (models.AuditEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, err := m.logLocked(company, user, action, entityType, entityID, oldValues, newValues, ip)
	if m.metrics != nil {
		if err != nil {
			m.metrics.AuditErrorsTotal.Inc()
		} else {
			m.metrics.AuditEntriesTotal.WithLabelValues(string(action)).Inc()
		}
	}
	return entry, err
}

func (m *Manager) logLocked(company, user string, action models.Action, entityType, entityID string, oldValues, newValues map[string]any, ip string) (models.AuditEntry, error) {
	t, err := m.trailLocked(company)
	if err != nil {
		return models.AuditEntry{}, err
	}
	return t.Log(user, action, entityType, entityID, oldValues, newValues, ip)
}

// LogCreate records the creation of an entity
func (m *Manager) LogCreate(company, user, entityType, entityID string, values map[string]any, ip string) (models.AuditEntry, error) {
	return m.Log(company, user, models.ActionCreate, entityType, entityID, nil, values, ip)
}

// LogUpdate records a change from oldValues to newValues
func (m *Manager) LogUpdate(company, user, entityType, entityID string, oldValues, newValues map[string]any, ip string) (models.AuditEntry, error) {
	return m.Log(company, user, models.ActionUpdate, entityType, entityID, oldValues, newValues, ip)
}

// LogDelete records the removal of an entity with its last values
func (m *Manager) LogDelete(company, user, entityType, entityID string, values map[string]any, ip string) (models.AuditEntry, error) {
	return m.Log(company, user, models.ActionDelete, entityType, entityID, values, nil, ip)
}

// LogLogin records a login attempt
func (m *Manager) LogLogin(company, user string, success bool, ip string) (models.AuditEntry, error) {
	action := models.ActionLoginFailed
	if success {
		action = models.ActionLoginSuccess
	}
	return m.Log(company, user, action, EntityAuthentication, user, nil, nil, ip)
}

// LogLogout records a logout
func (m *Manager) LogLogout(company, user, ip string) (models.AuditEntry, error) {
	return m.Log(company, user, models.ActionLogout, EntityAuthentication, user, nil, nil, ip)
}

// LogExport records an export of count records
func (m *Manager) LogExport(company, user, exportType string, count int, ip string) (models.AuditEntry, error) {
	return m.Log(company, user, models.ActionExport, exportType, fmt.Sprintf("%d_records", count),
		nil, map[string]any{"record_count": count}, ip)
}
