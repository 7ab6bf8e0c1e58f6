package services

import (
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/accountapp/accountapp/audit"
	"github.com/accountapp/accountapp/authenticator"
	"github.com/accountapp/accountapp/logging"
	"github.com/accountapp/accountapp/metrics"
	"github.com/accountapp/accountapp/models"
	"github.com/accountapp/accountapp/store"
)

// AuditRecorder is the part of the audit manager that services write through
type AuditRecorder interface {
	LogCreate(company, user, entityType, entityID string, values map[string]any, ip string) (models.AuditEntry, error)
	LogUpdate(company, user, entityType, entityID string, oldValues, newValues map[string]any, ip string) (models.AuditEntry, error)
	LogDelete(company, user, entityType, entityID string, values map[string]any, ip string) (models.AuditEntry, error)
	LogLogin(company, user string, success bool, ip string) (models.AuditEntry, error)
	LogLogout(company, user, ip string) (models.AuditEntry, error)
	LogExport(company, user, exportType string, count int, ip string) (models.AuditEntry, error)
	Forget(company string)
}

// TrailProvider opens a company's audit trail for reading
type TrailProvider interface {
	Trail(company string) (*audit.Trail, error)
}

// Services holds all service instances
type Services struct {
	Companies CompanyService
	Documents DocumentService
	Auth      AuthService
	Audit     AuditService
}

// NewServices creates and initializes all service instances
func NewServices(st store.Store, auditManager *audit.Manager, auth authenticator.Provider, m *metrics.Metrics, logger *logrus.Logger) *Services {
	if logger == nil {
		logger = logging.Discard()
	}
	log := logger.WithField("component", "services")

	return &Services{
		Companies: NewCompanyService(st, auditManager, log),
		Documents: NewDocumentService(st, auditManager, m, log),
		Auth:      NewAuthService(st, auth, auditManager, log),
		Audit:     NewAuditService(st, auditManager, auditManager, log),
	}
}

// logAuditError reports a failed audit write. The change it describes is
// already committed, so the caller's operation still succeeds.
func logAuditError(log *logrus.Entry, company string, err error) {
	if err != nil {
		log.WithError(err).WithField("company", company).Error("Failed to write audit entry")
	}
}

// toValues converts a value into the map form stored in audit entries.
// JSON objects map directly, arrays are summarised by their length and
// anything else is stored under "value".
func toValues(v any) map[string]any {
	data, err := json.Marshal(v)
	if err != nil {
		return map[string]any{"value": v}
	}
	return rawValues(data)
}

func rawValues(data []byte) map[string]any {
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return map[string]any{}
	}
	switch d := decoded.(type) {
	case map[string]any:
		return d
	case []any:
		return map[string]any{"records": len(d)}
	default:
		return map[string]any{"value": d}
	}
}
