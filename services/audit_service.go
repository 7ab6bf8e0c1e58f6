package services

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/accountapp/accountapp/audit"
	"github.com/accountapp/accountapp/models"
	"github.com/accountapp/accountapp/pagination"
	"github.com/accountapp/accountapp/store"
)

// AuditPage is one page of audit entries
type AuditPage struct {
	Entries []AuditView         `json:"entries"`
	Page    pagination.PageInfo `json:"page"`
}

// AuditView is an audit entry with its rendered summary
type AuditView struct {
	models.AuditEntry
	Summary string `json:"summary"`
}

// AuditService interface defines audit trail queries
type AuditService interface {
	List(ctx context.Context, company string, filter audit.Filter, page, pageSize int) (*AuditPage, error)
	EntityHistory(ctx context.Context, company, entityType, entityID string) ([]AuditView, error)
	UserActivity(ctx context.Context, company, user string, days int) ([]AuditView, error)
	Export(ctx context.Context, actor models.Actor, company string, filter audit.Filter, format audit.Format, w io.Writer) (int, error)
}

// auditService implements AuditService interface
type auditService struct {
	store  store.Store
	trails TrailProvider
	audit  AuditRecorder
	log    *logrus.Entry
}

// NewAuditService creates a new audit service
func NewAuditService(st store.Store, trails TrailProvider, recorder AuditRecorder, log *logrus.Entry) AuditService {
	return &auditService{
		store:  st,
		trails: trails,
		audit:  recorder,
		log:    log,
	}
}

func (s *auditService) trail(ctx context.Context, company string) (*audit.Trail, error) {
	if _, err := s.store.Company(ctx, company); err != nil {
		return nil, err
	}
	return s.trails.Trail(company)
}

// List returns one page of matching entries, most recent first. The
// filter's Limit is ignored; paging replaces it.
func (s *auditService) List(ctx context.Context, company string, filter audit.Filter, page, pageSize int) (*AuditPage, error) {
	t, err := s.trail(ctx, company)
	if err != nil {
		return nil, err
	}

	filter.Limit = -1
	p := pagination.New(t.Entries(filter), pageSize)

	return &AuditPage{
		Entries: views(p.Page(page)),
		Page:    p.Info(page),
	}, nil
}

// EntityHistory returns the recorded changes of one entity
func (s *auditService) EntityHistory(ctx context.Context, company, entityType, entityID string) ([]AuditView, error) {
	t, err := s.trail(ctx, company)
	if err != nil {
		return nil, err
	}
	return views(t.EntityHistory(entityType, entityID)), nil
}

// UserActivity returns what user did in the last days days
func (s *auditService) UserActivity(ctx context.Context, company, user string, days int) ([]AuditView, error) {
	t, err := s.trail(ctx, company)
	if err != nil {
		return nil, err
	}
	return views(t.UserActivity(user, days)), nil
}

// Export writes every matching entry in format and records the export
func (s *auditService) Export(ctx context.Context, actor models.Actor, company string, filter audit.Filter, format audit.Format, w io.Writer) (int, error) {
	t, err := s.trail(ctx, company)
	if err != nil {
		return 0, err
	}

	if filter.Limit == 0 {
		filter.Limit = -1
	}
	entries := t.Entries(filter)
	if err := audit.Export(w, entries, format); err != nil {
		return 0, err
	}

	_, err = s.audit.LogExport(company, actor.Username, "audit_trail", len(entries), actor.IPAddress)
	logAuditError(s.log, company, err)

	return len(entries), nil
}

func views(entries []models.AuditEntry) []AuditView {
	out := make([]AuditView, len(entries))
	for i, e := range entries {
		out[i] = AuditView{AuditEntry: e, Summary: e.Summary()}
	}
	return out
}
