package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/accountapp/accountapp/audit"
	"github.com/accountapp/accountapp/models"
	"github.com/accountapp/accountapp/store"
)

// CompanyService interface defines company registry business logic
type CompanyService interface {
	GetAll(ctx context.Context) ([]models.Company, error)
	Get(ctx context.Context, name string) (*models.Company, error)
	Create(ctx context.Context, actor models.Actor, form *models.CompanyForm) (*models.Company, error)
	Delete(ctx context.Context, actor models.Actor, name string) error
}

// companyService implements CompanyService interface
type companyService struct {
	store store.Store
	audit AuditRecorder
	log   *logrus.Entry
	now   func() time.Time
}

// NewCompanyService creates a new company service
func NewCompanyService(st store.Store, recorder AuditRecorder, log *logrus.Entry) CompanyService {
	return &companyService{
		store: st,
		audit: recorder,
		log:   log,
		now:   time.Now,
	}
}

// GetAll retrieves every registered company
func (s *companyService) GetAll(ctx context.Context) ([]models.Company, error) {
	return s.store.Companies(ctx)
}

// Get retrieves a company by name
func (s *companyService) Get(ctx context.Context, name string) (*models.Company, error) {
	return s.store.Company(ctx, name)
}

// Create validates the form, creates the company with its default documents
// and records a CREATE entry
func (s *companyService) Create(ctx context.Context, actor models.Actor, form *models.CompanyForm) (*models.Company, error) {
	if errs := form.Validate(); errs.HasErrors() {
		return nil, errs
	}

	company := form.ToCompany(s.now())
	if err := s.store.CreateCompany(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	_, err := s.audit.LogCreate(company.Name, actor.Username, audit.EntityCompany, company.Name, toValues(company), actor.IPAddress)
	logAuditError(s.log, company.Name, err)

	return &company, nil
}

// Delete removes the company and everything stored for it. The deletion is
// recorded in a fresh trail since the files backend removes the old one with
// the company directory.
func (s *companyService) Delete(ctx context.Context, actor models.Actor, name string) error {
	company, err := s.store.Company(ctx, name)
	if err != nil {
		return err
	}

	if err := s.store.DeleteCompany(ctx, name); err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	s.audit.Forget(name)

	_, err = s.audit.LogDelete(name, actor.Username, audit.EntityCompany, name, toValues(company), actor.IPAddress)
	logAuditError(s.log, name, err)

	return nil
}
