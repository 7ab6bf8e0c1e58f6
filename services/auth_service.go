package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/accountapp/accountapp/authenticator"
	"github.com/accountapp/accountapp/models"
	"github.com/accountapp/accountapp/store"
)

// AuthService interface defines company login business logic
type AuthService interface {
	Login(ctx context.Context, company, username, password, ip string) (*models.User, error)
	Logout(ctx context.Context, company string, actor models.Actor) error
}

// authService implements AuthService interface
type authService struct {
	store    store.Store
	provider authenticator.Provider
	audit    AuditRecorder
	log      *logrus.Entry
}

// NewAuthService creates a new auth service
func NewAuthService(st store.Store, provider authenticator.Provider, recorder AuditRecorder, log *logrus.Entry) AuthService {
	return &authService{
		store:    st,
		provider: provider,
		audit:    recorder,
		log:      log,
	}
}

// Login checks the credentials against the company's users and records the
// attempt. The returned user carries no password hash.
func (s *authService) Login(ctx context.Context, company, username, password, ip string) (*models.User, error) {
	if _, err := s.store.Company(ctx, company); err != nil {
		return nil, err
	}

	user, err := s.provider.Authenticate(ctx, company, username, password)
	if err != nil {
		if errors.Is(err, authenticator.ErrInvalidCredentials) {
			_, auditErr := s.audit.LogLogin(company, username, false, ip)
			logAuditError(s.log, company, auditErr)
			s.log.WithFields(logrus.Fields{"company": company, "user": username}).Warn("Login failed")
		}
		return nil, err
	}

	_, err = s.audit.LogLogin(company, username, true, ip)
	logAuditError(s.log, company, err)

	out := *user
	out.Password = ""
	return &out, nil
}

// Logout records the end of a session
func (s *authService) Logout(ctx context.Context, company string, actor models.Actor) error {
	if _, err := s.store.Company(ctx, company); err != nil {
		return err
	}

	// Recording the logout is the whole operation, so its failure is returned
	_, err := s.audit.LogLogout(company, actor.Username, actor.IPAddress)
	return err
}
