package authenticator

import (
	"context"
	"errors"
	"fmt"

	"github.com/accountapp/accountapp/models"
)

// ErrInvalidCredentials is returned for an unknown user or a wrong password.
// The two cases are not distinguished.
var ErrInvalidCredentials = errors.New("invalid username or password")

// DocumentLoader is the part of the document store the authenticator reads
type DocumentLoader interface {
	LoadJSON(ctx context.Context, company, filename string, v any) error
}

// Provider authenticates a user against a company's user list
type Provider interface {
	Authenticate(ctx context.Context, company, username, password string) (*models.User, error)
}

// Local authenticates against the company's users.json document
type Local struct {
	docs DocumentLoader
}

// NewLocal creates a users.json backed authenticator
func NewLocal(docs DocumentLoader) *Local {
	return &Local{docs: docs}
}

// Authenticate returns the matching user or ErrInvalidCredentials
func (a *Local) Authenticate(ctx context.Context, company, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	var users []models.User
	if err := a.docs.LoadJSON(ctx, company, models.DocumentUsers, &users); err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	for i := range users {
		if users[i].Username != username {
			continue
		}
		if VerifyPassword(users[i].Password, password) {
			return &users[i], nil
		}
		break
	}

	return nil, ErrInvalidCredentials
}
