package authenticator

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accountapp/accountapp/models"
)

type fakeLoader struct {
	users []models.User
	err   error
}

func (f *fakeLoader) LoadJSON(_ context.Context, _, filename string, v any) error {
	if f.err != nil {
		return f.err
	}
	if filename != models.DocumentUsers {
		return errors.New("unexpected document " + filename)
	}
	data, err := json.Marshal(f.users)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func legacyHash(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)

	assert.True(t, VerifyPassword(hash, "s3cret!"))
	assert.False(t, VerifyPassword(hash, "wrong"))
	assert.False(t, IsLegacyHash(hash))

	legacy := legacyHash("admin")
	assert.True(t, VerifyPassword(legacy, "admin"))
	assert.False(t, VerifyPassword(legacy, "Admin"))
	assert.True(t, IsLegacyHash(legacy))
}

func TestLocal_Authenticate(t *testing.T) {
	hash, err := HashPassword("pa55word")
	require.NoError(t, err)

	loader := &fakeLoader{users: []models.User{
		{Username: "admin", Password: legacyHash("admin"), Role: "admin"},
		{Username: "priya", Password: hash, Role: "accountant"},
	}}
	auth := NewLocal(loader)
	ctx := context.Background()

	user, err := auth.Authenticate(ctx, "Acme", "priya", "pa55word")
	require.NoError(t, err)
	assert.Equal(t, "accountant", user.Role)

	user, err = auth.Authenticate(ctx, "Acme", "admin", "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)

	_, err = auth.Authenticate(ctx, "Acme", "priya", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Authenticate(ctx, "Acme", "ghost", "pa55word")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Authenticate(ctx, "Acme", "priya", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLocal_AuthenticateLoadFailure(t *testing.T) {
	loadErr := errors.New("boom")
	auth := NewLocal(&fakeLoader{err: loadErr})

	_, err := auth.Authenticate(context.Background(), "Acme", "admin", "admin")
	assert.ErrorIs(t, err, loadErr)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
