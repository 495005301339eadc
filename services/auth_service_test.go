package services_test

import (
	"testing"
	"time"

	"github.com/doker312/aroras-kitchen-orderflow-app/repository"
	"github.com/doker312/aroras-kitchen-orderflow-app/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *services.AuthService {
	return services.NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
}

func TestRegisterCreatesCustomer(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	token, user, err := svc.Register("New Customer", "New@Example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, token, "registration auto-logs-in")
	assert.Equal(t, "customer", user.Role, "registered identities are always customers")
	assert.Equal(t, "new@example.com", user.Email, "email is normalized")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	_, first, err := svc.Register("First", "dup@example.com", "secret123")
	require.NoError(t, err)

	_, _, err = svc.Register("Second", "DUP@example.com", "other456")
	assert.ErrorIs(t, err, services.ErrDuplicateEmail)

	// the original record is untouched
	got, err := svc.GetProfile(first.ID)
	require.NoError(t, err)
	assert.Equal(t, "First", got.Name)
}

func TestLoginInvalidCredentials(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	_, _, err := svc.Register("Login User", "login@example.com", "secret123")
	require.NoError(t, err)

	_, _, err = svc.Login("login@example.com", "wrongpass")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, _, err = svc.Login("nobody@example.com", "secret123")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestLoginSuccess(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	_, _, err := svc.Register("Login User", "ok@example.com", "secret123")
	require.NoError(t, err)

	token, user, err := svc.Login("OK@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "ok@example.com", user.Email)
}
