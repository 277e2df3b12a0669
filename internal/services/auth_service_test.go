package services

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/phonedrive/api/internal/dto"
	"github.com/phonedrive/api/internal/models"
	"github.com/phonedrive/api/internal/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	cfg := newTestConfig()
	return NewAuthService(newTestDB(t), cfg, newTestNotifier(cfg, notify.LogMailer{}))
}

func TestRegisterDuplicateEmailDoesNotOverwrite(t *testing.T) {
	svc := newAuthService(t)

	first, err := svc.Register(&dto.RegisterRequest{
		Email: "jean@example.com", Password: "password123", Name: "Jean",
	})
	require.NoError(t, err)

	_, err = svc.Register(&dto.RegisterRequest{
		Email: "jean@example.com", Password: "password456", Name: "Imposter",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)

	// Case variants collide too.
	_, err = svc.Register(&dto.RegisterRequest{
		Email: "JEAN@Example.com", Password: "password456", Name: "Imposter",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)

	kept, err := svc.Profile(first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jean", kept.Name)
}

func TestRegisterRejectsWeakInput(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register(&dto.RegisterRequest{Email: "", Password: "password123"})
	assert.Error(t, err)

	_, err = svc.Register(&dto.RegisterRequest{Email: "a@b.com", Password: "short"})
	assert.Error(t, err)
}

func TestLoginIssuesTokenWithStoredRole(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register(&dto.RegisterRequest{
		Email: "marie@example.com", Password: "password123", Name: "Marie",
	})
	require.NoError(t, err)

	token, user, err := svc.Login(&dto.LoginRequest{
		Email: "Marie@Example.com", Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleClient, user.Role)

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, user.ID.String(), claims["sub"])
	assert.Equal(t, models.RoleClient, claims["role"])
	assert.Equal(t, "marie@example.com", claims["email"])
}

func TestLoginFailures(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register(&dto.RegisterRequest{
		Email: "marie@example.com", Password: "password123",
	})
	require.NoError(t, err)

	_, _, err = svc.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrUnknownEmail)

	token, _, err := svc.Login(&dto.LoginRequest{Email: "marie@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
}

func TestAdminLogin(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.AdminLogin("wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	token, err := svc.AdminLogin("super-secret-pw")
	require.NoError(t, err)

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, models.RoleAdmin, claims["role"])
	assert.Equal(t, true, claims["legacy"])
	assert.NotContains(t, claims, "sub")
}

func TestAdminLoginDisabledWithoutPassword(t *testing.T) {
	cfg := newTestConfig()
	cfg.AdminPassword = ""
	svc := NewAuthService(newTestDB(t), cfg, newTestNotifier(cfg, notify.LogMailer{}))

	_, err := svc.AdminLogin("")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
