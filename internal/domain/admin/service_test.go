package admin_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"cattery-cms/internal/adapters/auth/jwt"
	"cattery-cms/internal/adapters/storage/memory"
	"cattery-cms/internal/domain/admin"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*admin.Service, *jwt.Signer) {
	t.Helper()
	signer, err := jwt.NewSigner(jwt.Config{SecretKey: "test-secret", TTL: time.Hour})
	require.NoError(t, err)
	return admin.NewService(memory.NewSettingsRepo(), signer), signer
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, signer := newService(t)

	_, err := svc.Login(ctx, "admin123")
	assert.True(t, errors.Is(err, admin.ErrUnauthorized), "no stored hash must reject")

	created, err := svc.EnsurePassword(ctx, "admin123")
	require.NoError(t, err)
	assert.True(t, created)

	_, err = svc.Login(ctx, "wrong")
	assert.True(t, errors.Is(err, admin.ErrUnauthorized))

	tok, err := svc.Login(ctx, "admin123")
	require.NoError(t, err)
	claims, err := signer.Verify(ctx, tok.Value)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
}

func TestEnsurePassword_KeepsExisting(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	_, err := svc.EnsurePassword(ctx, "first-pass")
	require.NoError(t, err)
	created, err := svc.EnsurePassword(ctx, "second-pass")
	require.NoError(t, err)
	assert.False(t, created)

	_, err = svc.Login(ctx, "first-pass")
	assert.NoError(t, err)
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	_, err := svc.EnsurePassword(ctx, "admin123")
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, "nope", "newpass1")
	assert.True(t, errors.Is(err, admin.ErrUnauthorized))

	err = svc.ChangePassword(ctx, "admin123", "short")
	assert.True(t, errors.Is(err, admin.ErrInvalidInput))

	// el rechazo no altera la contraseña
	_, err = svc.Login(ctx, "admin123")
	require.NoError(t, err)

	require.NoError(t, svc.ChangePassword(ctx, "admin123", "newpass1"))

	_, err = svc.Login(ctx, "admin123")
	assert.True(t, errors.Is(err, admin.ErrUnauthorized))
	_, err = svc.Login(ctx, "newpass1")
	assert.NoError(t, err)
}

func TestChangePassword_LengthRules(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)
	_, err := svc.EnsurePassword(ctx, "admin123")
	require.NoError(t, err)

	// 5 caracteres, 10 bytes
	err = svc.ChangePassword(ctx, "admin123", "ñññññ")
	assert.True(t, errors.Is(err, admin.ErrPasswordTooShort))
	assert.True(t, errors.Is(err, admin.ErrInvalidInput))

	err = svc.ChangePassword(ctx, "admin123", strings.Repeat("x", 80))
	assert.True(t, errors.Is(err, admin.ErrPasswordTooLong))
	assert.True(t, errors.Is(err, admin.ErrInvalidInput))

	// 6 caracteres multibyte alcanzan
	require.NoError(t, svc.ChangePassword(ctx, "admin123", "ññññññ"))
	_, err = svc.Login(ctx, "ññññññ")
	assert.NoError(t, err)

	require.NoError(t, svc.ChangePassword(ctx, "ññññññ", strings.Repeat("y", admin.MaxPasswordBytes)))
}

func TestResetPassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	assert.True(t, errors.Is(svc.ResetPassword(ctx, "abc"), admin.ErrInvalidInput))
	assert.True(t, errors.Is(svc.ResetPassword(ctx, strings.Repeat("z", 73)), admin.ErrInvalidInput))
	require.NoError(t, svc.ResetPassword(ctx, "reset-me"))
	_, err := svc.Login(ctx, "reset-me")
	assert.NoError(t, err)
}
