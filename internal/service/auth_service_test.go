package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(env *testEnv) AuthService {
	return NewAuthService(env.state, true, "test-secret", time.Hour)
}

func TestAuth_LockLifecycle(t *testing.T) {
	env := newTestEnv()
	svc := newAuthService(env)
	ctx := context.Background()

	assert.False(t, svc.Required(ctx), "no PIN set means no lock")

	assert.ErrorIs(t, svc.SetPin(ctx, "", "123"), ErrPinValidation)
	require.NoError(t, svc.SetPin(ctx, "", "1234"))
	assert.True(t, svc.Required(ctx))

	// Changing the PIN needs the current one.
	assert.ErrorIs(t, svc.SetPin(ctx, "wrong", "5678"), ErrAuthenticationFailed)
	require.NoError(t, svc.SetPin(ctx, "1234", "5678"))

	assert.ErrorIs(t, svc.ClearPin(ctx, "1234"), ErrAuthenticationFailed)
	require.NoError(t, svc.ClearPin(ctx, "5678"))
	assert.False(t, svc.Required(ctx))
}

func TestAuth_UnlockIssuesValidToken(t *testing.T) {
	env := newTestEnv()
	svc := newAuthService(env)
	ctx := context.Background()

	_, err := svc.Unlock(ctx, "1234")
	assert.ErrorIs(t, err, ErrAuthenticationFailed, "unlock without a stored PIN fails")

	require.NoError(t, svc.SetPin(ctx, "", "1234"))

	_, err = svc.Unlock(ctx, "9999")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	token, err := svc.Unlock(ctx, "1234")
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, "owner", claims.Subject)
}

func TestAuth_DisabledLockNeverRequired(t *testing.T) {
	env := newTestEnv()
	svc := NewAuthService(env.state, false, "", time.Hour)
	ctx := context.Background()

	require.NoError(t, svc.SetPin(ctx, "", "1234"))
	assert.False(t, svc.Required(ctx))
}
