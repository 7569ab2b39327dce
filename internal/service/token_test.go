package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_GenerateVerifyRoundtrip(t *testing.T) {
	svc := NewTokenService("top-secret", time.Hour)

	token, err := svc.Generate("user-1", "a@b.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Generate("user-1", "a@b.com")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_ExpiredToken(t *testing.T) {
	svc := NewTokenService("top-secret", -time.Hour)

	token, err := svc.Generate("user-1", "a@b.com")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_MalformedToken(t *testing.T) {
	svc := NewTokenService("top-secret", time.Hour)

	_, err := svc.Verify("not.a.token")
	require.ErrorIs(t, err, ErrInvalidToken)
}
