package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	tokens := NewTokenService("secret", time.Hour, 24*time.Hour)

	access, err := tokens.IssueAccessToken("user-1")
	require.NoError(t, err)

	userID, err := tokens.VerifyToken(access)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestTokenService_RefreshTokensAreUnique(t *testing.T) {
	tokens := NewTokenService("secret", time.Hour, 24*time.Hour)
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tokens.now = func() time.Time { return fixed }

	first, err := tokens.IssueRefreshToken("user-1")
	require.NoError(t, err)
	second, err := tokens.IssueRefreshToken("user-1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestTokenService_Expired(t *testing.T) {
	tokens := NewTokenService("secret", time.Minute, time.Hour)
	issuedAt := time.Now().Add(-2 * time.Minute)
	tokens.now = func() time.Time { return issuedAt }

	token, err := tokens.IssueAccessToken("user-1")
	require.NoError(t, err)

	tokens.now = time.Now
	_, err = tokens.VerifyToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret", time.Hour, time.Hour)
	verifier := NewTokenService("other-secret", time.Hour, time.Hour)

	token, err := issuer.IssueAccessToken("user-1")
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_Malformed(t *testing.T) {
	tokens := NewTokenService("secret", time.Hour, time.Hour)

	_, err := tokens.VerifyToken("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
