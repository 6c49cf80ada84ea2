package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/account-service/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	token, exp, err := tm.GenerateToken("acct-1", domain.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "acct-1", claims.AccountID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestParseTokenExpired(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	claims := &Claims{
		AccountID: "acct-1",
		Role:      domain.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "acct-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = tm.ParseToken(signed)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseTokenWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", 60)
	verifier := NewTokenManager("secret-b", 60)

	token, _, err := issuer.GenerateToken("acct-1", domain.RoleUser)
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseTokenGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	_, err := tm.ParseToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseTokenWrongAlgorithm(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{AccountID: "acct-1"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = tm.ParseToken(signed)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestNewTokenManagerDefaultsTTL(t *testing.T) {
	tm := NewTokenManager("test-secret", 0)

	_, exp, err := tm.GenerateToken("acct-1", domain.RoleUser)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(60*time.Minute), exp, time.Minute)
}
