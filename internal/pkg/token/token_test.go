package token

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwtlib.RegisteredClaims{ExpiresAt: jwtlib.NewNumericDate(exp)}
	tok := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestExpiredToken(t *testing.T) {
	now := time.Now()
	assert.True(t, Expired(signedToken(t, now.Add(-time.Minute)), now))
}

func TestLiveToken(t *testing.T) {
	now := time.Now()
	assert.False(t, Expired(signedToken(t, now.Add(time.Hour)), now))
}

func TestOpaqueTokenIsLive(t *testing.T) {
	assert.False(t, Expired("not-a-jwt", time.Now()))
}

func TestTokenWithoutExpIsLive(t *testing.T) {
	tok := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, jwtlib.RegisteredClaims{})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	assert.False(t, Expired(s, time.Now()))
}
