package helpers

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	return token
}

func TestParseJWTExpiration(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)},
		TokenType:        "access",
		UserID:           7,
	})

	got, err := ParseJWTExpiration(token)
	require.NoError(t, err)
	assert.True(t, exp.Equal(got))

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "access", claims.TokenType)
	assert.Equal(t, int64(7), claims.UserID)
}

func TestParseJWTWithoutExpiry(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"user_id": 1})

	got, err := ParseJWTExpiration(token)
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestParseJWTOpaqueToken(t *testing.T) {
	_, err := ParseJWT("not-a-jwt")
	assert.Error(t, err)
}
