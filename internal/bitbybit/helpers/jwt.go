package helpers

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTClaims represents the claims issued by the BitByBit token endpoint
type JWTClaims struct {
	jwt.RegisteredClaims
	TokenType string `json:"token_type"`
	UserID    int64  `json:"user_id"`
}

// ParseJWT decodes the claims of a token without verifying its signature.
// The client never holds the signing key; the claims are only used for diagnostics.
func ParseJWT(tokenString string) (*JWTClaims, error) {
	claims := &JWTClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	return claims, nil
}

// ParseJWTExpiration returns the expiry of the token, or the zero time when it has none
func ParseJWTExpiration(tokenString string) (time.Time, error) {
	claims, err := ParseJWT(tokenString)
	if err != nil {
		return time.Time{}, err
	}

	if claims.ExpiresAt == nil {
		return time.Time{}, nil
	}

	return claims.ExpiresAt.Time, nil
}
