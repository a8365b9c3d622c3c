package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/reviewpulse/sentiment-api/internal/domain/service"
)

// JWTManager implements HS256 token signing and validation. The secret is
// held at adapter level so the usecases stay crypto-library agnostic.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTManager creates a token manager signing with the given secret.
// Tokens expire ttl after issuance.
func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue creates a signed token whose subject is the username
func (m *JWTManager) Issue(subject string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse validates the signature and expiry and returns the token subject
func (m *JWTManager) Parse(raw string) (string, error) {
	parsed, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
		}
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", service.ErrTokenExpired
		}
		return "", service.ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return "", service.ErrTokenInvalid
	}

	return claims.Subject, nil
}
