package service

import "errors"

// Token validation errors surfaced by TokenManager implementations
var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// TokenManager issues and validates self-describing bearer tokens.
// Validation is pure: validity is determined by signature and expiry alone.
type TokenManager interface {
	// Issue creates a token for the given subject, expiring after the
	// configured TTL
	Issue(subject string) (string, error)

	// Parse validates a raw token and returns its subject. It returns
	// ErrTokenExpired for a token past its expiry and ErrTokenInvalid
	// for anything else that fails validation.
	Parse(raw string) (string, error)
}

// PasswordHasher performs one-way password hashing and verification
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
