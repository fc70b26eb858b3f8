package auth

import (
	"errors"
	"time"
)

var (
	// ErrTokenInvalid is returned for malformed tokens and bad signatures.
	ErrTokenInvalid = errors.New("invalid auth token")
	// ErrTokenExpired is returned for well-signed tokens past their expiry.
	ErrTokenExpired = errors.New("auth token expired")
)

// Identity is the user claim carried inside a session token.
type Identity struct {
	ID       int64
	Username string
}

// Strategy issues and verifies signed session tokens. Verification is pure
// computation; implementations must distinguish expiry from tampering via the
// sentinel errors above and never panic on untrusted input.
type Strategy interface {
	IssueToken(identity Identity) (string, error)
	ParseToken(token string) (Identity, error)
	Name() string
}

// Options tune token issuance.
type Options struct {
	TTL time.Duration
}

// DefaultTTL bounds session lifetime when no TTL is configured.
const DefaultTTL = 30 * time.Minute
