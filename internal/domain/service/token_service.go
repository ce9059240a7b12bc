package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are the claims carried by a session token.
type SessionClaims struct {
	AccountUUID string `json:"account_uuid"`
	jwt.RegisteredClaims
}

// SessionTokenIssuer mints and parses the opaque tokens stored in session.session_token.
type SessionTokenIssuer interface {
	// Issue signs a token for the account, valid until expiresAt.
	Issue(accountUUID string, issuedAt, expiresAt time.Time) (string, error)

	// Parse verifies the signature and returns the claims. Expiry is not
	// checked here; the session row is the source of truth for it.
	Parse(token string) (*SessionClaims, error)

	// Duration is the configured lifetime of a session.
	Duration() time.Duration
}
