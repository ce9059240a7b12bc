// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"opencircle/config"
	"opencircle/internal/domain/entity"
	"opencircle/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// sessionTokenIssuer signs session tokens with HS256.
type sessionTokenIssuer struct {
	secret   []byte
	duration time.Duration
}

// NewSessionTokenIssuer is the constructor for sessionTokenIssuer.
func NewSessionTokenIssuer(cfg *config.Config) (service.SessionTokenIssuer, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	duration := entity.DefaultSessionDuration
	if cfg.Session != nil && cfg.Session.Duration > 0 {
		duration = cfg.Session.Duration
	}

	return &sessionTokenIssuer{
		secret:   []byte(cfg.SecretKey.Session),
		duration: duration,
	}, nil
}

// Issue creates a signed token for the account. A random JTI keeps two tokens
// issued in the same second distinct, since session_token is unique.
func (s *sessionTokenIssuer) Issue(accountUUID string, issuedAt, expiresAt time.Time) (string, error) {
	claims := service.SessionClaims{
		AccountUUID: accountUUID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   accountUUID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Parse checks the signature and returns the claims without enforcing expiry.
func (s *sessionTokenIssuer) Parse(tokenString string) (*service.SessionClaims, error) {
	claims := &service.SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithoutClaimsValidation(), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse session token")
	}

	if claims.AccountUUID == "" {
		return nil, errors.New("session token has no account")
	}

	return claims, nil
}

// Duration returns the configured session lifetime.
func (s *sessionTokenIssuer) Duration() time.Duration {
	return s.duration
}
