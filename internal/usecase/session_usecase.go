package usecase

import (
	"context"

	"opencircle/internal/domain/entity"
)

// OpenSessionInput identifies who is logging in and from where.
type OpenSessionInput struct {
	AccountUUID string  `validate:"required,len=32,hexadecimal"`
	IPAddress   *string `validate:"omitempty,ip"`
	UserAgent   *string
}

// SessionUsecase manages login sessions.
type SessionUsecase interface {
	// Open mints a token for the account and stores the session.
	Open(ctx context.Context, input *OpenSessionInput) (*entity.Session, error)

	// Validate returns the live session for token and records activity.
	// An expired session is deleted and reported as expired.
	Validate(ctx context.Context, token string) (*entity.Session, error)

	Close(ctx context.Context, token string) error

	// SweepExpired deletes every expired session and returns how many were removed.
	SweepExpired(ctx context.Context) (int64, error)
}
