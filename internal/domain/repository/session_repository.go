package repository

import (
	"context"
	"errors"
	"time"

	"opencircle/internal/domain/entity"
)

var ErrSessionNotFound = errors.New("session not found")

type SessionRepository interface {
	CreateSession(ctx context.Context, session *entity.Session) error
	FindSessionByToken(ctx context.Context, token string) (*entity.Session, error)
	FindSessionsByAccountUUID(ctx context.Context, accountUUID string) ([]*entity.Session, error)
	// TouchSession stamps last_activity with the store clock.
	TouchSession(ctx context.Context, token string) (time.Time, error)
	DeleteSessionByToken(ctx context.Context, token string) error
	// DeleteExpiredSessions removes every session whose expiry is not after the store clock.
	DeleteExpiredSessions(ctx context.Context) (int64, error)
}
