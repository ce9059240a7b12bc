package repository

import (
	"context"
	"errors"

	"opencircle/internal/domain/entity"
)

var ErrShareNotFound = errors.New("share not found")

// ShareRepository persists shares. The (content_id, content_type) pair is not checked by the store.
type ShareRepository interface {
	CreateShare(ctx context.Context, share *entity.Share) error
	FindShareByID(ctx context.Context, id int64) (*entity.Share, error)
	ExistsShare(ctx context.Context, accountUUID string, content entity.ContentRef) (bool, error)
	FindSharesByAccountUUID(ctx context.Context, accountUUID string) ([]*entity.Share, error)
	CountSharesOf(ctx context.Context, content entity.ContentRef) (int64, error)
	DeleteShare(ctx context.Context, id int64, accountUUID string) error
}
