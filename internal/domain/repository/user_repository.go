package repository

import (
	"context"
	"errors"

	"opencircle/internal/domain/entity"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository persists user profiles.
type UserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	FindUserByID(ctx context.Context, id int64) (*entity.User, error)
	FindUserByAccountID(ctx context.Context, accountID int64) (*entity.User, error)
	UpdateUser(ctx context.Context, user *entity.User) error
	DeleteUser(ctx context.Context, id int64) error
}
