package repository

import (
	"context"
	"errors"

	"opencircle/internal/domain/entity"
)

var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the interface for account persistence.
type AccountRepository interface {
	// CreateAccount fails with a unique violation on a duplicate email, uuid or username.
	CreateAccount(ctx context.Context, account *entity.Account) error
	FindAccountByID(ctx context.Context, id int64) (*entity.Account, error)
	FindAccountByUUID(ctx context.Context, uuid string) (*entity.Account, error)
	FindAccountByEmail(ctx context.Context, email string) (*entity.Account, error)
	UpdateAccount(ctx context.Context, account *entity.Account) error
	// DeleteAccount cascades to everything the account owns.
	DeleteAccount(ctx context.Context, id int64) error
}
