package repository

import (
	"context"
	"errors"

	"opencircle/internal/domain/entity"
)

var ErrRoleNotFound = errors.New("role not found")

// RoleRepository reads and seeds the role reference table.
type RoleRepository interface {
	// EnsureRole inserts the role if no row with that name exists and returns the stored row.
	EnsureRole(ctx context.Context, name string) (*entity.Role, error)
	FindRoleByName(ctx context.Context, name string) (*entity.Role, error)
	FindRoleByID(ctx context.Context, id int64) (*entity.Role, error)
	ListRoles(ctx context.Context) ([]*entity.Role, error)
}
