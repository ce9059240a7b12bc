package repository

import (
	"context"
	"errors"

	"opencircle/internal/domain/entity"
)

var ErrResourceNotFound = errors.New("resource not found")

// ResourceRepository persists stored-file references.
type ResourceRepository interface {
	CreateResource(ctx context.Context, resource *entity.Resource) error
	FindResourceByID(ctx context.Context, id int64) (*entity.Resource, error)
	UpdateResource(ctx context.Context, resource *entity.Resource) error
	// DeleteResource removes organizations using it as a logo and clears it from users, posts and events.
	DeleteResource(ctx context.Context, id int64) error
}
