package repository

import (
	"context"
	"errors"

	"opencircle/internal/domain/entity"
)

var ErrOrganizationNotFound = errors.New("organization not found")

type OrganizationRepository interface {
	CreateOrganization(ctx context.Context, org *entity.Organization) error
	FindOrganizationByID(ctx context.Context, id int64) (*entity.Organization, error)
	FindOrganizationByAccountID(ctx context.Context, accountID int64) (*entity.Organization, error)
	UpdateOrganization(ctx context.Context, org *entity.Organization) error
	DeleteOrganization(ctx context.Context, id int64) error
}
