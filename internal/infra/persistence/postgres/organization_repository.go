package postgres

import (
	"context"

	"opencircle/internal/domain/entity"
	"opencircle/internal/domain/repository"
	"opencircle/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type organizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository is the constructor for organizationRepository.
func NewOrganizationRepository(db *gorm.DB) repository.OrganizationRepository {
	return &organizationRepository{db: db}
}

func (repo *organizationRepository) CreateOrganization(ctx context.Context, org *entity.Organization) error {
	orgM := fromOrganizationDomain(org)

	if err := repo.db.WithContext(ctx).Create(orgM).Error; err != nil {
		return translateWriteError(err, "failed to create organization")
	}

	org.ID = orgM.ID
	org.CreatedDate = orgM.CreatedDate
	org.LastModifiedDate = orgM.LastModifiedDate

	return nil
}

func (repo *organizationRepository) FindOrganizationByID(ctx context.Context, id int64) (*entity.Organization, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindOrganizationByAccountID returns the organization owned by the account.
func (repo *organizationRepository) FindOrganizationByAccountID(ctx context.Context, accountID int64) (*entity.Organization, error) {
	return repo.findOne(ctx, "account_id = ?", accountID)
}

func (repo *organizationRepository) findOne(ctx context.Context, query string, arg any) (*entity.Organization, error) {
	var orgM model.OrganizationModel

	if err := repo.db.WithContext(ctx).Where(query, arg).Order("id ASC").First(&orgM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrganizationNotFound
		}

		return nil, errors.Wrap(err, "failed to find organization")
	}

	return toOrganizationDomain(&orgM), nil
}

func (repo *organizationRepository) UpdateOrganization(ctx context.Context, org *entity.Organization) error {
	orgM := fromOrganizationDomain(org)

	result := updateRow(ctx, repo.db, orgM)
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update organization")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrganizationNotFound
	}

	org.LastModifiedDate = orgM.LastModifiedDate

	return nil
}

func (repo *organizationRepository) DeleteOrganization(ctx context.Context, id int64) error {
	result := deleteByID(ctx, repo.db, &model.OrganizationModel{}, id)
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to delete organization")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrganizationNotFound
	}

	return nil
}

func toOrganizationDomain(data *model.OrganizationModel) *entity.Organization {
	if data == nil {
		return nil
	}

	return &entity.Organization{
		ID:               data.ID,
		AccountID:        data.AccountID,
		Name:             data.Name,
		Logo:             data.Logo,
		Category:         data.Category,
		Description:      data.Description,
		CreatedDate:      data.CreatedDate,
		LastModifiedDate: data.LastModifiedDate,
	}
}

func fromOrganizationDomain(data *entity.Organization) *model.OrganizationModel {
	if data == nil {
		return nil
	}

	return &model.OrganizationModel{
		ID:          data.ID,
		AccountID:   data.AccountID,
		Name:        data.Name,
		Logo:        data.Logo,
		Category:    data.Category,
		Description: data.Description,
	}
}
