package postgres

import (
	"context"

	"opencircle/internal/domain/entity"
	"opencircle/internal/domain/repository"
	"opencircle/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type resourceRepository struct {
	db *gorm.DB
}

// NewResourceRepository is the constructor for resourceRepository.
func NewResourceRepository(db *gorm.DB) repository.ResourceRepository {
	return &resourceRepository{db: db}
}

func (repo *resourceRepository) CreateResource(ctx context.Context, resource *entity.Resource) error {
	resourceM := fromResourceDomain(resource)

	if err := repo.db.WithContext(ctx).Create(resourceM).Error; err != nil {
		return translateWriteError(err, "failed to create resource")
	}

	resource.ID = resourceM.ID
	resource.CreatedDate = resourceM.CreatedDate
	resource.LastModifiedDate = resourceM.LastModifiedDate

	return nil
}

func (repo *resourceRepository) FindResourceByID(ctx context.Context, id int64) (*entity.Resource, error) {
	var resourceM model.ResourceModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&resourceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResourceNotFound
		}

		return nil, errors.Wrap(err, "failed to find resource by ID")
	}

	return toResourceDomain(&resourceM), nil
}

func (repo *resourceRepository) UpdateResource(ctx context.Context, resource *entity.Resource) error {
	resourceM := fromResourceDomain(resource)

	result := updateRow(ctx, repo.db, resourceM)
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update resource")
	}
	if result.RowsAffected == 0 {
		return repository.ErrResourceNotFound
	}

	resource.LastModifiedDate = resourceM.LastModifiedDate

	return nil
}

func (repo *resourceRepository) DeleteResource(ctx context.Context, id int64) error {
	result := deleteByID(ctx, repo.db, &model.ResourceModel{}, id)
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to delete resource")
	}
	if result.RowsAffected == 0 {
		return repository.ErrResourceNotFound
	}

	return nil
}

func toResourceDomain(data *model.ResourceModel) *entity.Resource {
	if data == nil {
		return nil
	}

	return &entity.Resource{
		ID:               data.ID,
		Directory:        data.Directory,
		Filename:         data.Filename,
		CreatedDate:      data.CreatedDate,
		LastModifiedDate: data.LastModifiedDate,
	}
}

func fromResourceDomain(data *entity.Resource) *model.ResourceModel {
	if data == nil {
		return nil
	}

	return &model.ResourceModel{
		ID:        data.ID,
		Directory: data.Directory,
		Filename:  data.Filename,
	}
}
