package postgres

import (
	"context"

	"opencircle/internal/domain/entity"
	"opencircle/internal/domain/repository"
	"opencircle/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// shareRepository implements the repository.ShareRepository interface.
type shareRepository struct {
	db *gorm.DB
}

// NewShareRepository is the constructor for shareRepository.
func NewShareRepository(db *gorm.DB) repository.ShareRepository {
	return &shareRepository{db: db}
}

// CreateShare persists a share. The content pointer is stored as given.
func (repo *shareRepository) CreateShare(ctx context.Context, share *entity.Share) error {
	shareM := fromShareDomain(share)

	if err := repo.db.WithContext(ctx).Create(shareM).Error; err != nil {
		return translateWriteError(err, "failed to create share")
	}

	share.ID = shareM.ID
	share.CreatedDate = shareM.CreatedDate

	return nil
}

// FindShareByID retrieves a share by its ID.
func (repo *shareRepository) FindShareByID(ctx context.Context, id int64) (*entity.Share, error) {
	var shareM model.ShareModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&shareM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShareNotFound
		}

		return nil, errors.Wrap(err, "failed to find share by ID")
	}

	return toShareDomain(&shareM), nil
}

// ExistsShare reports whether the account already shared the content.
func (repo *shareRepository) ExistsShare(ctx context.Context, accountUUID string, content entity.ContentRef) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ShareModel{}).
		Where("account_uuid = ? AND content_id = ? AND content_type = ?", accountUUID, content.ID, int(content.Type)).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check share")
	}

	return count > 0, nil
}

// FindSharesByAccountUUID lists an account's shares, newest first.
func (repo *shareRepository) FindSharesByAccountUUID(ctx context.Context, accountUUID string) ([]*entity.Share, error) {
	var shareModels []*model.ShareModel

	if err := repo.db.WithContext(ctx).
		Where("account_uuid = ?", accountUUID).
		Order("created_date DESC").
		Order("id DESC").
		Find(&shareModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find shares by account")
	}

	shares := make([]*entity.Share, 0, len(shareModels))
	for _, shareM := range shareModels {
		shares = append(shares, toShareDomain(shareM))
	}

	return shares, nil
}

// CountSharesOf counts the shares pointing at the content.
func (repo *shareRepository) CountSharesOf(ctx context.Context, content entity.ContentRef) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ShareModel{}).
		Where("content_id = ? AND content_type = ?", content.ID, int(content.Type)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count shares")
	}

	return count, nil
}

// DeleteShare removes a share owned by the account.
func (repo *shareRepository) DeleteShare(ctx context.Context, id int64, accountUUID string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND account_uuid = ?", id, accountUUID).
		Delete(&model.ShareModel{})

	if result.Error != nil {
		return translateWriteError(result.Error, "failed to delete share")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShareNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toShareDomain(data *model.ShareModel) *entity.Share {
	if data == nil {
		return nil
	}

	return &entity.Share{
		ID:          data.ID,
		AccountUUID: data.AccountUUID,
		Content:     entity.ContentRef{Type: entity.ContentType(data.ContentType), ID: data.ContentID},
		Comment:     data.Comment,
		CreatedDate: data.CreatedDate,
	}
}

func fromShareDomain(data *entity.Share) *model.ShareModel {
	if data == nil {
		return nil
	}

	return &model.ShareModel{
		ID:          data.ID,
		AccountUUID: data.AccountUUID,
		ContentID:   data.Content.ID,
		ContentType: int(data.Content.Type),
		Comment:     data.Comment,
	}
}
