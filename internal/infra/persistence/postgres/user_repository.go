package postgres

import (
	"context"

	"opencircle/internal/domain/entity"
	"opencircle/internal/domain/repository"
	"opencircle/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// CreateUser persists a new user profile.
func (repo *userRepository) CreateUser(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		return translateWriteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedDate = userM.CreatedDate
	user.LastModifiedDate = userM.LastModifiedDate

	return nil
}

// FindUserByID retrieves a user profile by its ID.
func (repo *userRepository) FindUserByID(ctx context.Context, id int64) (*entity.User, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindUserByAccountID retrieves the profile attached to an account.
func (repo *userRepository) FindUserByAccountID(ctx context.Context, accountID int64) (*entity.User, error) {
	return repo.findOne(ctx, "account_id = ?", accountID)
}

func (repo *userRepository) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).Where(query, arg).Order("id ASC").First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

// UpdateUser overwrites the profile columns.
func (repo *userRepository) UpdateUser(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := updateRow(ctx, repo.db, userM)
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	user.LastModifiedDate = userM.LastModifiedDate

	return nil
}

// DeleteUser removes a profile; its memberships go with it.
func (repo *userRepository) DeleteUser(ctx context.Context, id int64) error {
	result := deleteByID(ctx, repo.db, &model.UserModel{}, id)
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:               data.ID,
		AccountID:        data.AccountID,
		FirstName:        data.FirstName,
		LastName:         data.LastName,
		Bio:              data.Bio,
		ProfilePicture:   data.ProfilePicture,
		CreatedDate:      data.CreatedDate,
		LastModifiedDate: data.LastModifiedDate,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:             data.ID,
		AccountID:      data.AccountID,
		FirstName:      data.FirstName,
		LastName:       data.LastName,
		Bio:            data.Bio,
		ProfilePicture: data.ProfilePicture,
	}
}
