package postgres

import (
	"context"

	"opencircle/internal/domain/entity"
	"opencircle/internal/domain/repository"
	"opencircle/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements the repository.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// CreateAccount persists a new account.
func (repo *accountRepository) CreateAccount(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		return translateWriteError(err, "failed to create account")
	}

	account.ID = accountM.ID
	account.CreatedDate = accountM.CreatedDate
	account.LastModifiedDate = accountM.LastModifiedDate

	return nil
}

// FindAccountByID retrieves an account by its numeric ID.
func (repo *accountRepository) FindAccountByID(ctx context.Context, id int64) (*entity.Account, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindAccountByUUID retrieves an account by its external UUID.
func (repo *accountRepository) FindAccountByUUID(ctx context.Context, uuid string) (*entity.Account, error) {
	return repo.findOne(ctx, "uuid = ?", uuid)
}

// FindAccountByEmail retrieves an account by email.
func (repo *accountRepository) FindAccountByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return repo.findOne(ctx, "email = ?", email)
}

func (repo *accountRepository) findOne(ctx context.Context, query string, arg any) (*entity.Account, error) {
	var accountM model.AccountModel

	if err := repo.db.WithContext(ctx).Where(query, arg).First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return toAccountDomain(&accountM), nil
}

// UpdateAccount overwrites the account columns.
func (repo *accountRepository) UpdateAccount(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	result := updateRow(ctx, repo.db, accountM)
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	account.LastModifiedDate = accountM.LastModifiedDate

	return nil
}

// DeleteAccount removes the account; dependents follow through ON DELETE CASCADE.
func (repo *accountRepository) DeleteAccount(ctx context.Context, id int64) error {
	result := deleteByID(ctx, repo.db, &model.AccountModel{}, id)
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to delete account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:                data.ID,
		UUID:              data.UUID,
		Email:             data.Email,
		Username:          data.Username,
		Password:          data.Password,
		RoleID:            data.RoleID,
		TOTPSecret:        data.TOTPSecret,
		BackupCodes:       data.BackupCodes,
		Is2FAEnabled:      data.Is2FAEnabled,
		EmailOTPCode:      data.EmailOTPCode,
		EmailOTPExpiresAt: data.EmailOTPExpiresAt,
		IsEmailVerified:   data.IsEmailVerified,
		EmailOTPAttempts:  data.EmailOTPAttempts,
		CreatedDate:       data.CreatedDate,
		LastModifiedDate:  data.LastModifiedDate,
	}
}

func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:                data.ID,
		UUID:              data.UUID,
		Email:             data.Email,
		Username:          data.Username,
		Password:          data.Password,
		RoleID:            data.RoleID,
		TOTPSecret:        data.TOTPSecret,
		BackupCodes:       data.BackupCodes,
		Is2FAEnabled:      data.Is2FAEnabled,
		EmailOTPCode:      data.EmailOTPCode,
		EmailOTPExpiresAt: data.EmailOTPExpiresAt,
		IsEmailVerified:   data.IsEmailVerified,
		EmailOTPAttempts:  data.EmailOTPAttempts,
	}
}
