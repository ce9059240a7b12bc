package impl

import (
	"context"
	"log/slog"
	"strings"

	"opencircle/internal/domain/entity"
	"opencircle/internal/domain/repository"
	"opencircle/internal/domain/service"
	logs "opencircle/internal/infra/log"
	"opencircle/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager: params.TxManager,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// log returns an operation-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return logs.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser creates a user-role account together with its profile.
func (srv *accountService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	output := &usecase.RegisterOutput{}
	err := srv.register(ctx, entity.RoleUser, input.Email, input.Username, input.Password, func(factory repository.RepositoryFactory, account *entity.Account) error {
		user := &entity.User{
			AccountID: account.ID,
			FirstName: strings.TrimSpace(input.FirstName),
			LastName:  strings.TrimSpace(input.LastName),
			Bio:       input.Bio,
		}
		if err := factory.NewUserRepository().CreateUser(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user profile")
		}

		output.Account = account
		output.User = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// RegisterOrganization creates an organization-role account together with its organization.
func (srv *accountService) RegisterOrganization(ctx context.Context, input *usecase.RegisterOrganizationInput) (*usecase.RegisterOutput, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	output := &usecase.RegisterOutput{}
	err := srv.register(ctx, entity.RoleOrganization, input.Email, input.Username, input.Password, func(factory repository.RepositoryFactory, account *entity.Account) error {
		org := &entity.Organization{
			AccountID:   account.ID,
			Name:        strings.TrimSpace(input.Name),
			Logo:        input.Logo,
			Category:    strings.TrimSpace(input.Category),
			Description: input.Description,
		}
		if err := factory.NewOrganizationRepository().CreateOrganization(ctx, org); err != nil {
			return errors.Wrap(err, "failed to create organization")
		}

		output.Account = account
		output.Organization = org

		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// register inserts the account row and hands it to attach, all in one transaction.
func (srv *accountService) register(
	ctx context.Context,
	roleName, email string,
	username *string,
	password string,
	attach func(repository.RepositoryFactory, *entity.Account) error,
) error {
	email = strings.ToLower(strings.TrimSpace(email))
	srv.log(ctx).Info("Starting registration", slog.String("role", roleName), slog.String("email", email))

	hashedPassword, err := srv.hasher.Hash(password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.String("role", roleName), slog.Any("error", err))

		return errors.Wrap(err, "failed to hash password during registration")
	}

	var accountID int64
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		role, err := repoFactory.NewRoleRepository().FindRoleByName(ctx, roleName)
		if err != nil {
			return errors.Wrapf(err, "failed to find role %s", roleName)
		}

		account := &entity.Account{
			UUID:     entity.NewAccountUUID(),
			Email:    email,
			Username: username,
			Password: hashedPassword,
			RoleID:   role.ID,
		}
		if err := repoFactory.NewAccountRepository().CreateAccount(ctx, account); err != nil {
			return errors.Wrap(err, "failed to create account")
		}
		accountID = account.ID

		return attach(repoFactory, account)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("role", roleName), slog.String("email", email), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.String("role", roleName), slog.Int64("accountID", accountID))

	return nil
}

// GetAccount loads an account by its external UUID.
func (srv *accountService) GetAccount(ctx context.Context, accountUUID string) (*entity.Account, error) {
	var account *entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewAccountRepository().FindAccountByUUID(ctx, accountUUID)
		if err != nil {
			return errors.Wrap(err, "failed to find account")
		}
		account = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}

// DeleteAccount removes the account and, through the store, everything it owns.
func (srv *accountService) DeleteAccount(ctx context.Context, accountUUID string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		account, err := accountRepo.FindAccountByUUID(ctx, accountUUID)
		if err != nil {
			return errors.Wrap(err, "failed to find account")
		}

		if err := accountRepo.DeleteAccount(ctx, account.ID); err != nil {
			return errors.Wrap(err, "failed to delete account")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete account", slog.String("accountUUID", accountUUID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Account deleted", slog.String("accountUUID", accountUUID))

	return nil
}
