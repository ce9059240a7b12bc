package impl

import (
	"context"
	"log/slog"

	"opencircle/internal/domain/entity"
	domainerrors "opencircle/internal/domain/errors"
	"opencircle/internal/domain/repository"
	logs "opencircle/internal/infra/log"
	"opencircle/internal/usecase"

	"github.com/pkg/errors"
)

// membershipService implements the MembershipUsecase interface.
type membershipService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewMembershipService is the constructor for membershipService.
func NewMembershipService(txManager repository.TransactionManager, logger *slog.Logger) usecase.MembershipUsecase {
	return &membershipService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *membershipService) log(ctx context.Context) *slog.Logger {
	return logs.GetLoggerOrDefault(ctx, srv.logger)
}

// Request files a pending membership and notifies the organization's owner account.
func (srv *membershipService) Request(ctx context.Context, orgID, userID int64) (*entity.Membership, error) {
	membership := &entity.Membership{
		OrganizationID: orgID,
		UserID:         userID,
		Status:         entity.MembershipPending,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		org, err := repoFactory.NewOrganizationRepository().FindOrganizationByID(ctx, orgID)
		if err != nil {
			return errors.Wrap(err, "failed to find organization")
		}

		user, err := repoFactory.NewUserRepository().FindUserByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		if err := repoFactory.NewMembershipRepository().CreateMembership(ctx, membership); err != nil {
			return errors.Wrap(err, "failed to create membership")
		}

		notice := membershipRequestNotice(org.AccountID, user)
		if err := repoFactory.NewNotificationRepository().CreateNotification(ctx, notice); err != nil {
			return errors.Wrap(err, "failed to notify organization of membership request")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to request membership", slog.Int64("orgID", orgID), slog.Int64("userID", userID), slog.Any("error", err))

		return nil, err
	}

	return membership, nil
}

// ChangeStatus updates a membership. Moving it into approved notifies the
// member; the update and the notification commit or roll back together.
func (srv *membershipService) ChangeStatus(ctx context.Context, orgID, userID int64, status entity.MembershipStatus) (*entity.Membership, error) {
	if !status.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown membership status " + string(status))
	}

	var updated *entity.Membership

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		membershipRepo := repoFactory.NewMembershipRepository()

		current, err := membershipRepo.FindMembership(ctx, orgID, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find membership")
		}

		updated, err = membershipRepo.UpdateMembershipStatus(ctx, orgID, userID, status)
		if err != nil {
			return errors.Wrap(err, "failed to update membership status")
		}

		if status != entity.MembershipApproved || current.Status == entity.MembershipApproved {
			return nil
		}

		org, err := repoFactory.NewOrganizationRepository().FindOrganizationByID(ctx, orgID)
		if err != nil {
			return errors.Wrap(err, "failed to find organization")
		}

		user, err := repoFactory.NewUserRepository().FindUserByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		if err := repoFactory.NewNotificationRepository().CreateNotification(ctx, membershipAcceptedNotice(user.AccountID, org)); err != nil {
			return errors.Wrap(err, "failed to notify member of approval")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to change membership status",
			slog.Int64("orgID", orgID), slog.Int64("userID", userID), slog.String("status", string(status)), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Membership status changed", slog.Int64("orgID", orgID), slog.Int64("userID", userID), slog.String("status", string(status)))

	return updated, nil
}

// Leave removes the membership row.
func (srv *membershipService) Leave(ctx context.Context, orgID, userID int64) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewMembershipRepository().DeleteMembership(ctx, orgID, userID); err != nil {
			return errors.Wrap(err, "failed to leave organization")
		}

		return nil
	})
}

// ListApproved returns the user's approved memberships.
func (srv *membershipService) ListApproved(ctx context.Context, userID int64) ([]*entity.Membership, error) {
	return srv.listByUser(ctx, userID, entity.MembershipApproved)
}

// Pending returns the user's memberships still awaiting a decision.
func (srv *membershipService) Pending(ctx context.Context, userID int64) ([]*entity.Membership, error) {
	return srv.listByUser(ctx, userID, entity.MembershipPending)
}

func (srv *membershipService) listByUser(ctx context.Context, userID int64, status entity.MembershipStatus) ([]*entity.Membership, error) {
	var memberships []*entity.Membership

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewMembershipRepository().FindMembershipsByUser(ctx, userID, status)
		if err != nil {
			return errors.Wrap(err, "failed to list memberships")
		}
		memberships = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return memberships, nil
}
