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

// rsvpService implements the RSVPUsecase interface.
type rsvpService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewRSVPService is the constructor for rsvpService.
func NewRSVPService(txManager repository.TransactionManager, logger *slog.Logger) usecase.RSVPUsecase {
	return &rsvpService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *rsvpService) log(ctx context.Context) *slog.Logger {
	return logs.GetLoggerOrDefault(ctx, srv.logger)
}

// Create RSVPs the account to the event.
func (srv *rsvpService) Create(ctx context.Context, eventID int64, accountUUID string) (*entity.RSVP, error) {
	var rsvp *entity.RSVP

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		account, err := repoFactory.NewAccountRepository().FindAccountByUUID(ctx, accountUUID)
		if err != nil {
			return errors.Wrap(err, "failed to find attendee account")
		}

		event, err := repoFactory.NewEventRepository().FindEventByID(ctx, eventID)
		if err != nil {
			return errors.Wrap(err, "failed to find event")
		}

		rsvp = &entity.RSVP{
			EventID:  event.ID,
			Attendee: account.ID,
			Status:   entity.InitialRSVPStatus(event),
		}
		if err := repoFactory.NewRSVPRepository().CreateRSVP(ctx, rsvp); err != nil {
			return errors.Wrap(err, "failed to create rsvp")
		}

		if rsvp.Status != entity.RSVPPending {
			return nil
		}

		org, err := repoFactory.NewOrganizationRepository().FindOrganizationByID(ctx, event.OrganizationID)
		if err != nil {
			return errors.Wrap(err, "failed to find event organization")
		}

		name, err := displayName(ctx, repoFactory, account)
		if err != nil {
			return err
		}

		if err := repoFactory.NewNotificationRepository().CreateNotification(ctx, rsvpRequestNotice(org.AccountID, name, event)); err != nil {
			return errors.Wrap(err, "failed to notify organization of rsvp request")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create rsvp", slog.Int64("eventID", eventID), slog.String("accountUUID", accountUUID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("RSVP created", slog.Int64("rsvpID", rsvp.ID), slog.String("status", string(rsvp.Status)))

	return rsvp, nil
}

// ChangeStatus updates the RSVP; moving it into joined notifies the attendee.
func (srv *rsvpService) ChangeStatus(ctx context.Context, rsvpID int64, status entity.RSVPStatus) (*entity.RSVP, error) {
	if !status.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown rsvp status " + string(status))
	}

	var updated *entity.RSVP

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		rsvpRepo := repoFactory.NewRSVPRepository()

		current, err := rsvpRepo.FindRSVPByID(ctx, rsvpID)
		if err != nil {
			return errors.Wrap(err, "failed to find rsvp")
		}

		updated, err = rsvpRepo.UpdateRSVPStatus(ctx, rsvpID, status)
		if err != nil {
			return errors.Wrap(err, "failed to update rsvp status")
		}

		if status != entity.RSVPJoined || current.Status == entity.RSVPJoined {
			return nil
		}

		event, err := repoFactory.NewEventRepository().FindEventByID(ctx, updated.EventID)
		if err != nil {
			return errors.Wrap(err, "failed to find event")
		}

		if err := repoFactory.NewNotificationRepository().CreateNotification(ctx, rsvpAcceptedNotice(updated.Attendee, event)); err != nil {
			return errors.Wrap(err, "failed to notify attendee")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to change rsvp status", slog.Int64("rsvpID", rsvpID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// ListForEvent returns every RSVP of the event.
func (srv *rsvpService) ListForEvent(ctx context.Context, eventID int64) ([]*entity.RSVP, error) {
	var rsvps []*entity.RSVP

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewRSVPRepository().FindRSVPsByEvent(ctx, eventID, "")
		if err != nil {
			return errors.Wrap(err, "failed to list rsvps")
		}
		rsvps = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return rsvps, nil
}

// displayName is the person's full name, the organization's name, or the
// email when the account has no profile.
func displayName(ctx context.Context, repoFactory repository.RepositoryFactory, account *entity.Account) (string, error) {
	user, err := repoFactory.NewUserRepository().FindUserByAccountID(ctx, account.ID)
	if err == nil {
		return user.FullName(), nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return "", errors.Wrap(err, "failed to find user profile")
	}

	org, err := repoFactory.NewOrganizationRepository().FindOrganizationByAccountID(ctx, account.ID)
	if err == nil {
		return org.Name, nil
	}
	if !errors.Is(err, repository.ErrOrganizationNotFound) {
		return "", errors.Wrap(err, "failed to find organization profile")
	}

	return account.Email, nil
}
