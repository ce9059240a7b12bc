package impl

import (
	"context"
	"log/slog"

	"opencircle/config"
	"opencircle/internal/domain/entity"
	"opencircle/internal/domain/repository"
	logs "opencircle/internal/infra/log"
	"opencircle/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	txManager    repository.TransactionManager
	defaultLimit int
	maxLimit     int
	logger       *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Config    *config.Config
	Logger    *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		txManager:    params.TxManager,
		defaultLimit: params.Config.Notification.DefaultLimit,
		maxLimit:     params.Config.Notification.MaxLimit,
		logger:       params.Logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return logs.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *notificationService) List(ctx context.Context, recipientID int64, unreadOnly bool, limit int) ([]*entity.Notification, error) {
	limit = srv.clampLimit(limit)

	var notifications []*entity.Notification

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewNotificationRepository().FindNotificationsByRecipient(ctx, recipientID, unreadOnly, limit)
		if err != nil {
			return errors.Wrap(err, "failed to list notifications")
		}
		notifications = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return notifications, nil
}

func (srv *notificationService) UnreadCount(ctx context.Context, recipientID int64) (int64, error) {
	var count int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		n, err := repoFactory.NewNotificationRepository().CountUnread(ctx, recipientID)
		if err != nil {
			return errors.Wrap(err, "failed to count unread notifications")
		}
		count = n

		return nil
	})

	return count, err
}

func (srv *notificationService) MarkRead(ctx context.Context, id, recipientID int64) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewNotificationRepository().MarkNotificationRead(ctx, id, recipientID); err != nil {
			return errors.Wrap(err, "failed to mark notification read")
		}

		return nil
	})
}

func (srv *notificationService) MarkAllRead(ctx context.Context, recipientID int64) (int64, error) {
	var marked int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		n, err := repoFactory.NewNotificationRepository().MarkAllNotificationsRead(ctx, recipientID)
		if err != nil {
			return errors.Wrap(err, "failed to mark notifications read")
		}
		marked = n

		return nil
	})
	if err != nil {
		return 0, err
	}

	srv.log(ctx).Debug("Notifications marked read", slog.Int64("recipientID", recipientID), slog.Int64("count", marked))

	return marked, nil
}

func (srv *notificationService) Delete(ctx context.Context, id, recipientID int64) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewNotificationRepository().DeleteNotification(ctx, id, recipientID); err != nil {
			return errors.Wrap(err, "failed to delete notification")
		}

		return nil
	})
}

func (srv *notificationService) clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return srv.defaultLimit
	case limit > srv.maxLimit:
		return srv.maxLimit
	default:
		return limit
	}
}
