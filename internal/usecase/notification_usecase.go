package usecase

import (
	"context"

	"opencircle/internal/domain/entity"
)

// NotificationUsecase reads and acknowledges an account's notifications.
type NotificationUsecase interface {
	// List returns notifications newest first. A limit outside the allowed
	// range is clamped; zero means the configured default.
	List(ctx context.Context, recipientID int64, unreadOnly bool, limit int) ([]*entity.Notification, error)
	UnreadCount(ctx context.Context, recipientID int64) (int64, error)
	MarkRead(ctx context.Context, id, recipientID int64) error
	MarkAllRead(ctx context.Context, recipientID int64) (int64, error)
	Delete(ctx context.Context, id, recipientID int64) error
}
