package repository

import (
	"context"
	"errors"

	"opencircle/internal/domain/entity"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// CreateNotification persists a new notification for one recipient.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// BatchCreateNotifications persists notifications for many recipients at once.
	BatchCreateNotifications(ctx context.Context, notifications []*entity.Notification) error

	// FindNotificationByID retrieves a notification by its ID.
	FindNotificationByID(ctx context.Context, id int64) (*entity.Notification, error)

	// FindNotificationsByRecipient lists the recipient's notifications, newest first.
	FindNotificationsByRecipient(ctx context.Context, recipientID int64, unreadOnly bool, limit int) ([]*entity.Notification, error)

	// CountUnread returns how many unread notifications the recipient has.
	CountUnread(ctx context.Context, recipientID int64) (int64, error)

	// MarkNotificationRead sets is_read and read_date on one of the recipient's notifications.
	MarkNotificationRead(ctx context.Context, id, recipientID int64) error

	// MarkAllNotificationsRead marks every unread notification of the recipient and returns the count.
	MarkAllNotificationsRead(ctx context.Context, recipientID int64) (int64, error)

	// DeleteNotification removes one of the recipient's notifications.
	DeleteNotification(ctx context.Context, id, recipientID int64) error
}
