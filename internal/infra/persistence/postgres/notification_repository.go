package postgres

import (
	"context"

	"opencircle/internal/domain/entity"
	"opencircle/internal/domain/repository"
	"opencircle/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const notificationBatchSize = 100

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

// CreateNotification persists a new notification for one recipient.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		return translateWriteError(err, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedDate = notificationM.CreatedDate

	return nil
}

// BatchCreateNotifications persists notifications for many recipients at once.
func (repo *notificationRepository) BatchCreateNotifications(ctx context.Context, notifications []*entity.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	notificationModels := make([]*model.NotificationModel, 0, len(notifications))
	for _, notification := range notifications {
		notificationModels = append(notificationModels, fromNotificationDomain(notification))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(notificationModels, notificationBatchSize).Error; err != nil {
		return translateWriteError(err, "failed to create notifications")
	}

	for i, notificationM := range notificationModels {
		notifications[i].ID = notificationM.ID
		notifications[i].CreatedDate = notificationM.CreatedDate
	}

	return nil
}

// FindNotificationByID retrieves a notification by its ID.
func (repo *notificationRepository) FindNotificationByID(ctx context.Context, id int64) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotificationDomain(&notificationM), nil
}

// FindNotificationsByRecipient lists the recipient's notifications, newest first.
// A non-positive limit returns every match.
func (repo *notificationRepository) FindNotificationsByRecipient(ctx context.Context, recipientID int64, unreadOnly bool, limit int) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	query := repo.db.WithContext(ctx).Where("recipient_id = ?", recipientID)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Order("created_date DESC").Order("id DESC").Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by recipient")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// CountUnread returns how many unread notifications the recipient has.
func (repo *notificationRepository) CountUnread(ctx context.Context, recipientID int64) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// MarkNotificationRead sets is_read and read_date on one of the recipient's notifications.
// Marking an already read notification keeps its original read_date.
func (repo *notificationRepository) MarkNotificationRead(ctx context.Context, id, recipientID int64) error {
	var notificationM model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to find notification")
	}

	if notificationM.IsRead {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		Updates(map[string]any{"is_read": true, "read_date": repo.db.NowFunc()})

	if result.Error != nil {
		return translateWriteError(result.Error, "failed to mark notification read")
	}

	return nil
}

// MarkAllNotificationsRead marks every unread notification of the recipient and returns the count.
func (repo *notificationRepository) MarkAllNotificationsRead(ctx context.Context, recipientID int64) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Updates(map[string]any{"is_read": true, "read_date": repo.db.NowFunc()})

	if result.Error != nil {
		return 0, translateWriteError(result.Error, "failed to mark notifications read")
	}

	return result.RowsAffected, nil
}

// DeleteNotification removes one of the recipient's notifications.
func (repo *notificationRepository) DeleteNotification(ctx context.Context, id, recipientID int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		Delete(&model.NotificationModel{})

	if result.Error != nil {
		return translateWriteError(result.Error, "failed to delete notification")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	notification := &entity.Notification{
		ID:          data.ID,
		RecipientID: data.RecipientID,
		Type:        entity.NotificationType(data.Type),
		Title:       data.Title,
		Message:     data.Message,
		IsRead:      data.IsRead,
		CreatedDate: data.CreatedDate,
		ReadDate:    data.ReadDate,
	}

	if data.RelatedEntityID != nil && data.RelatedEntityType != nil {
		notification.Related = &entity.EntityRef{
			Type: entity.RelatedEntityType(*data.RelatedEntityType),
			ID:   *data.RelatedEntityID,
		}
	}

	return notification
}

func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	notificationM := &model.NotificationModel{
		ID:          data.ID,
		RecipientID: data.RecipientID,
		Type:        string(data.Type),
		Title:       data.Title,
		Message:     data.Message,
		IsRead:      data.IsRead,
	}

	if data.Related != nil {
		relatedID := data.Related.ID
		relatedType := string(data.Related.Type)
		notificationM.RelatedEntityID = &relatedID
		notificationM.RelatedEntityType = &relatedType
	}

	return notificationM
}
