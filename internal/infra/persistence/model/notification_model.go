package model

import "time"

// NotificationModel is the GORM-specific struct for the 'notification' table.
// RelatedEntityID and RelatedEntityType form an unenforced polymorphic pointer.
type NotificationModel struct {
	ID                int64         `gorm:"primaryKey;autoIncrement"`
	RecipientID       int64         `gorm:"not null;index:notification_recipient_idx,priority:1"`
	Recipient         *AccountModel `gorm:"foreignKey:RecipientID;constraint:OnDelete:CASCADE"`
	Type              string        `gorm:"type:varchar(50);not null;check:notification_type_check,type IN ('organization_membership_accepted', 'rsvp_accepted', 'new_post', 'event_update', 'new_membership_request', 'new_rsvp_request')"`
	Title             string        `gorm:"type:varchar(255);not null"`
	Message           string        `gorm:"type:text;not null"`
	IsRead            bool          `gorm:"not null;default:false;index:notification_recipient_idx,priority:2"`
	RelatedEntityID   *int64
	RelatedEntityType *string   `gorm:"type:varchar(20);check:notification_related_entity_type_check,related_entity_type IN ('organization', 'event', 'post', 'rsvp', 'user')"`
	CreatedDate       time.Time `gorm:"not null;autoCreateTime;<-:create"`
	ReadDate          *time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notification"
}
