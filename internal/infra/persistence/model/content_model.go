package model

import "time"

// PostModel is the GORM-specific struct for the 'post' table.
type PostModel struct {
	ID               int64          `gorm:"primaryKey;autoIncrement"`
	Author           int64          `gorm:"not null;index"`
	AuthorAccount    *AccountModel  `gorm:"foreignKey:Author;constraint:OnDelete:CASCADE"`
	Image            *int64         `gorm:"index"`
	ImageResource    *ResourceModel `gorm:"foreignKey:Image;constraint:OnDelete:SET NULL"`
	Description      *string        `gorm:"type:text"`
	CreatedDate      time.Time      `gorm:"not null;autoCreateTime;<-:create"`
	LastModifiedDate time.Time      `gorm:"not null;autoUpdateTime"`
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "post"
}

// EventModel is the GORM-specific struct for the 'event' table.
// Deleting an address still used by an event is rejected, so Address carries no OnDelete action.
type EventModel struct {
	ID               int64              `gorm:"primaryKey;autoIncrement"`
	OrganizationID   int64              `gorm:"not null;index"`
	Organization     *OrganizationModel `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Title            string             `gorm:"type:varchar(255);not null;check:event_title_required,title <> ''"`
	EventDate        time.Time          `gorm:"not null"`
	AddressID        *int64             `gorm:"index"`
	Address          *AddressModel      `gorm:"foreignKey:AddressID"`
	Description      *string            `gorm:"type:text"`
	Image            *int64             `gorm:"index"`
	ImageResource    *ResourceModel     `gorm:"foreignKey:Image;constraint:OnDelete:SET NULL"`
	IsAutoAccept     *bool              `gorm:"column:is_autoaccept;not null;default:true"`
	CreatedDate      time.Time          `gorm:"not null;autoCreateTime;<-:create"`
	LastModifiedDate time.Time          `gorm:"not null;autoUpdateTime"`
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "event"
}

// CommentModel is the GORM-specific struct for the 'comment' table.
// Exactly one of EventID and PostID is expected to be set; the table does not enforce it.
type CommentModel struct {
	ID               int64         `gorm:"primaryKey;autoIncrement"`
	EventID          *int64        `gorm:"index"`
	Event            *EventModel   `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
	PostID           *int64        `gorm:"index"`
	Post             *PostModel    `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Author           int64         `gorm:"not null;index"`
	AuthorAccount    *AccountModel `gorm:"foreignKey:Author;constraint:OnDelete:CASCADE"`
	Message          string        `gorm:"type:text;not null;check:comment_message_required,message <> ''"`
	CreatedDate      time.Time     `gorm:"not null;autoCreateTime;<-:create"`
	LastModifiedDate time.Time     `gorm:"not null;autoUpdateTime"`
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "comment"
}

// ShareModel is the GORM-specific struct for the 'shares' table.
// (ContentID, ContentType) is a polymorphic pointer with no foreign key.
type ShareModel struct {
	ID          int64         `gorm:"primaryKey;autoIncrement"`
	AccountUUID string        `gorm:"column:account_uuid;type:char(32);not null;index"`
	Account     *AccountModel `gorm:"foreignKey:AccountUUID;references:UUID;constraint:OnDelete:CASCADE"`
	ContentID   int64         `gorm:"not null;index:shares_content_idx"`
	ContentType int           `gorm:"not null;index:shares_content_idx;check:shares_content_type_check,content_type IN (1, 2)"`
	Comment     *string       `gorm:"type:text"`
	CreatedDate time.Time     `gorm:"not null;autoCreateTime;<-:create"`
}

// TableName explicitly sets the table name for GORM.
func (ShareModel) TableName() string {
	return "shares"
}
