package model

import "time"

// MembershipModel is the GORM-specific struct for the 'membership' table.
type MembershipModel struct {
	ID               int64              `gorm:"primaryKey;autoIncrement"`
	OrganizationID   int64              `gorm:"not null;uniqueIndex:membership_organization_user_key,priority:1"`
	Organization     *OrganizationModel `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	UserID           int64              `gorm:"not null;uniqueIndex:membership_organization_user_key,priority:2;index"`
	User             *UserModel         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Status           string             `gorm:"type:varchar(20);not null;default:pending;check:membership_status_check,status IN ('pending', 'approved', 'rejected')"`
	CreatedDate      time.Time          `gorm:"not null;autoCreateTime;<-:create"`
	LastModifiedDate time.Time          `gorm:"not null;autoUpdateTime"`
}

// TableName explicitly sets the table name for GORM.
func (MembershipModel) TableName() string {
	return "membership"
}

// RSVPModel is the GORM-specific struct for the 'rsvp' table.
type RSVPModel struct {
	ID               int64         `gorm:"primaryKey;autoIncrement"`
	EventID          int64         `gorm:"not null;uniqueIndex:rsvp_attendee_event_key,priority:2;index"`
	Event            *EventModel   `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
	Attendee         int64         `gorm:"not null;uniqueIndex:rsvp_attendee_event_key,priority:1"`
	AttendeeAccount  *AccountModel `gorm:"foreignKey:Attendee;constraint:OnDelete:CASCADE"`
	Status           string        `gorm:"type:varchar(20);not null;default:pending;check:rsvp_status_check,status IN ('joined', 'rejected', 'pending')"`
	CreatedDate      time.Time     `gorm:"not null;autoCreateTime;<-:create"`
	LastModifiedDate time.Time     `gorm:"not null;autoUpdateTime"`
}

// TableName explicitly sets the table name for GORM.
func (RSVPModel) TableName() string {
	return "rsvp"
}
