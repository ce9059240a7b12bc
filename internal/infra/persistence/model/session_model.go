package model

import "time"

// SessionModel is the GORM-specific struct for the 'session' table.
type SessionModel struct {
	ID           int64         `gorm:"primaryKey;autoIncrement"`
	AccountUUID  string        `gorm:"column:account_uuid;type:char(32);not null;index"`
	Account      *AccountModel `gorm:"foreignKey:AccountUUID;references:UUID;constraint:OnDelete:CASCADE"`
	SessionToken string        `gorm:"type:varchar(512);not null;uniqueIndex:session_token_key"`
	CreatedAt    time.Time     `gorm:"not null;autoCreateTime;<-:create"`
	ExpiresAt    time.Time     `gorm:"not null;index"`
	IPAddress    *string       `gorm:"column:ip_address;type:varchar(45)"`
	UserAgent    *string       `gorm:"type:text"`
	LastActivity time.Time     `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "session"
}
