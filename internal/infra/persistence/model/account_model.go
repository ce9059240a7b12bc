package model

import "time"

// RoleModel is the GORM-specific struct for the 'role' reference table.
type RoleModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"type:varchar(50);not null;uniqueIndex:role_name_key"`
	CreatedDate time.Time `gorm:"not null;autoCreateTime;<-:create"`
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "role"
}

// AccountModel is the GORM-specific struct for the 'account' table.
type AccountModel struct {
	ID                int64      `gorm:"primaryKey;autoIncrement"`
	UUID              string     `gorm:"column:uuid;type:char(32);not null;uniqueIndex:account_uuid_key;check:account_uuid_required,uuid <> ''"`
	Email             string     `gorm:"type:varchar(255);not null;uniqueIndex:account_email_key;check:account_email_required,email <> ''"`
	Username          *string    `gorm:"type:varchar(50);uniqueIndex:account_username_key"`
	Password          string     `gorm:"type:varchar(255);not null;check:account_password_required,password <> ''"`
	RoleID            int64      `gorm:"not null;index"`
	Role              *RoleModel `gorm:"foreignKey:RoleID"`
	TOTPSecret        *string    `gorm:"column:totp_secret;type:varchar(64)"`
	BackupCodes       *string    `gorm:"type:text"`
	Is2FAEnabled      bool       `gorm:"column:is_2fa_enabled;not null;default:false"`
	EmailOTPCode      *string    `gorm:"column:email_otp_code;type:varchar(6)"`
	EmailOTPExpiresAt *time.Time `gorm:"column:email_otp_expires_at"`
	IsEmailVerified   bool       `gorm:"not null;default:false"`
	EmailOTPAttempts  int        `gorm:"column:email_otp_attempts;not null;default:0"`
	CreatedDate       time.Time  `gorm:"not null;autoCreateTime;<-:create"`
	LastModifiedDate  time.Time  `gorm:"not null;autoUpdateTime"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "account"
}
