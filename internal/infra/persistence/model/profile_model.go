package model

import "time"

// OrganizationModel is the GORM-specific struct for the 'organization' table.
type OrganizationModel struct {
	ID               int64          `gorm:"primaryKey;autoIncrement"`
	AccountID        int64          `gorm:"not null;index"`
	Account          *AccountModel  `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	Name             string         `gorm:"type:varchar(255);not null;check:organization_name_required,name <> ''"`
	Logo             *int64         `gorm:"index"`
	LogoResource     *ResourceModel `gorm:"foreignKey:Logo;constraint:OnDelete:CASCADE"`
	Category         string         `gorm:"type:varchar(100);not null;check:organization_category_required,category <> ''"`
	Description      *string        `gorm:"type:text"`
	CreatedDate      time.Time      `gorm:"not null;autoCreateTime;<-:create"`
	LastModifiedDate time.Time      `gorm:"not null;autoUpdateTime"`
}

// TableName explicitly sets the table name for GORM.
func (OrganizationModel) TableName() string {
	return "organization"
}

// UserModel is the GORM-specific struct for the 'user' table.
type UserModel struct {
	ID                     int64          `gorm:"primaryKey;autoIncrement"`
	AccountID              int64          `gorm:"not null;index"`
	Account                *AccountModel  `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	FirstName              string         `gorm:"type:varchar(100);not null;check:user_first_name_required,first_name <> ''"`
	LastName               string         `gorm:"type:varchar(100);not null;check:user_last_name_required,last_name <> ''"`
	Bio                    *string        `gorm:"type:text"`
	ProfilePicture         *int64         `gorm:"index"`
	ProfilePictureResource *ResourceModel `gorm:"foreignKey:ProfilePicture;constraint:OnDelete:SET NULL"`
	CreatedDate            time.Time      `gorm:"not null;autoCreateTime;<-:create"`
	LastModifiedDate       time.Time      `gorm:"not null;autoUpdateTime"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "user"
}
