package model

import "time"

// ResourceModel is the GORM-specific struct for the 'resource' table.
type ResourceModel struct {
	ID               int64     `gorm:"primaryKey;autoIncrement"`
	Directory        string    `gorm:"type:varchar(255);not null"`
	Filename         string    `gorm:"type:varchar(255);not null"`
	CreatedDate      time.Time `gorm:"not null;autoCreateTime;<-:create"`
	LastModifiedDate time.Time `gorm:"not null;autoUpdateTime"`
}

// TableName explicitly sets the table name for GORM.
func (ResourceModel) TableName() string {
	return "resource"
}
