// Package model holds the GORM structs mirroring the relational schema.
package model

import "time"

// AddressModel is the GORM-specific struct for the 'address' table.
type AddressModel struct {
	ID                  int64     `gorm:"primaryKey;autoIncrement"`
	Country             string    `gorm:"type:varchar(100);not null"`
	CountryCode         string    `gorm:"type:varchar(20);not null"`
	Province            string    `gorm:"type:varchar(100);not null"`
	ProvinceCode        string    `gorm:"type:varchar(20);not null"`
	City                string    `gorm:"type:varchar(100);not null"`
	CityCode            string    `gorm:"type:varchar(20);not null"`
	Barangay            string    `gorm:"type:varchar(100);not null"`
	BarangayCode        string    `gorm:"type:varchar(20);not null"`
	HouseBuildingNumber string    `gorm:"type:varchar(255);not null"`
	CreatedDate         time.Time `gorm:"not null;autoCreateTime;<-:create"`
	LastModifiedDate    time.Time `gorm:"not null;autoUpdateTime"`
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "address"
}
