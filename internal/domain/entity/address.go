// Package entity contains the core business objects of the project.
package entity

import "time"

// Address is a postal location. Each administrative level carries both a
// display name and its registry code.
type Address struct {
	ID                  int64     `json:"id"`
	Country             string    `json:"country"`
	CountryCode         string    `json:"country_code"`
	Province            string    `json:"province"`
	ProvinceCode        string    `json:"province_code"`
	City                string    `json:"city"`
	CityCode            string    `json:"city_code"`
	Barangay            string    `json:"barangay"`
	BarangayCode        string    `json:"barangay_code"`
	HouseBuildingNumber string    `json:"house_building_number"` // Street-level detail.
	CreatedDate         time.Time `json:"created_date"`
	LastModifiedDate    time.Time `json:"last_modified_date"`
}
