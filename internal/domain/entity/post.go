package entity

import "time"

// Post is authored by an account.
type Post struct {
	ID               int64     `json:"id"`
	Author           int64     `json:"author"` // Account id.
	Image            *int64    `json:"image,omitempty"`
	Description      *string   `json:"description,omitempty"`
	CreatedDate      time.Time `json:"created_date"`
	LastModifiedDate time.Time `json:"last_modified_date"`
}
