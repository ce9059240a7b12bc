package entity

import "time"

// Organization is owned by exactly one account and disappears with it.
type Organization struct {
	ID               int64     `json:"id"`
	AccountID        int64     `json:"account_id"`
	Name             string    `json:"name"`
	Logo             *int64    `json:"logo,omitempty"` // Resource id; deleting the resource deletes the organization.
	Category         string    `json:"category"`
	Description      *string   `json:"description,omitempty"`
	CreatedDate      time.Time `json:"created_date"`
	LastModifiedDate time.Time `json:"last_modified_date"`
}
