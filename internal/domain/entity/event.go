package entity

import "time"

// Event belongs to an organization.
type Event struct {
	ID               int64     `json:"id"`
	OrganizationID   int64     `json:"organization_id"`
	Title            string    `json:"title"`
	EventDate        time.Time `json:"event_date"`
	AddressID        *int64    `json:"address_id,omitempty"`
	Description      *string   `json:"description,omitempty"`
	Image            *int64    `json:"image,omitempty"`
	IsAutoAccept     bool      `json:"is_autoaccept"` // RSVPs are joined immediately when set.
	CreatedDate      time.Time `json:"created_date"`
	LastModifiedDate time.Time `json:"last_modified_date"`
}
