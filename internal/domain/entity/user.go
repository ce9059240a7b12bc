package entity

import "time"

// User is the personal profile attached to an account.
type User struct {
	ID               int64     `json:"id"`
	AccountID        int64     `json:"account_id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Bio              *string   `json:"bio,omitempty"`
	ProfilePicture   *int64    `json:"profile_picture,omitempty"`
	CreatedDate      time.Time `json:"created_date"`
	LastModifiedDate time.Time `json:"last_modified_date"`
}

// FullName joins first and last name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
