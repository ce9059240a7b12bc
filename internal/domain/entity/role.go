package entity

import "time"

// Role names seeded at migration time.
const (
	RoleUser         = "user"
	RoleOrganization = "organization"
)

// Role is the class of an account.
type Role struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	CreatedDate time.Time `json:"created_date"`
}

// SeedRoleNames lists the role rows every store starts with, in id order.
func SeedRoleNames() []string {
	return []string{RoleUser, RoleOrganization}
}
