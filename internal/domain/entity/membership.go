package entity

import "time"

// MembershipStatus is the state of a user's membership in an organization.
type MembershipStatus string

const (
	MembershipPending  MembershipStatus = "pending"
	MembershipApproved MembershipStatus = "approved"
	MembershipRejected MembershipStatus = "rejected"
)

// Valid reports whether s is one of the known statuses.
func (s MembershipStatus) Valid() bool {
	switch s {
	case MembershipPending, MembershipApproved, MembershipRejected:
		return true
	}

	return false
}

// Membership joins a user profile to an organization. A (organization, user)
// pair appears at most once; leaving removes the row.
type Membership struct {
	ID               int64            `json:"id"`
	OrganizationID   int64            `json:"organization_id"`
	UserID           int64            `json:"user_id"`
	Status           MembershipStatus `json:"status"`
	CreatedDate      time.Time        `json:"created_date"`
	LastModifiedDate time.Time        `json:"last_modified_date"`
}
