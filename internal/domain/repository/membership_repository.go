package repository

import (
	"context"
	"errors"

	"opencircle/internal/domain/entity"
)

var ErrMembershipNotFound = errors.New("membership not found")

// MembershipRepository persists organization memberships.
type MembershipRepository interface {
	// CreateMembership fails with a unique violation when the pair already exists.
	CreateMembership(ctx context.Context, membership *entity.Membership) error
	FindMembership(ctx context.Context, orgID, userID int64) (*entity.Membership, error)
	// FindMembershipsByUser filters by status unless status is empty.
	FindMembershipsByUser(ctx context.Context, userID int64, status entity.MembershipStatus) ([]*entity.Membership, error)
	FindMembershipsByOrganization(ctx context.Context, orgID int64, status entity.MembershipStatus) ([]*entity.Membership, error)
	// FindApprovedMemberAccountIDs resolves the account ids behind the organization's approved members.
	FindApprovedMemberAccountIDs(ctx context.Context, orgID int64) ([]int64, error)
	UpdateMembershipStatus(ctx context.Context, orgID, userID int64, status entity.MembershipStatus) (*entity.Membership, error)
	DeleteMembership(ctx context.Context, orgID, userID int64) error
}
