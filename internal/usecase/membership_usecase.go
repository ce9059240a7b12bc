package usecase

import (
	"context"

	"opencircle/internal/domain/entity"
)

// MembershipUsecase handles users joining organizations.
type MembershipUsecase interface {
	// Request files a pending membership and tells the organization's owner.
	Request(ctx context.Context, orgID, userID int64) (*entity.Membership, error)

	// ChangeStatus moves a membership to status. Approval notifies the member.
	ChangeStatus(ctx context.Context, orgID, userID int64, status entity.MembershipStatus) (*entity.Membership, error)

	Leave(ctx context.Context, orgID, userID int64) error
	ListApproved(ctx context.Context, userID int64) ([]*entity.Membership, error)
	Pending(ctx context.Context, userID int64) ([]*entity.Membership, error)
}
