package postgres

import (
	"context"

	"opencircle/internal/domain/entity"
	"opencircle/internal/domain/repository"
	"opencircle/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// membershipRepository implements the repository.MembershipRepository interface.
type membershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository is the constructor for membershipRepository.
func NewMembershipRepository(db *gorm.DB) repository.MembershipRepository {
	return &membershipRepository{db: db}
}

// CreateMembership persists a membership request. An empty status takes the column default.
func (repo *membershipRepository) CreateMembership(ctx context.Context, membership *entity.Membership) error {
	membershipM := fromMembershipDomain(membership)

	if err := repo.db.WithContext(ctx).Create(membershipM).Error; err != nil {
		return translateWriteError(err, "failed to create membership")
	}

	membership.ID = membershipM.ID
	membership.Status = entity.MembershipStatus(membershipM.Status)
	membership.CreatedDate = membershipM.CreatedDate
	membership.LastModifiedDate = membershipM.LastModifiedDate

	return nil
}

// FindMembership retrieves the membership of a user in an organization.
func (repo *membershipRepository) FindMembership(ctx context.Context, orgID, userID int64) (*entity.Membership, error) {
	var membershipM model.MembershipModel

	if err := repo.db.WithContext(ctx).
		Where("organization_id = ? AND user_id = ?", orgID, userID).
		First(&membershipM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMembershipNotFound
		}

		return nil, errors.Wrap(err, "failed to find membership")
	}

	return toMembershipDomain(&membershipM), nil
}

// FindMembershipsByUser lists a user's memberships, optionally filtered by status.
func (repo *membershipRepository) FindMembershipsByUser(ctx context.Context, userID int64, status entity.MembershipStatus) ([]*entity.Membership, error) {
	return repo.findMany(ctx, "user_id = ?", userID, status)
}

// FindMembershipsByOrganization lists an organization's memberships, optionally filtered by status.
func (repo *membershipRepository) FindMembershipsByOrganization(ctx context.Context, orgID int64, status entity.MembershipStatus) ([]*entity.Membership, error) {
	return repo.findMany(ctx, "organization_id = ?", orgID, status)
}

func (repo *membershipRepository) findMany(ctx context.Context, query string, arg any, status entity.MembershipStatus) ([]*entity.Membership, error) {
	var membershipModels []*model.MembershipModel

	tx := repo.db.WithContext(ctx).Where(query, arg)
	if status != "" {
		tx = tx.Where("status = ?", string(status))
	}

	if err := tx.Order("id ASC").Find(&membershipModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find memberships")
	}

	memberships := make([]*entity.Membership, 0, len(membershipModels))
	for _, membershipM := range membershipModels {
		memberships = append(memberships, toMembershipDomain(membershipM))
	}

	return memberships, nil
}

// FindApprovedMemberAccountIDs returns the account ids of the organization's approved members.
func (repo *membershipRepository) FindApprovedMemberAccountIDs(ctx context.Context, orgID int64) ([]int64, error) {
	var accountIDs []int64

	if err := repo.db.WithContext(ctx).Raw(
		`SELECT u.account_id FROM membership m JOIN "user" u ON u.id = m.user_id
		WHERE m.organization_id = ? AND m.status = ? ORDER BY u.account_id`,
		orgID, string(entity.MembershipApproved),
	).Scan(&accountIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find approved member accounts")
	}

	return accountIDs, nil
}

// UpdateMembershipStatus changes the status and returns the updated row.
func (repo *membershipRepository) UpdateMembershipStatus(ctx context.Context, orgID, userID int64, status entity.MembershipStatus) (*entity.Membership, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.MembershipModel{}).
		Where("organization_id = ? AND user_id = ?", orgID, userID).
		Updates(map[string]any{"status": string(status)})

	if result.Error != nil {
		return nil, translateWriteError(result.Error, "failed to update membership status")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrMembershipNotFound
	}

	return repo.FindMembership(ctx, orgID, userID)
}

// DeleteMembership removes the membership; leaving an organization is a delete.
func (repo *membershipRepository) DeleteMembership(ctx context.Context, orgID, userID int64) error {
	result := repo.db.WithContext(ctx).
		Where("organization_id = ? AND user_id = ?", orgID, userID).
		Delete(&model.MembershipModel{})

	if result.Error != nil {
		return translateWriteError(result.Error, "failed to delete membership")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMembershipNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toMembershipDomain(data *model.MembershipModel) *entity.Membership {
	if data == nil {
		return nil
	}

	return &entity.Membership{
		ID:               data.ID,
		OrganizationID:   data.OrganizationID,
		UserID:           data.UserID,
		Status:           entity.MembershipStatus(data.Status),
		CreatedDate:      data.CreatedDate,
		LastModifiedDate: data.LastModifiedDate,
	}
}

func fromMembershipDomain(data *entity.Membership) *model.MembershipModel {
	if data == nil {
		return nil
	}

	return &model.MembershipModel{
		ID:             data.ID,
		OrganizationID: data.OrganizationID,
		UserID:         data.UserID,
		Status:         string(data.Status),
	}
}
