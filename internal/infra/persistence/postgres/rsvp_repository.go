package postgres

import (
	"context"

	"opencircle/internal/domain/entity"
	"opencircle/internal/domain/repository"
	"opencircle/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type rsvpRepository struct {
	db *gorm.DB
}

// NewRSVPRepository is the constructor for rsvpRepository.
func NewRSVPRepository(db *gorm.DB) repository.RSVPRepository {
	return &rsvpRepository{db: db}
}

// CreateRSVP persists an RSVP. An empty status takes the column default.
func (repo *rsvpRepository) CreateRSVP(ctx context.Context, rsvp *entity.RSVP) error {
	rsvpM := fromRSVPDomain(rsvp)

	if err := repo.db.WithContext(ctx).Create(rsvpM).Error; err != nil {
		return translateWriteError(err, "failed to create rsvp")
	}

	rsvp.ID = rsvpM.ID
	rsvp.Status = entity.RSVPStatus(rsvpM.Status)
	rsvp.CreatedDate = rsvpM.CreatedDate
	rsvp.LastModifiedDate = rsvpM.LastModifiedDate

	return nil
}

func (repo *rsvpRepository) FindRSVPByID(ctx context.Context, id int64) (*entity.RSVP, error) {
	return repo.findOne(repo.db.WithContext(ctx).Where("id = ?", id))
}

// FindRSVP retrieves the attendee's RSVP for an event.
func (repo *rsvpRepository) FindRSVP(ctx context.Context, eventID, attendee int64) (*entity.RSVP, error) {
	return repo.findOne(repo.db.WithContext(ctx).Where("event_id = ? AND attendee = ?", eventID, attendee))
}

func (repo *rsvpRepository) findOne(query *gorm.DB) (*entity.RSVP, error) {
	var rsvpM model.RSVPModel

	if err := query.First(&rsvpM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRSVPNotFound
		}

		return nil, errors.Wrap(err, "failed to find rsvp")
	}

	return toRSVPDomain(&rsvpM), nil
}

// FindRSVPsByEvent lists an event's RSVPs, optionally filtered by status.
func (repo *rsvpRepository) FindRSVPsByEvent(ctx context.Context, eventID int64, status entity.RSVPStatus) ([]*entity.RSVP, error) {
	var rsvpModels []*model.RSVPModel

	query := repo.db.WithContext(ctx).Where("event_id = ?", eventID)
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	if err := query.Order("id ASC").Find(&rsvpModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find rsvps by event")
	}

	rsvps := make([]*entity.RSVP, 0, len(rsvpModels))
	for _, rsvpM := range rsvpModels {
		rsvps = append(rsvps, toRSVPDomain(rsvpM))
	}

	return rsvps, nil
}

func (repo *rsvpRepository) UpdateRSVPStatus(ctx context.Context, id int64, status entity.RSVPStatus) (*entity.RSVP, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.RSVPModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": string(status)})

	if result.Error != nil {
		return nil, translateWriteError(result.Error, "failed to update rsvp status")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrRSVPNotFound
	}

	return repo.FindRSVPByID(ctx, id)
}

func (repo *rsvpRepository) DeleteRSVP(ctx context.Context, id int64) error {
	result := deleteByID(ctx, repo.db, &model.RSVPModel{}, id)
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to delete rsvp")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRSVPNotFound
	}

	return nil
}

func toRSVPDomain(data *model.RSVPModel) *entity.RSVP {
	if data == nil {
		return nil
	}

	return &entity.RSVP{
		ID:               data.ID,
		EventID:          data.EventID,
		Attendee:         data.Attendee,
		Status:           entity.RSVPStatus(data.Status),
		CreatedDate:      data.CreatedDate,
		LastModifiedDate: data.LastModifiedDate,
	}
}

func fromRSVPDomain(data *entity.RSVP) *model.RSVPModel {
	if data == nil {
		return nil
	}

	return &model.RSVPModel{
		ID:       data.ID,
		EventID:  data.EventID,
		Attendee: data.Attendee,
		Status:   string(data.Status),
	}
}
