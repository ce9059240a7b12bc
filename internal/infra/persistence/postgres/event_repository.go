package postgres

import (
	"context"

	"opencircle/internal/domain/entity"
	"opencircle/internal/domain/repository"
	"opencircle/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// eventRepository implements the repository.EventRepository interface.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

// CreateEvent persists a new event under an organization.
func (repo *eventRepository) CreateEvent(ctx context.Context, event *entity.Event) error {
	eventM := fromEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		return translateWriteError(err, "failed to create event")
	}

	event.ID = eventM.ID
	event.CreatedDate = eventM.CreatedDate
	event.LastModifiedDate = eventM.LastModifiedDate

	return nil
}

// FindEventByID retrieves an event by its ID.
func (repo *eventRepository) FindEventByID(ctx context.Context, id int64) (*entity.Event, error) {
	var eventM model.EventModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&eventM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find event by ID")
	}

	return toEventDomain(&eventM), nil
}

// FindEventsByOrganization lists an organization's events by date.
func (repo *eventRepository) FindEventsByOrganization(ctx context.Context, orgID int64) ([]*entity.Event, error) {
	var eventModels []*model.EventModel

	if err := repo.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("event_date ASC").
		Order("id ASC").
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find events by organization")
	}

	events := make([]*entity.Event, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toEventDomain(eventM))
	}

	return events, nil
}

// UpdateEvent overwrites the event columns.
func (repo *eventRepository) UpdateEvent(ctx context.Context, event *entity.Event) error {
	eventM := fromEventDomain(event)

	result := updateRow(ctx, repo.db, eventM)
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update event")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	event.LastModifiedDate = eventM.LastModifiedDate

	return nil
}

// DeleteEvent removes an event with its RSVPs and comments.
func (repo *eventRepository) DeleteEvent(ctx context.Context, id int64) error {
	result := deleteByID(ctx, repo.db, &model.EventModel{}, id)
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to delete event")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toEventDomain(data *model.EventModel) *entity.Event {
	if data == nil {
		return nil
	}

	event := &entity.Event{
		ID:               data.ID,
		OrganizationID:   data.OrganizationID,
		Title:            data.Title,
		EventDate:        data.EventDate,
		AddressID:        data.AddressID,
		Description:      data.Description,
		Image:            data.Image,
		IsAutoAccept:     true,
		CreatedDate:      data.CreatedDate,
		LastModifiedDate: data.LastModifiedDate,
	}
	if data.IsAutoAccept != nil {
		event.IsAutoAccept = *data.IsAutoAccept
	}

	return event
}

// fromEventDomain always sets is_autoaccept so an explicit false survives the column default.
func fromEventDomain(data *entity.Event) *model.EventModel {
	if data == nil {
		return nil
	}

	autoAccept := data.IsAutoAccept

	return &model.EventModel{
		ID:             data.ID,
		OrganizationID: data.OrganizationID,
		Title:          data.Title,
		EventDate:      data.EventDate,
		AddressID:      data.AddressID,
		Description:    data.Description,
		Image:          data.Image,
		IsAutoAccept:   &autoAccept,
	}
}
