package impl

import (
	"context"
	"fmt"
	"log/slog"

	"opencircle/internal/domain/entity"
	domainerrors "opencircle/internal/domain/errors"
	"opencircle/internal/domain/repository"
	logs "opencircle/internal/infra/log"
	"opencircle/internal/usecase"

	"github.com/pkg/errors"
)

// eventService implements the EventUsecase interface.
type eventService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewEventService is the constructor for eventService.
func NewEventService(txManager repository.TransactionManager, logger *slog.Logger) usecase.EventUsecase {
	return &eventService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *eventService) log(ctx context.Context) *slog.Logger {
	return logs.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores the event, its address if given, and an event_update
// notification for every approved member of the organization.
func (srv *eventService) Create(ctx context.Context, input *usecase.CreateEventInput) (*entity.Event, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	autoAccept := true
	if input.IsAutoAccept != nil {
		autoAccept = *input.IsAutoAccept
	}

	event := &entity.Event{
		OrganizationID: input.OrganizationID,
		Title:          input.Title,
		EventDate:      input.EventDate,
		Description:    input.Description,
		Image:          input.Image,
		IsAutoAccept:   autoAccept,
	}

	var notified int
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		org, err := repoFactory.NewOrganizationRepository().FindOrganizationByID(ctx, input.OrganizationID)
		if err != nil {
			return errors.Wrap(err, "failed to find organization")
		}

		if input.Address != nil {
			address := toAddressEntity(input.Address)
			if err := repoFactory.NewAddressRepository().CreateAddress(ctx, address); err != nil {
				return errors.Wrap(err, "failed to create event address")
			}
			event.AddressID = &address.ID
		}

		if err := repoFactory.NewEventRepository().CreateEvent(ctx, event); err != nil {
			return errors.Wrap(err, "failed to create event")
		}

		memberIDs, err := repoFactory.NewMembershipRepository().FindApprovedMemberAccountIDs(ctx, org.ID)
		if err != nil {
			return errors.Wrap(err, "failed to find members to notify")
		}

		notices := newEventNotices(memberIDs, org, event)
		if err := repoFactory.NewNotificationRepository().BatchCreateNotifications(ctx, notices); err != nil {
			return errors.Wrap(err, "failed to notify members of new event")
		}
		notified = len(notices)

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create event", slog.Int64("orgID", input.OrganizationID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Event created", slog.Int64("eventID", event.ID), slog.Int("notified", notified))

	return event, nil
}

// Update applies the given fields to an event the organization owns. The
// event row and its address are written in one transaction.
func (srv *eventService) Update(ctx context.Context, input *usecase.UpdateEventInput) (*entity.Event, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var event *entity.Event

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		event, err = repoFactory.NewEventRepository().FindEventByID(ctx, input.EventID)
		if err != nil {
			return errors.Wrap(err, "failed to find event")
		}
		if event.OrganizationID != input.OrganizationID {
			return domainerrors.ErrForbidden.WrapMessage(fmt.Sprintf("organization %d does not own event %d", input.OrganizationID, input.EventID))
		}

		applyEventChanges(event, input)

		addressRepo := repoFactory.NewAddressRepository()

		var replaced *entity.Address
		if input.Address != nil {
			address := toAddressEntity(input.Address)
			if event.AddressID == nil {
				if err := addressRepo.CreateAddress(ctx, address); err != nil {
					return errors.Wrap(err, "failed to create event address")
				}
				event.AddressID = &address.ID
			} else {
				address.ID = *event.AddressID
				replaced = address
			}
		}

		if err := repoFactory.NewEventRepository().UpdateEvent(ctx, event); err != nil {
			return errors.Wrap(err, "failed to update event")
		}

		if replaced != nil {
			if err := addressRepo.UpdateAddress(ctx, replaced); err != nil {
				return errors.Wrap(err, "failed to update event address")
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update event", slog.Int64("eventID", input.EventID), slog.Int64("orgID", input.OrganizationID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Event updated", slog.Int64("eventID", event.ID))

	return event, nil
}

// ListByOrganization returns the events of an existing organization by date.
func (srv *eventService) ListByOrganization(ctx context.Context, orgID int64) ([]*entity.Event, error) {
	var events []*entity.Event

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewOrganizationRepository().FindOrganizationByID(ctx, orgID); err != nil {
			return errors.Wrap(err, "failed to find organization")
		}

		found, err := repoFactory.NewEventRepository().FindEventsByOrganization(ctx, orgID)
		if err != nil {
			return errors.Wrap(err, "failed to list events")
		}
		events = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return events, nil
}

// Delete removes the event with its RSVPs and comments.
func (srv *eventService) Delete(ctx context.Context, eventID int64) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewEventRepository().DeleteEvent(ctx, eventID); err != nil {
			return errors.Wrap(err, "failed to delete event")
		}

		return nil
	})
}

func applyEventChanges(event *entity.Event, input *usecase.UpdateEventInput) {
	if input.Title != nil {
		event.Title = *input.Title
	}
	if input.EventDate != nil {
		event.EventDate = *input.EventDate
	}
	if input.Description != nil {
		event.Description = input.Description
	}
	if input.Image != nil {
		event.Image = input.Image
	}
	if input.IsAutoAccept != nil {
		event.IsAutoAccept = *input.IsAutoAccept
	}
}

func toAddressEntity(in *usecase.AddressInput) *entity.Address {
	return &entity.Address{
		Country:             in.Country,
		CountryCode:         in.CountryCode,
		Province:            in.Province,
		ProvinceCode:        in.ProvinceCode,
		City:                in.City,
		CityCode:            in.CityCode,
		Barangay:            in.Barangay,
		BarangayCode:        in.BarangayCode,
		HouseBuildingNumber: in.HouseBuildingNumber,
	}
}
