package usecase

import (
	"context"

	"opencircle/internal/domain/entity"
)

// RSVPUsecase handles attendance requests.
type RSVPUsecase interface {
	// Create joins the account to the event, or files a pending request the
	// organization owner is told about when the event does not auto-accept.
	Create(ctx context.Context, eventID int64, accountUUID string) (*entity.RSVP, error)

	// ChangeStatus updates an RSVP. Moving it to joined notifies the attendee.
	ChangeStatus(ctx context.Context, rsvpID int64, status entity.RSVPStatus) (*entity.RSVP, error)

	ListForEvent(ctx context.Context, eventID int64) ([]*entity.RSVP, error)
}
