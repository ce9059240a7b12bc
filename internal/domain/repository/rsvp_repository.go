package repository

import (
	"context"
	"errors"

	"opencircle/internal/domain/entity"
)

var ErrRSVPNotFound = errors.New("rsvp not found")

type RSVPRepository interface {
	// CreateRSVP fails with a unique violation when the attendee already answered the event.
	CreateRSVP(ctx context.Context, rsvp *entity.RSVP) error
	FindRSVPByID(ctx context.Context, id int64) (*entity.RSVP, error)
	FindRSVP(ctx context.Context, eventID, attendee int64) (*entity.RSVP, error)
	FindRSVPsByEvent(ctx context.Context, eventID int64, status entity.RSVPStatus) ([]*entity.RSVP, error)
	UpdateRSVPStatus(ctx context.Context, id int64, status entity.RSVPStatus) (*entity.RSVP, error)
	DeleteRSVP(ctx context.Context, id int64) error
}
