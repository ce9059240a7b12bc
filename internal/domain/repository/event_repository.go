package repository

import (
	"context"
	"errors"

	"opencircle/internal/domain/entity"
)

var ErrEventNotFound = errors.New("event not found")

type EventRepository interface {
	CreateEvent(ctx context.Context, event *entity.Event) error
	FindEventByID(ctx context.Context, id int64) (*entity.Event, error)
	// FindEventsByOrganization returns events ordered by event date.
	FindEventsByOrganization(ctx context.Context, orgID int64) ([]*entity.Event, error)
	UpdateEvent(ctx context.Context, event *entity.Event) error
	DeleteEvent(ctx context.Context, id int64) error
}
