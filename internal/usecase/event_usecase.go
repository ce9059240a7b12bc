package usecase

import (
	"context"
	"time"

	"opencircle/internal/domain/entity"
)

// AddressInput is the postal address an event takes place at.
type AddressInput struct {
	Country             string `validate:"required,max=100"`
	CountryCode         string `validate:"required,max=20"`
	Province            string `validate:"required,max=100"`
	ProvinceCode        string `validate:"required,max=20"`
	City                string `validate:"required,max=100"`
	CityCode            string `validate:"required,max=20"`
	Barangay            string `validate:"required,max=100"`
	BarangayCode        string `validate:"required,max=20"`
	HouseBuildingNumber string `validate:"required,max=255"`
}

// CreateEventInput defines a new event. A nil IsAutoAccept means true.
type CreateEventInput struct {
	OrganizationID int64         `validate:"required,gt=0"`
	Title          string        `validate:"required,max=255"`
	EventDate      time.Time     `validate:"required"`
	Address        *AddressInput `validate:"omitempty"`
	Description    *string
	Image          *int64
	IsAutoAccept   *bool
}

// UpdateEventInput changes an event owned by OrganizationID. Nil fields keep
// their stored value. A given Address replaces the event's address, or is
// created when the event has none.
type UpdateEventInput struct {
	OrganizationID int64   `validate:"required,gt=0"`
	EventID        int64   `validate:"required,gt=0"`
	Title          *string `validate:"omitnil,min=1,max=255"`
	EventDate      *time.Time
	Address        *AddressInput `validate:"omitempty"`
	Description    *string
	Image          *int64
	IsAutoAccept   *bool
}

// EventUsecase manages an organization's events.
type EventUsecase interface {
	// Create stores the address and the event, then notifies approved members.
	Create(ctx context.Context, input *CreateEventInput) (*entity.Event, error)
	// Update fails with ErrForbidden when the organization does not own the event.
	Update(ctx context.Context, input *UpdateEventInput) (*entity.Event, error)
	ListByOrganization(ctx context.Context, orgID int64) ([]*entity.Event, error)
	Delete(ctx context.Context, eventID int64) error
}
