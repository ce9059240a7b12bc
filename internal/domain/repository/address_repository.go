// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"opencircle/internal/domain/entity"
)

// ErrAddressNotFound is returned when an address is not found.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the interface for address persistence.
type AddressRepository interface {
	CreateAddress(ctx context.Context, address *entity.Address) error
	FindAddressByID(ctx context.Context, id int64) (*entity.Address, error)
	UpdateAddress(ctx context.Context, address *entity.Address) error
	// DeleteAddress fails with a foreign key violation while an event still references the address.
	DeleteAddress(ctx context.Context, id int64) error
}
