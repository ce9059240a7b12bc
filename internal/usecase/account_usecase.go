// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"opencircle/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a personal account.
type RegisterUserInput struct {
	Email     string  `validate:"required,email,max=255"`
	Username  *string `validate:"omitempty,min=3,max=50"`
	Password  string  `validate:"required,min=8,max=72"`
	FirstName string  `validate:"required,max=100"`
	LastName  string  `validate:"required,max=100"`
	Bio       *string
}

// RegisterOrganizationInput defines the data required to register an organization account.
type RegisterOrganizationInput struct {
	Email       string  `validate:"required,email,max=255"`
	Username    *string `validate:"omitempty,min=3,max=50"`
	Password    string  `validate:"required,min=8,max=72"`
	Name        string  `validate:"required,max=255"`
	Category    string  `validate:"required,max=100"`
	Description *string
	Logo        *int64
}

// --- Output DTOs ---

// RegisterOutput returns the new account and the profile created with it.
// Exactly one of User and Organization is set.
type RegisterOutput struct {
	Account      *entity.Account
	User         *entity.User
	Organization *entity.Organization
}

// AccountUsecase defines account registration and removal.
type AccountUsecase interface {
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)
	RegisterOrganization(ctx context.Context, input *RegisterOrganizationInput) (*RegisterOutput, error)
	GetAccount(ctx context.Context, accountUUID string) (*entity.Account, error)

	// DeleteAccount removes the account; the store removes everything it owns.
	DeleteAccount(ctx context.Context, accountUUID string) error
}
