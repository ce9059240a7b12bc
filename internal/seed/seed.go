// Package seed inserts the reference rows every store needs.
package seed

import (
	"context"

	"opencircle/internal/domain/entity"
	"opencircle/internal/domain/repository"

	"github.com/pkg/errors"
)

// EnsureRoles creates the seeded roles that are missing and returns all of
// them in seed order. Running it again changes nothing.
func EnsureRoles(ctx context.Context, txManager repository.TransactionManager) ([]*entity.Role, error) {
	names := entity.SeedRoleNames()
	roles := make([]*entity.Role, 0, len(names))

	err := txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		roleRepo := repoFactory.NewRoleRepository()
		for _, name := range names {
			role, err := roleRepo.EnsureRole(ctx, name)
			if err != nil {
				return errors.Wrapf(err, "failed to seed role %s", name)
			}
			roles = append(roles, role)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return roles, nil
}
