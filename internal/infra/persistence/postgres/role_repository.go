package postgres

import (
	"context"

	"opencircle/internal/domain/entity"
	"opencircle/internal/domain/repository"
	"opencircle/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

// EnsureRole inserts the role unless a row with the same name exists, then
// reads the stored row back. Running it twice leaves one row.
func (repo *roleRepository) EnsureRole(ctx context.Context, name string) (*entity.Role, error) {
	roleM := &model.RoleModel{Name: name}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(roleM).Error; err != nil {
		return nil, translateWriteError(err, "failed to seed role "+name)
	}

	return repo.FindRoleByName(ctx, name)
}

func (repo *roleRepository) FindRoleByName(ctx context.Context, name string) (*entity.Role, error) {
	var roleM model.RoleModel

	if err := repo.db.WithContext(ctx).Where("name = ?", name).First(&roleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, errors.Wrap(err, "failed to find role by name")
	}

	return toRoleDomain(&roleM), nil
}

func (repo *roleRepository) FindRoleByID(ctx context.Context, id int64) (*entity.Role, error) {
	var roleM model.RoleModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&roleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, errors.Wrap(err, "failed to find role by ID")
	}

	return toRoleDomain(&roleM), nil
}

func (repo *roleRepository) ListRoles(ctx context.Context) ([]*entity.Role, error) {
	var roleModels []*model.RoleModel

	if err := repo.db.WithContext(ctx).Order("id ASC").Find(&roleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list roles")
	}

	roles := make([]*entity.Role, 0, len(roleModels))
	for _, roleM := range roleModels {
		roles = append(roles, toRoleDomain(roleM))
	}

	return roles, nil
}

func toRoleDomain(data *model.RoleModel) *entity.Role {
	return &entity.Role{
		ID:          data.ID,
		Name:        data.Name,
		CreatedDate: data.CreatedDate,
	}
}
