package seed

import (
	"context"
	"testing"

	"opencircle/internal/domain/entity"
	"opencircle/internal/infra/persistence/postgres"
	"opencircle/internal/infra/persistence/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureRolesIsIdempotent(t *testing.T) {
	db := storetest.New(t, nil)
	txManager := postgres.NewTransactionManager(db)
	ctx := context.Background()

	first, err := EnsureRoles(ctx, txManager)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, entity.RoleUser, first[0].Name)
	assert.Equal(t, entity.RoleOrganization, first[1].Name)

	second, err := EnsureRoles(ctx, txManager)
	require.NoError(t, err)
	require.Len(t, second, 2)
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, first[1].ID, second[1].ID)

	roles, err := postgres.NewRoleRepository(db).ListRoles(ctx)
	require.NoError(t, err)
	assert.Len(t, roles, 2)
}
