package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryansb/arsd/models"
)

func TestPutRolesUpsertsBatch(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.PutRoles(ctx, "us-east-1-corp", "111122223333", []models.Role{
		{RoleName: "AdministratorAccess"},
		{RoleName: "ReadOnlyAccess"},
	})
	require.NoError(t, err)

	err = store.PutRoles(ctx, "us-east-1-corp", "111122223333", []models.Role{
		{RoleName: "AdministratorAccess"},
	})
	require.NoError(t, err)

	roles, err := store.Roles(ctx, "us-east-1-corp", "111122223333")
	require.NoError(t, err)
	require.Len(t, roles, 2)
	assert.Equal(t, "AdministratorAccess", roles[0].RoleName)
	assert.Equal(t, "ReadOnlyAccess", roles[1].RoleName)
}

func TestRolesScopedToAccount(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.PutRoles(ctx, "us-east-1-corp", "111122223333", []models.Role{
		{RoleName: "AdministratorAccess"},
	})
	require.NoError(t, err)

	roles, err := store.Roles(ctx, "us-east-1-corp", "444455556666")
	require.NoError(t, err)
	assert.Empty(t, roles)
}
