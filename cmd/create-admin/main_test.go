package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phillip/youth-portal/auth"
	"github.com/phillip/youth-portal/models"
	"github.com/phillip/youth-portal/repository/memory"
)

func TestSeedAdmin(t *testing.T) {
	ctx := context.Background()
	users := memory.NewStore().Users()

	created, err := seedAdmin(ctx, users, "root", "Root@Example.com", "supersecret", "Root")
	require.NoError(t, err)
	assert.True(t, created)

	admin, err := users.FindByUsername(ctx, "root")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.True(t, admin.IsApproved)
	assert.Equal(t, "root@example.com", admin.Email)
	assert.NoError(t, auth.CheckPassword("supersecret", admin.PasswordHash))

	created, err = seedAdmin(ctx, users, "root", "other@example.com", "anothersecret", "Root")
	require.NoError(t, err)
	assert.False(t, created)
}
