package model_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/takimet-io/takimet/pkg/model"
)

func TestRoleSatisfies(t *testing.T) {
	assert.True(t, model.RoleSatisfies(model.RoleUser, model.RoleUser))
	assert.False(t, model.RoleSatisfies(model.RoleUser, model.RoleCompany))
	assert.False(t, model.RoleSatisfies(model.RoleUser, model.RoleAdministrator))

	assert.True(t, model.RoleSatisfies(model.RoleCompany, model.RoleUser))
	assert.True(t, model.RoleSatisfies(model.RoleCompany, model.RoleCompany))
	assert.False(t, model.RoleSatisfies(model.RoleCompany, model.RoleAdministrator))

	assert.True(t, model.RoleSatisfies(model.RoleAdministrator, model.RoleUser))
	assert.True(t, model.RoleSatisfies(model.RoleAdministrator, model.RoleCompany))
	assert.True(t, model.RoleSatisfies(model.RoleAdministrator, model.RoleAdministrator))
}

func TestRoleSatisfies_UnknownRole(t *testing.T) {
	assert.False(t, model.RoleSatisfies(model.Role("moderator"), model.RoleUser))
	assert.False(t, model.RoleSatisfies(model.Role(""), model.RoleUser))
}

func TestUserContext(t *testing.T) {
	user := &model.User{
		ID:        1000,
		FirstName: "Arta",
		LastName:  "Krasniqi",
		Email:     "arta@example.com",
		Role:      model.RoleCompany,
	}

	ctx := context.Background()

	got, ok := model.GetUserFromContext(ctx)
	assert.False(t, ok)
	assert.Nil(t, got)

	ctx = model.NewContextWithUser(ctx, user)

	got, ok = model.GetUserFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, user, got)
	assert.Equal(t, "Arta Krasniqi", got.Name())
}
