package usecase

import (
	"context"
	"testing"

	"hall-booking/internal/data/entity"
	"hall-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateUserSelfOrAdmin(t *testing.T) {
	env := newTestEnv()
	user := env.addUser(entity.RoleUser)
	stranger := env.addUser(entity.RoleUser)
	admin := env.addUser(entity.RoleAdmin)

	name := "Updated"
	role := "hall-owner"

	_, err := env.service.User.Update(context.Background(), actorFor(stranger), user.ID,
		request.UpdateUserRequest{FirstName: &name})
	assert.ErrorIs(t, err, ErrForbidden)

	// Self-update works, but the role field is ignored
	updated, err := env.service.User.Update(context.Background(), actorFor(user), user.ID,
		request.UpdateUserRequest{FirstName: &name, Role: &role})
	require.NoError(t, err)
	assert.Equal(t, name, updated.FirstName)
	assert.Equal(t, entity.RoleUser, updated.Role)

	// Admin can promote
	updated, err = env.service.User.Update(context.Background(), actorFor(admin), user.ID,
		request.UpdateUserRequest{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleHallOwner, updated.Role)
}

func TestDeleteUserGuardsSuperAdmin(t *testing.T) {
	env := newTestEnv()
	admin := env.addUser(entity.RoleAdmin)
	superAdmin := env.addUser(entity.RoleSuperAdmin)
	user := env.addUser(entity.RoleUser)

	err := env.service.User.Delete(context.Background(), actorFor(admin), superAdmin.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, env.service.User.Delete(context.Background(), actorFor(admin), user.ID))

	got, err := env.repo.User.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	err = env.service.User.Delete(context.Background(), actorFor(admin), uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSuperAdminCanDeleteSuperAdmin(t *testing.T) {
	env := newTestEnv()
	superAdmin := env.addUser(entity.RoleSuperAdmin)
	target := env.addUser(entity.RoleSuperAdmin)

	require.NoError(t, env.service.User.Delete(context.Background(), actorFor(superAdmin), target.ID))

	got, err := env.repo.User.FindByID(context.Background(), target.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDeleteUserRevokesSessions(t *testing.T) {
	env := newTestEnv()
	admin := env.addUser(entity.RoleAdmin)

	auth, err := env.service.Auth.Register(context.Background(), registerReq("doomed@example.com"), "", "")
	require.NoError(t, err)

	require.NoError(t, env.service.User.Delete(context.Background(), actorFor(admin),
		uuid.MustParse(auth.User.ID)))

	session, err := env.repo.Session.FindValidSession(context.Background(), auth.Token)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestListUsersFilterByRole(t *testing.T) {
	env := newTestEnv()
	env.addUser(entity.RoleUser)
	env.addUser(entity.RoleUser)
	env.addUser(entity.RoleHallOwner)

	list, err := env.service.User.List(context.Background(), request.ListUsersRequest{Role: "user"})
	require.NoError(t, err)
	assert.Len(t, list.Users, 2)
	assert.Equal(t, int64(2), list.Pagination.Total)
}

func TestFavoritesLifecycle(t *testing.T) {
	env := newTestEnv()
	owner := env.addUser(entity.RoleHallOwner)
	user := env.addUser(entity.RoleUser)
	hall := env.addHall(owner.ID, entity.HallStatusActive)

	err := env.service.User.AddFavorite(context.Background(), actorFor(user), uuid.New())
	assert.ErrorIs(t, err, ErrHallNotFound)

	require.NoError(t, env.service.User.AddFavorite(context.Background(), actorFor(user), hall.ID))

	err = env.service.User.AddFavorite(context.Background(), actorFor(user), hall.ID)
	assert.ErrorIs(t, err, ErrAlreadyFavorite)

	halls, err := env.service.User.ListFavorites(context.Background(), actorFor(user))
	require.NoError(t, err)
	require.Len(t, halls, 1)
	assert.Equal(t, hall.ID.String(), halls[0].ID)

	require.NoError(t, env.service.User.RemoveFavorite(context.Background(), actorFor(user), hall.ID))

	err = env.service.User.RemoveFavorite(context.Background(), actorFor(user), hall.ID)
	assert.ErrorIs(t, err, ErrNotFavorite)
}
