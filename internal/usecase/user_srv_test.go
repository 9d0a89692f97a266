package usecase

import (
	"context"
	"testing"

	"trek-booking/internal/data/entity"
	"trek-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func intPtr(i int) *int       { return &i }

func newTestUserService(t *testing.T) (UserService, *memUserRepo) {
	repo := newMemUserRepo()
	return NewUserService(repo, zap.NewNop()), repo
}

func seedMemUser(t *testing.T, repo *memUserRepo, role entity.UserRole) *entity.User {
	t.Helper()
	user := &entity.User{
		Base:         entity.Base{ID: uuid.New()},
		Name:         "Test User",
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestGetProfile_OwnProfile(t *testing.T) {
	svc, repo := newTestUserService(t)
	user := seedMemUser(t, repo, entity.RoleUser)

	caller := Caller{ID: user.ID, Role: "user"}
	profile, err := svc.GetProfile(context.Background(), caller, user.ID.String())
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), profile.ID)
}

func TestGetProfile_OtherUserForbidden(t *testing.T) {
	svc, repo := newTestUserService(t)
	victim := seedMemUser(t, repo, entity.RoleUser)
	attacker := seedMemUser(t, repo, entity.RoleUser)

	caller := Caller{ID: attacker.ID, Role: "user"}
	_, err := svc.GetProfile(context.Background(), caller, victim.ID.String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forbidden")
}

func TestGetProfile_AdminMayReadAnyone(t *testing.T) {
	svc, repo := newTestUserService(t)
	user := seedMemUser(t, repo, entity.RoleUser)
	admin := seedMemUser(t, repo, entity.RoleAdmin)

	caller := Caller{ID: admin.ID, Role: "admin"}
	profile, err := svc.GetProfile(context.Background(), caller, user.ID.String())
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), profile.ID)
}

func TestUpdateUser_OtherUserForbidden(t *testing.T) {
	svc, repo := newTestUserService(t)
	victim := seedMemUser(t, repo, entity.RoleUser)
	attacker := seedMemUser(t, repo, entity.RoleUser)

	caller := Caller{ID: attacker.ID, Role: "user"}
	_, err := svc.UpdateUser(context.Background(), caller, victim.ID.String(), &request.UpdateUserRequest{
		Name: strPtr("Hacked"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forbidden")
}

// A non-admin setting role or is_active has those fields silently dropped.
func TestUpdateUser_NonAdminCannotEscalate(t *testing.T) {
	svc, repo := newTestUserService(t)
	user := seedMemUser(t, repo, entity.RoleUser)

	caller := Caller{ID: user.ID, Role: "user"}
	updated, err := svc.UpdateUser(context.Background(), caller, user.ID.String(), &request.UpdateUserRequest{
		Name:     strPtr("New Name"),
		Role:     strPtr("admin"),
		IsActive: boolPtr(false),
	})
	require.NoError(t, err)

	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, entity.RoleUser, updated.Role)
	assert.True(t, updated.IsActive)
}

func TestUpdateUser_AdminMaySetRole(t *testing.T) {
	svc, repo := newTestUserService(t)
	user := seedMemUser(t, repo, entity.RoleUser)
	admin := seedMemUser(t, repo, entity.RoleAdmin)

	caller := Caller{ID: admin.ID, Role: "admin"}
	updated, err := svc.UpdateUser(context.Background(), caller, user.ID.String(), &request.UpdateUserRequest{
		Role: strPtr("admin"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, updated.Role)
}

func TestUpdateUser_DuplicateEmail(t *testing.T) {
	svc, repo := newTestUserService(t)
	existing := seedMemUser(t, repo, entity.RoleUser)
	user := seedMemUser(t, repo, entity.RoleUser)

	caller := Caller{ID: user.ID, Role: "user"}
	_, err := svc.UpdateUser(context.Background(), caller, user.ID.String(), &request.UpdateUserRequest{
		Email: strPtr(existing.Email),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestCreateUser_AdminRoleHonored(t *testing.T) {
	svc, _ := newTestUserService(t)

	created, err := svc.CreateUser(context.Background(), &request.CreateUserRequest{
		Name:     "New Admin",
		Email:    "newadmin@example.com",
		Password: "secret123",
		Role:     "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, created.Role)
}

func TestDeleteUser_NotFound(t *testing.T) {
	svc, _ := newTestUserService(t)

	err := svc.DeleteUser(context.Background(), uuid.NewString())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestDeleteUser(t *testing.T) {
	svc, repo := newTestUserService(t)
	user := seedMemUser(t, repo, entity.RoleUser)

	require.NoError(t, svc.DeleteUser(context.Background(), user.ID.String()))

	found, err := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}
