package service

import (
	"testing"

	"github.com/chocolog/chocolog-backend/internal/app/model"
	"github.com/chocolog/chocolog-backend/internal/app/repository"
	"github.com/chocolog/chocolog-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupUserServiceTest(t *testing.T) (UserService, *gorm.DB) {
	testDB, err := db.SetupTestDB(t)
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(testDB)
	return NewUserService(userRepo), testDB
}

func TestUserService_UpdateUserRole(t *testing.T) {
	userService, testDB := setupUserServiceTest(t)
	admin := createTestUser(t, testDB, "admin@test.com", model.RoleAdmin)
	user := createTestUser(t, testDB, "user@test.com", model.RoleUser)

	updated, err := userService.UpdateUserRole(user.ID, model.RoleAdmin, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, updated.Role)

	updated, err = userService.UpdateUserRole(user.ID, model.RoleUser, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, updated.Role)
}

func TestUserService_UpdateUserRole_SelfDemotion(t *testing.T) {
	userService, testDB := setupUserServiceTest(t)
	admin := createTestUser(t, testDB, "admin@test.com", model.RoleAdmin)

	_, err := userService.UpdateUserRole(admin.ID, model.RoleUser, admin.ID)
	assert.ErrorIs(t, err, ErrSelfDemotion)
}

func TestUserService_UpdateUserRole_NotFound(t *testing.T) {
	userService, testDB := setupUserServiceTest(t)
	admin := createTestUser(t, testDB, "admin@test.com", model.RoleAdmin)

	_, err := userService.UpdateUserRole(9999, model.RoleAdmin, admin.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_DeleteUser(t *testing.T) {
	userService, testDB := setupUserServiceTest(t)
	admin := createTestUser(t, testDB, "admin@test.com", model.RoleAdmin)
	user := createTestUser(t, testDB, "user@test.com", model.RoleUser)

	err := userService.DeleteUser(admin.ID, admin.ID)
	assert.ErrorIs(t, err, ErrSelfDemotion)

	err = userService.DeleteUser(user.ID, admin.ID)
	assert.NoError(t, err)

	err = userService.DeleteUser(user.ID, admin.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_GetUsers_Search(t *testing.T) {
	userService, testDB := setupUserServiceTest(t)
	createTestUser(t, testDB, "alice@test.com", model.RoleUser)
	createTestUser(t, testDB, "bob@test.com", model.RoleUser)

	users, total, err := userService.GetUsers(&model.UserListQuery{Page: 1, PageSize: 20, Search: "alice"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, users, 1)
	assert.Equal(t, "alice@test.com", users[0].Email)
}

func TestUserService_ExportUsers(t *testing.T) {
	userService, testDB := setupUserServiceTest(t)
	createTestUser(t, testDB, "alice@test.com", model.RoleUser)
	createTestUser(t, testDB, "bob@test.com", model.RoleAdmin)

	f, err := userService.ExportUsers()
	require.NoError(t, err)

	rows, err := f.GetRows("Users")
	require.NoError(t, err)
	// Header plus one row per user
	require.Len(t, rows, 3)
	assert.Equal(t, "Email", rows[0][1])
	assert.Equal(t, "alice@test.com", rows[1][1])
	assert.Equal(t, "ADMIN", rows[2][3])
}
