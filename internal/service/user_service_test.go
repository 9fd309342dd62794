package service

import (
	"Mediahub/internal/api/dto"
	"Mediahub/internal/model"
	"Mediahub/internal/pkg/security"
	"Mediahub/internal/repository"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserById(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepo(db))

	user := seedUser(t, db, "alice", model.PermissionUser)

	got, err := svc.GetUserById(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	_, err = svc.GetUserById(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetAllUsers(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepo(db))

	seedUser(t, db, "alice", model.PermissionUser)
	seedUser(t, db, "bob", model.PermissionUser)
	seedUser(t, db, "carol", model.PermissionAdmin)

	list, err := svc.GetAllUsers(context.Background(), 0, 2)
	require.NoError(t, err)
	assert.Len(t, list.List, 2)
	assert.Equal(t, "alice", list.List[0].Username)

	list, err = svc.GetAllUsers(context.Background(), 2, 2)
	require.NoError(t, err)
	require.Len(t, list.List, 1)
	assert.Equal(t, "carol", list.List[0].Username)
}

func TestUpdateUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepo(db))

	user := seedUser(t, db, "alice", model.PermissionUser)

	permission := "admin"
	inactive := false
	updated, err := svc.UpdateUser(context.Background(), user.ID, &dto.UserUpdateDTO{
		Permission: &permission,
		IsActive:   &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", updated.Permission)
	assert.False(t, updated.IsActive)

	// 停用状态的零值要真正写库
	var stored model.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Equal(t, model.PermissionAdmin, stored.Permission)
	assert.False(t, stored.IsActive)

	bad := "superuser"
	_, err = svc.UpdateUser(context.Background(), user.ID, &dto.UserUpdateDTO{Permission: &bad})
	assert.ErrorIs(t, err, ErrParamInvalid)

	_, err = svc.UpdateUser(context.Background(), 9999, &dto.UserUpdateDTO{})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestChangePassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepo(db))

	hash, err := security.HashPassword("old-password")
	require.NoError(t, err)
	user := &model.User{Username: "alice", Password: hash, Permission: model.PermissionUser, Role: "viewer", IsActive: true}
	require.NoError(t, db.Create(user).Error)

	// 旧密码错误
	err = svc.ChangePassword(context.Background(), user.ID, &dto.ChangePasswordDTO{
		OldPassword: "wrong",
		NewPassword: "new-password",
	})
	assert.ErrorIs(t, err, ErrPasswordIncorrect)

	require.NoError(t, svc.ChangePassword(context.Background(), user.ID, &dto.ChangePasswordDTO{
		OldPassword: "old-password",
		NewPassword: "new-password",
	}))

	var stored model.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.True(t, security.CheckPasswordHash("new-password", stored.Password))
	assert.False(t, security.CheckPasswordHash("old-password", stored.Password))
}

func TestDeleteUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepo(db))

	user := seedUser(t, db, "alice", model.PermissionUser)

	require.NoError(t, svc.DeleteUser(context.Background(), user.ID))

	var count int64
	require.NoError(t, db.Model(&model.User{}).Where("id = ?", user.ID).Count(&count).Error)
	assert.Zero(t, count)

	assert.ErrorIs(t, svc.DeleteUser(context.Background(), 9999), ErrUserNotFound)
}
