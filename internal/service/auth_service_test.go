package service

import (
	"Mediahub/internal/api/config"
	"Mediahub/internal/api/dto"
	"Mediahub/internal/model"
	redisutil "Mediahub/internal/pkg/redis"
	"Mediahub/internal/pkg/security"
	"Mediahub/internal/repository"
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) (AuthService, *security.TokenManager) {
	tokenManager := security.NewTokenManager(config.JWTConfig{Secret: "test-secret", ExpireDays: 30})
	return NewAuthService(repository.NewUserRepo(db), tokenManager), tokenManager
}

func TestRegister(t *testing.T) {
	db := newTestDB(t)
	svc, tokenManager := newAuthService(db)

	token, user, err := svc.Register(context.Background(), &dto.RegisterDTO{
		Username: "Alice",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// 用户名统一转小写，默认权限与角色
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "user", user.Permission)
	assert.Equal(t, "viewer", user.Role)
	assert.True(t, user.IsActive)

	claims, err := tokenManager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)

	// 重名不区分大小写
	_, _, err = svc.Register(context.Background(), &dto.RegisterDTO{Username: "ALICE", Password: "secret123"})
	assert.ErrorIs(t, err, ErrUsernameExist)
}

func TestRegisterValidation(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newAuthService(db)

	// 用户名过短
	_, _, err := svc.Register(context.Background(), &dto.RegisterDTO{Username: "ab", Password: "secret123"})
	assert.ErrorIs(t, err, ErrParamInvalid)

	// 密码过短
	_, _, err = svc.Register(context.Background(), &dto.RegisterDTO{Username: "alice", Password: "123"})
	assert.ErrorIs(t, err, ErrParamInvalid)

	// 非法权限取值
	bad := "superuser"
	_, _, err = svc.Register(context.Background(), &dto.RegisterDTO{Username: "alice", Password: "secret123", Permission: &bad})
	assert.ErrorIs(t, err, ErrParamInvalid)
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newAuthService(db)

	_, _, err := svc.Register(context.Background(), &dto.RegisterDTO{Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	token, user, err := svc.Login(context.Background(), &dto.LoginDTO{Username: "Alice", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotNil(t, user.LastLogin)

	_, _, err = svc.Login(context.Background(), &dto.LoginDTO{Username: "alice", Password: "wrong-pass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), &dto.LoginDTO{Username: "nobody", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginInactiveUser(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newAuthService(db)

	_, _, err := svc.Register(context.Background(), &dto.RegisterDTO{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	require.NoError(t, db.Model(&model.User{}).Where("username = ?", "alice").Update("is_active", false).Error)

	_, _, err = svc.Login(context.Background(), &dto.LoginDTO{Username: "alice", Password: "secret123"})
	assert.ErrorIs(t, err, ErrUserInactive)
}

func TestLogout(t *testing.T) {
	db := newTestDB(t)
	svc, _ := newAuthService(db)

	mr := miniredis.RunT(t)
	redisutil.Rdb = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	token, _, err := svc.Register(context.Background(), &dto.RegisterDTO{Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), token))

	// 签名进入黑名单
	signature, err := security.ExtractSignature(token)
	require.NoError(t, err)
	assert.True(t, mr.Exists("auth:token:deny:"+signature))
}

func TestRefreshToken(t *testing.T) {
	db := newTestDB(t)
	svc, tokenManager := newAuthService(db)

	_, _, err := svc.Register(context.Background(), &dto.RegisterDTO{Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	var user model.User
	require.NoError(t, db.Where("username = ?", "alice").First(&user).Error)

	token, err := svc.RefreshToken(context.Background(), user.ID)
	require.NoError(t, err)

	claims, err := tokenManager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)

	_, err = svc.RefreshToken(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
