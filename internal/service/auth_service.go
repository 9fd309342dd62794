package service

import (
	"Mediahub/internal/api/dto"
	"Mediahub/internal/model"
	"Mediahub/internal/pkg/consts"
	"Mediahub/internal/pkg/redis"
	"Mediahub/internal/pkg/security"
	"Mediahub/internal/pkg/util"
	"Mediahub/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, d *dto.RegisterDTO) (string, *dto.UserDTO, error)
	Login(ctx context.Context, d *dto.LoginDTO) (string, *dto.UserDTO, error)
	Logout(ctx context.Context, tokenString string) error
	RefreshToken(ctx context.Context, userID uint64) (string, error)
}

type AuthServiceImpl struct {
	userRepo     repository.UserRepo
	tokenManager *security.TokenManager
}

func NewAuthService(userRepo repository.UserRepo, tokenManager *security.TokenManager) AuthService {
	return &AuthServiceImpl{
		userRepo:     userRepo,
		tokenManager: tokenManager,
	}
}

// Register 注册新用户并直接签发 Token
func (s *AuthServiceImpl) Register(ctx context.Context, d *dto.RegisterDTO) (string, *dto.UserDTO, error) {
	if err := util.ValidateDTO(d); err != nil {
		return "", nil, ErrParamInvalid
	}

	username := strings.ToLower(strings.TrimSpace(d.Username))

	permission := model.PermissionUser
	if d.Permission != nil {
		parsed, ok := model.ParsePermission(*d.Permission)
		if !ok {
			return "", nil, ErrParamInvalid
		}
		permission = parsed
	}

	role := consts.DefaultRole
	if d.Role != nil && *d.Role != "" {
		role = *d.Role
	}

	existing, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		log.Error("查询用户失败", "err", err)
		return "", nil, UnExpectedError
	}
	if existing != nil {
		return "", nil, ErrUsernameExist
	}

	hashed, err := security.HashPassword(d.Password)
	if err != nil {
		log.Error("密码哈希失败", "err", err)
		return "", nil, UnExpectedError
	}

	user := &model.User{
		Username:   username,
		Password:   hashed,
		Permission: permission,
		Role:       role,
		IsActive:   true,
	}

	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		// 预检之后仍可能撞上唯一索引
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", nil, ErrUsernameExist
		}
		log.Error("创建用户失败", "err", err)
		return "", nil, UnExpectedError
	}

	token, err := s.tokenManager.GenerateToken(user)
	if err != nil {
		log.Error("签发 Token 失败", "err", err)
		return "", nil, UnExpectedError
	}

	return token, toUserDTO(user), nil
}

// Login 校验凭证并签发 Token，同时刷新最近登录时间
func (s *AuthServiceImpl) Login(ctx context.Context, d *dto.LoginDTO) (string, *dto.UserDTO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, strings.TrimSpace(d.Username))
	if err != nil {
		log.Error("查询用户失败", "err", err)
		return "", nil, UnExpectedError
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	if !security.CheckPasswordHash(d.Password, user.Password) {
		return "", nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return "", nil, ErrUserInactive
	}

	now := time.Now()
	if err = s.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		log.Warn("刷新最近登录时间失败", "user_id", user.ID, "err", err)
	} else {
		user.LastLogin = &now
	}

	token, err := s.tokenManager.GenerateToken(user)
	if err != nil {
		log.Error("签发 Token 失败", "err", err)
		return "", nil, UnExpectedError
	}

	return token, toUserDTO(user), nil
}

// Logout 将 Token 签名压入黑名单直至其自然过期
func (s *AuthServiceImpl) Logout(ctx context.Context, tokenString string) error {
	signature, err := security.ExtractSignature(tokenString)
	if err != nil {
		return ErrInvalidCredentials
	}

	if err = redis.SetWithExpiration(ctx, consts.TokenDenyKey+signature, true, s.tokenManager.Expiration()); err != nil {
		log.Error("写入 Token 黑名单失败", "err", err)
		return UnExpectedError
	}
	return nil
}

// RefreshToken 为已认证用户重新签发 Token
func (s *AuthServiceImpl) RefreshToken(ctx context.Context, userID uint64) (string, error) {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		log.Error("查询用户失败", "err", err)
		return "", UnExpectedError
	}
	if user == nil {
		return "", ErrUserNotFound
	}
	if !user.IsActive {
		return "", ErrUserInactive
	}

	token, err := s.tokenManager.GenerateToken(user)
	if err != nil {
		log.Error("签发 Token 失败", "err", err)
		return "", UnExpectedError
	}
	return token, nil
}

func toUserDTO(user *model.User) *dto.UserDTO {
	userDTO := &dto.UserDTO{}
	if err := copier.Copy(userDTO, user); err != nil {
		log.Warn("用户信息拷贝失败", "err", err)
	}
	return userDTO
}
