package service

import (
	"Mediahub/internal/api/dto"
	"Mediahub/internal/model"
	"Mediahub/internal/pkg/security"
	"Mediahub/internal/pkg/util"
	"Mediahub/internal/repository"
	"context"
	log "log/slog"
)

type UserService interface {
	GetUserById(ctx context.Context, id uint64) (*dto.UserDTO, error)
	GetAllUsers(ctx context.Context, skip, limit int) (*dto.UserListDTO, error)
	UpdateUser(ctx context.Context, id uint64, d *dto.UserUpdateDTO) (*dto.UserDTO, error)
	ChangePassword(ctx context.Context, userID uint64, d *dto.ChangePasswordDTO) error
	DeleteUser(ctx context.Context, id uint64) error
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) GetUserById(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		log.Error("查询用户失败", "err", err)
		return nil, UnExpectedError
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return toUserDTO(user), nil
}

func (s *UserServiceImpl) GetAllUsers(ctx context.Context, skip, limit int) (*dto.UserListDTO, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	users, err := s.userRepo.GetAllUsers(ctx, skip, limit)
	if err != nil {
		log.Error("查询用户列表失败", "err", err)
		return nil, UnExpectedError
	}

	list := make([]*dto.UserDTO, 0, len(users))
	for _, user := range users {
		list = append(list, toUserDTO(user))
	}

	return &dto.UserListDTO{List: list, Skip: skip, Limit: limit}, nil
}

// UpdateUser 部分更新：仅更新提供的字段，密码在此处重新哈希
func (s *UserServiceImpl) UpdateUser(ctx context.Context, id uint64, d *dto.UserUpdateDTO) (*dto.UserDTO, error) {
	if err := util.ValidateDTO(d); err != nil {
		return nil, ErrParamInvalid
	}

	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		log.Error("查询用户失败", "err", err)
		return nil, UnExpectedError
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	fields := make([]string, 0, 4)

	if d.Password != nil {
		hashed, hashErr := security.HashPassword(*d.Password)
		if hashErr != nil {
			log.Error("密码哈希失败", "err", hashErr)
			return nil, UnExpectedError
		}
		user.Password = hashed
		fields = append(fields, "password")
	}
	if d.Permission != nil {
		permission, ok := model.ParsePermission(*d.Permission)
		if !ok {
			return nil, ErrParamInvalid
		}
		user.Permission = permission
		fields = append(fields, "permission")
	}
	if d.Role != nil {
		user.Role = *d.Role
		fields = append(fields, "role")
	}
	if d.IsActive != nil {
		user.IsActive = *d.IsActive
		fields = append(fields, "is_active")
	}

	if len(fields) == 0 {
		return toUserDTO(user), nil
	}

	if err = s.userRepo.UpdateUser(ctx, user, fields...); err != nil {
		log.Error("更新用户失败", "user_id", id, "err", err)
		return nil, UnExpectedError
	}

	return toUserDTO(user), nil
}

// ChangePassword 校验旧密码后更新为新密码
func (s *UserServiceImpl) ChangePassword(ctx context.Context, userID uint64, d *dto.ChangePasswordDTO) error {
	if err := util.ValidateDTO(d); err != nil {
		return ErrParamInvalid
	}

	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		log.Error("查询用户失败", "err", err)
		return UnExpectedError
	}
	if user == nil {
		return ErrUserNotFound
	}

	if !security.CheckPasswordHash(d.OldPassword, user.Password) {
		return ErrPasswordIncorrect
	}

	hashed, err := security.HashPassword(d.NewPassword)
	if err != nil {
		log.Error("密码哈希失败", "err", err)
		return UnExpectedError
	}

	user.Password = hashed
	if err = s.userRepo.UpdateUser(ctx, user, "password"); err != nil {
		log.Error("更新密码失败", "user_id", userID, "err", err)
		return UnExpectedError
	}
	return nil
}

func (s *UserServiceImpl) DeleteUser(ctx context.Context, id uint64) error {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		log.Error("查询用户失败", "err", err)
		return UnExpectedError
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err = s.userRepo.DeleteUser(ctx, id); err != nil {
		log.Error("删除用户失败", "user_id", id, "err", err)
		return UnExpectedError
	}
	return nil
}
