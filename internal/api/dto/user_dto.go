package dto

import "time"

// UserDTO 用户信息
type UserDTO struct {
	ID         uint64     `json:"id"`
	Username   string     `json:"username"`
	Permission string     `json:"permission"`
	Role       string     `json:"role"`
	IsActive   bool       `json:"is_active"`
	LastLogin  *time.Time `json:"last_login,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// UserUpdateDTO 用户部分更新
type UserUpdateDTO struct {
	Password   *string `json:"password,omitempty" validate:"omitempty,min=6,max=72"`
	Permission *string `json:"permission,omitempty"`
	Role       *string `json:"role,omitempty" validate:"omitempty,max=20"`
	IsActive   *bool   `json:"is_active,omitempty"`
}

// UserListDTO 用户分页列表
type UserListDTO struct {
	List []*UserDTO `json:"list"`
	Skip int        `json:"skip"`
	Limit int       `json:"limit"`
}
