package dto

// RegisterDTO 注册
type RegisterDTO struct {
	Username   string  `json:"username" binding:"required" validate:"min=3,max=50"`
	Password   string  `json:"password" binding:"required" validate:"min=6,max=72"`
	Permission *string `json:"permission,omitempty"`
	Role       *string `json:"role,omitempty" validate:"omitempty,max=20"`
}

// LoginDTO 登录凭证
type LoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordDTO 修改密码
type ChangePasswordDTO struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required" validate:"min=6,max=72"`
}
