package security

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// UserClaims 定义了 Token 中需要包含的业务信息
type UserClaims struct {
	Username   string `json:"username"`
	Permission string `json:"permission"`
	Role       string `json:"role"`
	IsActive   bool   `json:"is_active"`
	jwt.RegisteredClaims
}

// UserID 从 sub 中解析用户 ID
func (c *UserClaims) UserID() (uint64, error) {
	return strconv.ParseUint(c.Subject, 10, 64)
}
