package middleware

import (
	"Mediahub/internal/model"
	"Mediahub/internal/pkg/response"
	"Mediahub/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckPermission 要求当前用户具备指定权限等级，必须位于 Auth 之后
func CheckPermission(required model.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		permission := model.Permission(c.GetString("permission"))
		// admin 覆盖所有权限等级
		if permission != required && permission != model.PermissionAdmin {
			response.Fail(c, response.Forbidden, service.ErrPermissionDenied.Error())
			c.Abort()
			return
		}
		c.Next()
	}
}
