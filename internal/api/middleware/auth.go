package middleware

import (
	"Mediahub/internal/pkg/consts"
	"Mediahub/internal/pkg/redis"
	"Mediahub/internal/pkg/response"
	"Mediahub/internal/pkg/security"
	"Mediahub/internal/repository"
	"Mediahub/internal/service"
	log "log/slog"
	"strings"

	"github.com/gin-gonic/gin"
)

// ExtractToken 按优先级提取 Token：Authorization 头优先，其次会话 Cookie
func ExtractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}

	if cookie, err := c.Cookie(consts.AuthCookieName); err == nil {
		return cookie
	}
	return ""
}

// Auth 认证中间件：校验 Token、黑名单与用户当前状态
func Auth(tokenManager *security.TokenManager, userRepo repository.UserRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ExtractToken(c)
		if tokenString == "" {
			response.Fail(c, response.Unauthorized, service.ErrInvalidCredentials.Error())
			c.Abort()
			return
		}

		// 已注销的 Token 直接拒绝
		signature, err := security.ExtractSignature(tokenString)
		if err != nil {
			response.Fail(c, response.Unauthorized, service.ErrInvalidCredentials.Error())
			c.Abort()
			return
		}
		denied, err := redis.GetValue(c.Request.Context(), consts.TokenDenyKey+signature)
		if err != nil {
			log.Error("查询 Token 黑名单失败", "err", err)
			response.Fail(c, response.InternalServerError, service.UnExpectedError.Error())
			c.Abort()
			return
		}
		if denied != "" {
			response.Fail(c, response.Unauthorized, service.ErrInvalidCredentials.Error())
			c.Abort()
			return
		}

		claims, err := tokenManager.ValidateToken(tokenString)
		if err != nil {
			response.Fail(c, response.Unauthorized, service.ErrInvalidCredentials.Error())
			c.Abort()
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			response.Fail(c, response.Unauthorized, service.ErrInvalidCredentials.Error())
			c.Abort()
			return
		}

		// 签发后用户可能已被删除或停用，以库内状态为准
		user, err := userRepo.GetUserById(c.Request.Context(), userID)
		if err != nil {
			log.Error("查询用户失败", "err", err)
			response.Fail(c, response.InternalServerError, service.UnExpectedError.Error())
			c.Abort()
			return
		}
		if user == nil {
			response.Fail(c, response.Unauthorized, service.ErrInvalidCredentials.Error())
			c.Abort()
			return
		}
		if !user.IsActive {
			response.Fail(c, response.Forbidden, service.ErrUserInactive.Error())
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Set("username", user.Username)
		c.Set("permission", string(user.Permission))
		c.Set("token", tokenString)

		c.Next()
	}
}
