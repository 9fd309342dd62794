package handler

import (
	"Mediahub/internal/api/dto"
	"Mediahub/internal/api/middleware"
	"Mediahub/internal/pkg/consts"
	"Mediahub/internal/pkg/response"
	"Mediahub/internal/pkg/security"
	"Mediahub/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService  service.AuthService
	tokenManager *security.TokenManager
}

func NewAuthHandler(authService service.AuthService, tokenManager *security.TokenManager) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		tokenManager: tokenManager,
	}
}

// setAuthCookie 写入 HttpOnly 会话 Cookie，有效期与 Token 对齐
func (h *AuthHandler) setAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(consts.AuthCookieName, token, int(h.tokenManager.Expiration().Seconds()), "/", "", false, true)
}

func (h *AuthHandler) clearAuthCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(consts.AuthCookieName, "", -1, "/", "", false, true)
}

// Register 用户注册
func (h *AuthHandler) Register(c *gin.Context) {
	registerDTO := &dto.RegisterDTO{}
	if err := c.ShouldBindJSON(registerDTO); err != nil {
		response.Error(c, err)
		return
	}

	token, user, err := h.authService.Register(c.Request.Context(), registerDTO)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.setAuthCookie(c, token)
	response.Success(c, gin.H{
		"token": token,
		"user":  user,
	})
}

// Login 用户登录
func (h *AuthHandler) Login(c *gin.Context) {
	loginDTO := &dto.LoginDTO{}
	if err := c.ShouldBindJSON(loginDTO); err != nil {
		response.Error(c, err)
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), loginDTO)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.setAuthCookie(c, token)
	response.Success(c, gin.H{
		"token": token,
		"user":  user,
	})
}

// Logout 注销当前 Token 并清除 Cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetString("token")
	if token == "" {
		token = middleware.ExtractToken(c)
	}

	if token != "" {
		if err := h.authService.Logout(c.Request.Context(), token); err != nil {
			response.Error(c, err)
			return
		}
	}

	h.clearAuthCookie(c)
	response.Success(c, nil)
}

// Refresh 重新签发 Token
func (h *AuthHandler) Refresh(c *gin.Context) {
	userID := c.GetUint64("user_id")

	token, err := h.authService.RefreshToken(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.setAuthCookie(c, token)
	response.Success(c, gin.H{"token": token})
}
