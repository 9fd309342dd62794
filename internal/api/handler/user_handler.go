package handler

import (
	"Mediahub/internal/api/dto"
	"Mediahub/internal/pkg/response"
	"Mediahub/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Me 返回当前登录用户信息
func (h *UserHandler) Me(c *gin.Context) {
	userID := c.GetUint64("user_id")

	user, err := h.userService.GetUserById(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

// GetUser 按 ID 查询用户
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	user, err := h.userService.GetUserById(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

// ListUsers 分页查询用户列表
func (h *UserHandler) ListUsers(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	list, err := h.userService.GetAllUsers(c.Request.Context(), skip, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// UpdateUser 部分更新用户
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	updateDTO := &dto.UserUpdateDTO{}
	if err = c.ShouldBindJSON(updateDTO); err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), id, updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

// ChangePassword 当前用户修改密码
func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID := c.GetUint64("user_id")

	changeDTO := &dto.ChangePasswordDTO{}
	if err := c.ShouldBindJSON(changeDTO); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), userID, changeDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// DeleteUser 删除用户
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
