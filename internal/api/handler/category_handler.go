package handler

import (
	"Mediahub/internal/api/dto"
	"Mediahub/internal/pkg/response"
	"Mediahub/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService service.CategoryService
}

func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateCategory 创建分类
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	userID := c.GetUint64("user_id")

	createDTO := &dto.CategoryCreateDTO{}
	if err := c.ShouldBindJSON(createDTO); err != nil {
		response.Error(c, err)
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), userID, createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, category)
}

// GetCategory 按 ID 查询分类，include_creator=true 时附带创建者名称
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("category_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	includeCreator, _ := strconv.ParseBool(c.DefaultQuery("include_creator", "false"))

	category, err := h.categoryService.GetCategoryById(c.Request.Context(), id, includeCreator)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, category)
}

// ListCategories 分页查询分类，支持启用状态过滤与模糊搜索
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	var isActive *bool
	if raw := c.Query("is_active"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			response.Error(c, service.ErrParamInvalid)
			return
		}
		isActive = &parsed
	}

	list, err := h.categoryService.ListCategories(c.Request.Context(), skip, limit, isActive, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// ListActiveCategories 返回全部启用分类，供前端选择器使用
func (h *CategoryHandler) ListActiveCategories(c *gin.Context) {
	list, err := h.categoryService.ListActiveCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// UpdateCategory 部分更新分类
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("category_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	updateDTO := &dto.CategoryUpdateDTO{}
	if err = c.ShouldBindJSON(updateDTO); err != nil {
		response.Error(c, err)
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), id, updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, category)
}

// DeleteCategory hard=true 物理删除，默认仅停用
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("category_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	hard, _ := strconv.ParseBool(c.DefaultQuery("hard", "false"))

	if err = h.categoryService.DeleteCategory(c.Request.Context(), id, hard); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// ToggleCategory 翻转分类启用状态
func (h *CategoryHandler) ToggleCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("category_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	category, err := h.categoryService.ToggleCategory(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, category)
}

// GetCategoryStats 分类下媒体统计
func (h *CategoryHandler) GetCategoryStats(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("category_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	stats, err := h.categoryService.GetCategoryStats(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}
