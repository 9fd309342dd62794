package handler

import (
	"Mediahub/internal/api/dto"
	"Mediahub/internal/model"
	"Mediahub/internal/pkg/response"
	"Mediahub/internal/service"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	mediaService service.MediaService
}

func NewMediaHandler(mediaService service.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// Upload 上传媒体：表单字段加 1~10 个文件，全部成功或全部回滚
func (h *MediaHandler) Upload(c *gin.Context) {
	userID := c.GetUint64("user_id")

	uploadDTO := &dto.MediaUploadDTO{}
	if err := c.ShouldBind(uploadDTO); err != nil {
		response.Error(c, err)
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	files := form.File["files"]

	result, err := h.mediaService.CreateMediaWithFiles(c.Request.Context(), userID, uploadDTO, files)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetMedia 按 ID 查询媒体及其全部文件
func (h *MediaHandler) GetMedia(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("media_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	media, err := h.mediaService.GetMediaWithPaths(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, media)
}

// GetMediaFiles 仅返回媒体的文件列表
func (h *MediaHandler) GetMediaFiles(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("media_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	media, err := h.mediaService.GetMediaWithPaths(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, media.Paths)
}

// CurrentMonth 查询当月媒体，响应体形状为对外固定契约，不走统一封装
func (h *MediaHandler) CurrentMonth(c *gin.Context) {
	var categoryID *uint64
	if raw := c.Query("category_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.Error(c, service.ErrParamInvalid)
			return
		}
		categoryID = &parsed
	}

	var mediaType *model.MediaType
	if raw := c.Query("media_type"); raw != "" {
		parsed, ok := model.ParseMediaType(raw)
		if !ok {
			response.Error(c, service.ErrParamInvalid)
			return
		}
		mediaType = &parsed
	}

	result, err := h.mediaService.GetMediaCurrentMonth(c.Request.Context(), categoryID, mediaType)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
