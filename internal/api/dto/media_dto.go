package dto

import "time"

// MediaUploadDTO 上传表单字段，文件列表单独从 multipart form 读取
type MediaUploadDTO struct {
	Title       string  `form:"title" binding:"required" validate:"min=1,max=255"`
	CategoryID  uint64  `form:"category_id" binding:"required"`
	MediaType   string  `form:"media_type" binding:"required"`
	Description *string `form:"description" validate:"omitempty,max=1000"`
	IsActive    *bool   `form:"is_active"`
}

// FileUploadDTO 单个文件的落盘结果
type FileUploadDTO struct {
	FileName      string `json:"file_name"`
	FileSize      int64  `json:"file_size"`
	FileExtension string `json:"file_extension"`
	MimeType      string `json:"mime_type"`
	FilePath      string `json:"file_path"`
}

// MediaCreateDTO 上传成功返回
type MediaCreateDTO struct {
	MediaID       uint64           `json:"media_id"`
	Title         string           `json:"title"`
	Description   *string          `json:"description,omitempty"`
	CategoryID    uint64           `json:"category_id"`
	MediaType     string           `json:"media_type"`
	UploadedFiles []*FileUploadDTO `json:"uploaded_files"`
	TotalFiles    int              `json:"total_files"`
}

// MediaPathDTO 媒体文件路径
type MediaPathDTO struct {
	ID            uint64    `json:"id"`
	FilePath      string    `json:"file_path"`
	FileName      string    `json:"file_name"`
	FileSize      int64     `json:"file_size"`
	FileExtension string    `json:"file_extension"`
	MimeType      *string   `json:"mime_type"`
	IsPrimary     bool      `json:"is_primary"`
	SortOrder     int       `json:"sort_order"`
	CreatedAt     time.Time `json:"created_at"`
}

// MediaDTO 媒体信息，附带分类名称与全部路径
type MediaDTO struct {
	ID           uint64          `json:"id"`
	Title        string          `json:"title"`
	Description  *string         `json:"description,omitempty"`
	CategoryID   uint64          `json:"category_id"`
	CategoryName *string         `json:"category_name"`
	UserID       uint64          `json:"user_id"`
	MediaType    string          `json:"media_type"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	Paths        []*MediaPathDTO `json:"paths"`
}

// DateRangeDTO 查询时间窗口
type DateRangeDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// MediaMonthDTO 当月媒体列表，响应形状为对外固定契约
type MediaMonthDTO struct {
	Success   bool         `json:"success"`
	Data      []*MediaDTO  `json:"data"`
	Total     int          `json:"total"`
	DateRange DateRangeDTO `json:"date_range"`
}
