package dto

import "time"

// CategoryCreateDTO 创建分类
type CategoryCreateDTO struct {
	CategoryName string  `json:"category_name" binding:"required" validate:"min=1,max=100"`
	Description  *string `json:"description,omitempty" validate:"omitempty,max=500"`
	Icon         *string `json:"icon,omitempty" validate:"omitempty,max=50"`
	ColorCode    *string `json:"color_code,omitempty" validate:"omitempty,max=7"`
	SortOrder    int     `json:"sort_order"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

// CategoryUpdateDTO 分类部分更新
type CategoryUpdateDTO struct {
	CategoryName *string `json:"category_name,omitempty" validate:"omitempty,min=1,max=100"`
	Description  *string `json:"description,omitempty" validate:"omitempty,max=500"`
	Icon         *string `json:"icon,omitempty" validate:"omitempty,max=50"`
	ColorCode    *string `json:"color_code,omitempty" validate:"omitempty,max=7"`
	SortOrder    *int    `json:"sort_order,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

// CategoryDTO 分类信息
type CategoryDTO struct {
	ID           uint64    `json:"id"`
	CategoryName string    `json:"category_name"`
	Description  *string   `json:"description,omitempty"`
	Icon         *string   `json:"icon,omitempty"`
	ColorCode    *string   `json:"color_code,omitempty"`
	SortOrder    int       `json:"sort_order"`
	IsActive     bool      `json:"is_active"`
	CreatedBy    uint64    `json:"created_by"`
	CreatorName  *string   `json:"creator_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CategoryListDTO 分类分页列表
type CategoryListDTO struct {
	List  []*CategoryDTO `json:"list"`
	Total int64          `json:"total"`
}

// CategoryStatsDTO 分类统计
type CategoryStatsDTO struct {
	CategoryID    uint64 `json:"category_id"`
	CategoryName  string `json:"category_name"`
	TotalMedia    int64  `json:"total_media"`
	ActiveMedia   int64  `json:"active_media"`
	InactiveMedia int64  `json:"inactive_media"`
	ImageCount    int64  `json:"image_count"`
	VideoCount    int64  `json:"video_count"`
}
