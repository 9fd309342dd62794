package model

import (
	"time"
)

type MediaPath struct {
	ID            uint64    `gorm:"primaryKey" json:"id"`
	MediaID       uint64    `gorm:"not null;index:idx_media_id_sort" json:"media_id"`
	FilePath      string    `gorm:"type:varchar(512);not null" json:"file_path"`
	FileName      string    `gorm:"type:varchar(255);not null" json:"file_name"`
	FileSize      int64     `gorm:"not null" json:"file_size"`
	FileExtension string    `gorm:"type:varchar(10);not null;index:idx_file_extension" json:"file_extension"` // 'jpg', 'png', 'mp4'
	MimeType      *string   `gorm:"type:varchar(100)" json:"mime_type"` // 'image/jpeg', 'video/mp4'
	IsPrimary     bool      `gorm:"type:tinyint(1);not null" json:"is_primary"`
	SortOrder     int       `gorm:"not null;default:0;index:idx_media_id_sort" json:"sort_order"`
	CreatedBy     uint64    `gorm:"not null" json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
}

func (MediaPath) TableName() string {
	return "media_paths"
}
