package model

import (
	"time"
)

type Media struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null;index:idx_title" json:"title"`
	Description *string   `gorm:"type:varchar(1000)" json:"description"`
	CategoryID  uint64    `gorm:"not null;index:idx_category_id" json:"category_id"`
	UserID      uint64    `gorm:"not null;index:idx_user_id" json:"user_id"`
	MediaType   MediaType `gorm:"type:varchar(20);not null;index:idx_media_type" json:"media_type"`
	IsActive    bool      `gorm:"type:tinyint(1);not null;index:idx_is_active" json:"is_active"`
	UpdatedBy   *uint64   `json:"updated_by"`
	CreatedAt   time.Time `gorm:"index:idx_created_at" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// 仅保留父到子的单向关联
	Paths []MediaPath `gorm:"foreignKey:MediaID;references:ID;constraint:OnDelete:CASCADE" json:"paths"`
}

func (Media) TableName() string {
	return "media"
}
