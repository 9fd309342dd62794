package model

import (
	"time"
)

type Category struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	CategoryName string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_category_name" json:"category_name"`
	Description  *string   `gorm:"type:varchar(500)" json:"description"`
	Icon         *string   `gorm:"type:varchar(50)" json:"icon"`
	ColorCode    *string   `gorm:"type:varchar(7)" json:"color_code"`
	SortOrder    int       `gorm:"not null;default:0" json:"sort_order"`
	IsActive     bool      `gorm:"type:tinyint(1);not null" json:"is_active"`
	CreatedBy    uint64    `gorm:"not null" json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}
