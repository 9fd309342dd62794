package model

import (
	"time"
)

type User struct {
	ID         uint64     `gorm:"primaryKey" json:"id"`
	Username   string     `gorm:"type:varchar(50);not null;uniqueIndex:idx_username" json:"username"`
	Password   string     `gorm:"type:varchar(255);not null" json:"-"`
	Permission Permission `gorm:"type:varchar(10);not null" json:"permission"`
	Role       string     `gorm:"type:varchar(20);not null" json:"role"`
	IsActive   bool       `gorm:"type:tinyint(1);not null" json:"is_active"`
	LastLogin  *time.Time `json:"last_login"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
