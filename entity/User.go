package entity

import (
	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Role     string `gorm:"not null;default:user" json:"role"`

	// preload เฉพาะตอนต้องการ
	Orders []Order    `json:"-"`
	Likes  []UserLike `gorm:"foreignKey:UserID" json:"-"`
}
