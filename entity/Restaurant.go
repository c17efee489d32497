package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Type        string `json:"type"`
	Address     string `json:"address"`
	Name        string `json:"name"`
	PreviewLink string `json:"previewLink"`

	// denormalized counter, ห้ามแก้ตรงๆ — เปลี่ยนผ่าน like toggle เท่านั้น
	Likes int64 `gorm:"not null;default:0" json:"likes"`

	Dishes  []Dish     `json:"dishes,omitempty"`
	Orders  []Order    `json:"-"`
	LikedBy []UserLike `gorm:"foreignKey:RestaurantID" json:"-"`
}
