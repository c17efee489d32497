package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Dish struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	PreviewLink string `json:"previewLink"`

	// ราคาเป็น decimal เป๊ะๆ — ส่งเป็น string ใน JSON กัน floating point
	Cost decimal.Decimal `gorm:"type:numeric(10,2)" json:"cost"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`
}
