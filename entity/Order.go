package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	TotalCost decimal.Decimal `gorm:"type:numeric(10,2)" json:"totalCost"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	// line items หายไปพร้อม order (cascade ใน DB)
	Dishes []DishInOrder `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
}
