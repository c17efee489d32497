package entity

// line item — composite key (orderId, dishId)
type DishInOrder struct {
	OrderID uint `gorm:"primaryKey" json:"orderId"`
	DishID  uint `gorm:"primaryKey" json:"dishId"`
	Amount  int  `gorm:"not null" json:"amount"`
}

func (DishInOrder) TableName() string { return "dish_in_orders" }
