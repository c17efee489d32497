package entity

// membership row — มีแถวอยู่ = user คนนี้ไลก์ร้านนี้อยู่ (นับใน Restaurant.Likes แล้ว)
// composite key, ไม่มี surrogate id ไม่มี timestamps
type UserLike struct {
	UserID       uint `gorm:"primaryKey" json:"userId"`
	RestaurantID uint `gorm:"primaryKey" json:"restaurantId"`
}

func (UserLike) TableName() string { return "user_likes" }
