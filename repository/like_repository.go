package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/alexanderukhanov/restaurants-back-serverless/entity"
)

type LikeRepository struct {
	DB *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{DB: db}
}

// Exists เช็ค membership row ของคู่ (user, restaurant)
func (r *LikeRepository) Exists(db *gorm.DB, userID, restaurantID uint) (bool, error) {
	var like entity.UserLike
	err := db.Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).First(&like).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *LikeRepository) Create(tx *gorm.DB, userID, restaurantID uint) error {
	return tx.Create(&entity.UserLike{UserID: userID, RestaurantID: restaurantID}).Error
}

// DeleteReporting ลบแล้วบอกด้วยว่ามีแถวให้ลบจริงมั้ย — toggle ใช้แยกทิศ
func (r *LikeRepository) DeleteReporting(tx *gorm.DB, userID, restaurantID uint) (bool, error) {
	res := tx.Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Delete(&entity.UserLike{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *LikeRepository) DeleteByRestaurant(tx *gorm.DB, restaurantID uint) error {
	return tx.Where("restaurant_id = ?", restaurantID).Delete(&entity.UserLike{}).Error
}
