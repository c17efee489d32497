package repository

import (
	"gorm.io/gorm"

	"github.com/alexanderukhanov/restaurants-back-serverless/entity"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) FindByIDWithDishes(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Preload("Dishes").First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) Create(tx *gorm.DB, rest *entity.Restaurant) error {
	return tx.Create(rest).Error
}

// UpdateFields อัปเดตเฉพาะ field ที่ whitelist มาแล้วจาก service
func (r *RestaurantRepository) UpdateFields(id uint, fields map[string]any) error {
	return r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Updates(fields).Error
}

func (r *RestaurantRepository) ExistsTx(tx *gorm.DB, id uint) (bool, error) {
	var cnt int64
	if err := tx.Model(&entity.Restaurant{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *RestaurantRepository) Delete(tx *gorm.DB, id uint) error {
	return tx.Unscoped().Delete(&entity.Restaurant{}, id).Error
}

// ListIDsAfter — หน้าถัดไปของ catalog: id เรียงขึ้น เริ่มหลัง lastKey
func (r *RestaurantRepository) ListIDsAfter(lastKey uint, limit int) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&entity.Restaurant{}).
		Where("id > ?", lastKey).
		Order("id ASC").
		Limit(limit).
		Pluck("id", &ids).Error
	return ids, err
}

// RestaurantWithLiked — รายการร้านพร้อม flag ว่า user คนนี้ไลก์อยู่มั้ย
type RestaurantWithLiked struct {
	entity.Restaurant
	IsLiked bool `json:"isLiked"`
}

// ListWithLiked: ร้านทั้งหมดเรียงตาม id + isLiked ของ user ที่ขอ
func (r *RestaurantRepository) ListWithLiked(userID uint) ([]RestaurantWithLiked, error) {
	var out []RestaurantWithLiked
	err := r.DB.Model(&entity.Restaurant{}).
		Select("restaurants.*, user_likes.restaurant_id IS NOT NULL AS is_liked").
		Joins("LEFT JOIN user_likes ON user_likes.restaurant_id = restaurants.id AND user_likes.user_id = ?", userID).
		Order("restaurants.id ASC").
		Find(&out).Error
	return out, err
}
