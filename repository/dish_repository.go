package repository

import (
	"gorm.io/gorm"

	"github.com/alexanderukhanov/restaurants-back-serverless/entity"
)

type DishRepository struct {
	DB *gorm.DB
}

func NewDishRepository(db *gorm.DB) *DishRepository {
	return &DishRepository{DB: db}
}

func (r *DishRepository) FindByID(id uint) (*entity.Dish, error) {
	var dish entity.Dish
	if err := r.DB.First(&dish, id).Error; err != nil {
		return nil, err
	}
	return &dish, nil
}

// FindByIDsTx โหลดเมนูทั้ง cart ในครั้งเดียว ภายใน transaction ของ order
// — ราคาที่ใช้คิดเงินต้องมาจาก read ตรงนี้เท่านั้น
func (r *DishRepository) FindByIDsTx(tx *gorm.DB, ids []uint) ([]entity.Dish, error) {
	var dishes []entity.Dish
	err := tx.Where("id IN ?", ids).Find(&dishes).Error
	return dishes, err
}

func (r *DishRepository) FindByRestaurant(restaurantID uint) ([]entity.Dish, error) {
	var dishes []entity.Dish
	err := r.DB.Where("restaurant_id = ?", restaurantID).Find(&dishes).Error
	return dishes, err
}

func (r *DishRepository) FindByName(name string) ([]entity.Dish, error) {
	var dishes []entity.Dish
	err := r.DB.Where("name = ?", name).Find(&dishes).Error
	return dishes, err
}

func (r *DishRepository) CreateBatch(tx *gorm.DB, dishes []entity.Dish) error {
	if len(dishes) == 0 {
		return nil
	}
	return tx.Create(&dishes).Error
}

func (r *DishRepository) UpdateFields(id uint, fields map[string]any) error {
	return r.DB.Model(&entity.Dish{}).Where("id = ?", id).Updates(fields).Error
}

func (r *DishRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.Dish{}, id).Error
}

func (r *DishRepository) DeleteByRestaurant(tx *gorm.DB, restaurantID uint) error {
	return tx.Unscoped().Where("restaurant_id = ?", restaurantID).Delete(&entity.Dish{}).Error
}
