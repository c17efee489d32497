package repository

import (
	"gorm.io/gorm"

	"github.com/alexanderukhanov/restaurants-back-serverless/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

// CreateLineItems — bulk insert ต่อจาก header ใน transaction เดียวกัน
func (r *OrderRepository) CreateLineItems(tx *gorm.DB, items []entity.DishInOrder) error {
	if len(items) == 0 {
		return nil
	}
	return tx.Create(&items).Error
}

func (r *OrderRepository) FindByID(db *gorm.DB, id uint) (*entity.Order, error) {
	var o entity.Order
	if err := db.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetLineItems(db *gorm.DB, orderID uint) ([]entity.DishInOrder, error) {
	var items []entity.DishInOrder
	err := db.Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

// Delete — line items หายตาม ON DELETE CASCADE ใน schema
func (r *OrderRepository) Delete(db *gorm.DB, id uint) error {
	return db.Unscoped().Delete(&entity.Order{}, id).Error
}
