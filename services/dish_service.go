package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/alexanderukhanov/restaurants-back-serverless/repository"
)

type DishService struct {
	Repo  *repository.DishRepository
	Blob  BlobStore
	Cache CacheInvalidator // optional
}

func NewDishService(repo *repository.DishRepository, blob BlobStore) *DishService {
	return &DishService{Repo: repo, Blob: blob}
}

// DishFieldsIn — whitelist สำหรับแก้เมนู
type DishFieldsIn struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	PreviewLink *string          `json:"previewLink"`
	Cost        *decimal.Decimal `json:"cost"`
}

func (f *DishFieldsIn) toUpdates() map[string]any {
	updates := map[string]any{}
	if f == nil {
		return updates
	}
	if f.Name != nil {
		updates["name"] = *f.Name
	}
	if f.Description != nil {
		updates["description"] = *f.Description
	}
	if f.PreviewLink != nil {
		updates["preview_link"] = *f.PreviewLink
	}
	if f.Cost != nil {
		updates["cost"] = *f.Cost
	}
	return updates
}

func (s *DishService) Update(ctx context.Context, id uint, fields *DishFieldsIn) error {
	dish, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: "Dish"}
		}
		return err
	}
	updates := fields.toUpdates()
	if len(updates) == 0 {
		return nil
	}
	if err := s.Repo.UpdateFields(id, updates); err != nil {
		return err
	}
	s.invalidate(ctx, dish.RestaurantID)
	return nil
}

// Delete ลบเมนูเดี่ยว รูปบน blob เป็น best effort เหมือนตอนลบร้าน
func (s *DishService) Delete(ctx context.Context, id uint) (warning string, err error) {
	dish, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", &NotFoundError{Entity: "Dish"}
		}
		return "", err
	}

	if blobErr := s.Blob.DeleteByLinks(ctx, []string{dish.PreviewLink}); blobErr != nil {
		warning = "preview cleanup failed: " + blobErr.Error()
		logrus.WithError(blobErr).WithField("dishId", id).Warn("blob deletion failed")
	}

	if err := s.Repo.Delete(id); err != nil {
		return warning, err
	}
	s.invalidate(ctx, dish.RestaurantID)
	return warning, nil
}

func (s *DishService) invalidate(ctx context.Context, restaurantID uint) {
	if s.Cache != nil {
		s.Cache.InvalidateRestaurant(ctx, restaurantID)
	}
}
