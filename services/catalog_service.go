package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/alexanderukhanov/restaurants-back-serverless/entity"
	"github.com/alexanderukhanov/restaurants-back-serverless/repository"
)

// KVCatalog — key-value store ของ read path (Redis ใน prod)
type KVCatalog interface {
	GetRestaurant(ctx context.Context, id uint) (*entity.Restaurant, error)
	SetRestaurant(ctx context.Context, rest *entity.Restaurant) error
	DeleteRestaurant(ctx context.Context, id uint) error
	GetDishesByName(ctx context.Context, name string) ([]entity.Dish, error)
	SetDishesByName(ctx context.Context, name string, dishes []entity.Dish) error
}

// CatalogService — read path ที่ denormalize แล้ว: เอกสารร้าน+เมนูจาก
// KV store, miss แล้วค่อยไปอ่าน Postgres (read-through)
type CatalogService struct {
	Cache    KVCatalog
	RestRepo *repository.RestaurantRepository
	DishRepo *repository.DishRepository
}

func NewCatalogService(cache KVCatalog, restRepo *repository.RestaurantRepository, dishRepo *repository.DishRepository) *CatalogService {
	return &CatalogService{Cache: cache, RestRepo: restRepo, DishRepo: dishRepo}
}

// RestaurantByID — เอกสารร้านเดียว read-through
func (s *CatalogService) RestaurantByID(ctx context.Context, id uint) (*entity.Restaurant, error) {
	cached, err := s.Cache.GetRestaurant(ctx, id)
	if err != nil {
		// cache พังไม่ควรล้ม read path — ตกไปอ่าน DB
		logrus.WithError(err).Warn("catalog cache read failed")
	}
	if cached != nil {
		return cached, nil
	}

	rest, err := s.RestRepo.FindByIDWithDishes(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Restaurant"}
		}
		return nil, err
	}
	if err := s.Cache.SetRestaurant(ctx, rest); err != nil {
		logrus.WithError(err).Warn("catalog cache write failed")
	}
	return rest, nil
}

// RestaurantsPage ไล่หน้าเหมือน DynamoDB scan เดิม: limit + lastEvaluatedKey
// ลำดับ id จาก DB, ตัวเอกสารผ่าน cache
func (s *CatalogService) RestaurantsPage(ctx context.Context, lastKey uint, limit int) ([]entity.Restaurant, uint, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	ids, err := s.RestRepo.ListIDsAfter(lastKey, limit)
	if err != nil {
		return nil, 0, err
	}

	items := make([]entity.Restaurant, 0, len(ids))
	for _, id := range ids {
		rest, err := s.RestaurantByID(ctx, id)
		if err != nil {
			if IsNotFound(err) {
				continue // ลบไประหว่างไล่หน้า
			}
			return nil, 0, err
		}
		items = append(items, *rest)
	}

	var next uint
	if len(ids) == limit {
		next = ids[len(ids)-1]
	}
	return items, next, nil
}

func (s *CatalogService) DishesByName(ctx context.Context, name string) ([]entity.Dish, error) {
	cached, err := s.Cache.GetDishesByName(ctx, name)
	if err != nil {
		logrus.WithError(err).Warn("catalog cache read failed")
	}
	if cached != nil {
		return cached, nil
	}

	dishes, err := s.DishRepo.FindByName(name)
	if err != nil {
		return nil, err
	}
	if err := s.Cache.SetDishesByName(ctx, name, dishes); err != nil {
		logrus.WithError(err).Warn("catalog cache write failed")
	}
	return dishes, nil
}

// InvalidateRestaurant — write path ของ catalog เรียกตรงนี้หลังแก้ข้อมูล
// dish-name keys ปล่อยหมดอายุตาม TTL
func (s *CatalogService) InvalidateRestaurant(ctx context.Context, id uint) {
	if err := s.Cache.DeleteRestaurant(ctx, id); err != nil {
		logrus.WithError(err).WithField("restaurantId", id).Warn("catalog invalidation failed")
	}
}
