package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/alexanderukhanov/restaurants-back-serverless/entity"
)

// CatalogCache — denormalized read path ของ catalog บน Redis
// เก็บเอกสารร้าน+เมนูเป็น JSON ต่อ key, TTL กันข้อมูลค้างนาน
type CatalogCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{Client: client, TTL: ttl}
}

func restaurantKey(id uint) string {
	return "catalog:restaurant:" + strconv.FormatUint(uint64(id), 10)
}

func dishNameKey(name string) string {
	return "catalog:dishes-by-name:" + name
}

// GetRestaurant คืน (nil, nil) เมื่อ cache miss
func (c *CatalogCache) GetRestaurant(ctx context.Context, id uint) (*entity.Restaurant, error) {
	raw, err := c.Client.Get(ctx, restaurantKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var rest entity.Restaurant
	if err := json.Unmarshal(raw, &rest); err != nil {
		return nil, err
	}
	return &rest, nil
}

func (c *CatalogCache) SetRestaurant(ctx context.Context, rest *entity.Restaurant) error {
	raw, err := json.Marshal(rest)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, restaurantKey(rest.ID), raw, c.TTL).Err()
}

func (c *CatalogCache) DeleteRestaurant(ctx context.Context, id uint) error {
	return c.Client.Del(ctx, restaurantKey(id)).Err()
}

func (c *CatalogCache) GetDishesByName(ctx context.Context, name string) ([]entity.Dish, error) {
	raw, err := c.Client.Get(ctx, dishNameKey(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var dishes []entity.Dish
	if err := json.Unmarshal(raw, &dishes); err != nil {
		return nil, err
	}
	return dishes, nil
}

func (c *CatalogCache) SetDishesByName(ctx context.Context, name string, dishes []entity.Dish) error {
	raw, err := json.Marshal(dishes)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, dishNameKey(name), raw, c.TTL).Err()
}
