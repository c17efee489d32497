package services

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/alexanderukhanov/restaurants-back-serverless/entity"
	"github.com/alexanderukhanov/restaurants-back-serverless/repository"
)

// fakeKV — KVCatalog ในหน่วยความจำแทน Redis
type fakeKV struct {
	restaurants map[uint]*entity.Restaurant
	dishNames   map[string][]entity.Dish
}

func newFakeKV() *fakeKV {
	return &fakeKV{
		restaurants: map[uint]*entity.Restaurant{},
		dishNames:   map[string][]entity.Dish{},
	}
}

func (f *fakeKV) GetRestaurant(_ context.Context, id uint) (*entity.Restaurant, error) {
	return f.restaurants[id], nil
}
func (f *fakeKV) SetRestaurant(_ context.Context, rest *entity.Restaurant) error {
	f.restaurants[rest.ID] = rest
	return nil
}
func (f *fakeKV) DeleteRestaurant(_ context.Context, id uint) error {
	delete(f.restaurants, id)
	return nil
}
func (f *fakeKV) GetDishesByName(_ context.Context, name string) ([]entity.Dish, error) {
	return f.dishNames[name], nil
}
func (f *fakeKV) SetDishesByName(_ context.Context, name string, dishes []entity.Dish) error {
	f.dishNames[name] = dishes
	return nil
}

func newCatalogService(db *gorm.DB, kv KVCatalog) *CatalogService {
	return NewCatalogService(kv, repository.NewRestaurantRepository(db), repository.NewDishRepository(db))
}

func TestCatalogRestaurantByID_ReadThrough(t *testing.T) {
	db := newTestDB(t)
	kv := newFakeKV()
	svc := newCatalogService(db, kv)

	rest := seedRestaurant(t, db, "sakura")
	seedDish(t, db, rest.ID, "dish A", "10.00")

	// miss แรก hydrate จาก DB
	doc, err := svc.RestaurantByID(context.Background(), rest.ID)
	require.NoError(t, err)
	assert.Equal(t, "sakura", doc.Name)
	assert.Len(t, doc.Dishes, 1)
	assert.Contains(t, kv.restaurants, rest.ID)

	// hit ต่อมาเสิร์ฟจาก cache — ร้านหายจาก DB แล้วก็ยังได้เอกสารเดิม
	require.NoError(t, db.Delete(&entity.Restaurant{}, rest.ID).Error)
	doc, err = svc.RestaurantByID(context.Background(), rest.ID)
	require.NoError(t, err)
	assert.Equal(t, "sakura", doc.Name)
}

func TestCatalogRestaurantByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(db, newFakeKV())

	_, err := svc.RestaurantByID(context.Background(), 404)
	assert.True(t, IsNotFound(err))
}

func TestCatalogInvalidateRestaurant(t *testing.T) {
	db := newTestDB(t)
	kv := newFakeKV()
	svc := newCatalogService(db, kv)

	rest := seedRestaurant(t, db, "sakura")
	_, err := svc.RestaurantByID(context.Background(), rest.ID)
	require.NoError(t, err)
	require.Contains(t, kv.restaurants, rest.ID)

	svc.InvalidateRestaurant(context.Background(), rest.ID)
	assert.NotContains(t, kv.restaurants, rest.ID)
}

func TestCatalogRestaurantsPage_WalksAllInOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(db, newFakeKV())

	for i := 0; i < 5; i++ {
		seedRestaurant(t, db, "place "+strconv.Itoa(i))
	}

	var seen []string
	var lastKey uint
	for {
		items, next, err := svc.RestaurantsPage(context.Background(), lastKey, 2)
		require.NoError(t, err)
		for _, it := range items {
			seen = append(seen, it.Name)
		}
		if next == 0 {
			break
		}
		lastKey = next
	}

	assert.Equal(t, []string{"place 0", "place 1", "place 2", "place 3", "place 4"}, seen)
}

func TestCatalogDishesByName_CachesResult(t *testing.T) {
	db := newTestDB(t)
	kv := newFakeKV()
	svc := newCatalogService(db, kv)

	rest := seedRestaurant(t, db, "sakura")
	seedDish(t, db, rest.ID, "tom yum", "7.25")
	seedDish(t, db, rest.ID, "tom yum", "8.00") // ชื่อซ้ำคนละจาน

	dishes, err := svc.DishesByName(context.Background(), "tom yum")
	require.NoError(t, err)
	assert.Len(t, dishes, 2)
	assert.Contains(t, kv.dishNames, "tom yum")

	// hit ครั้งสองมาจาก cache
	require.NoError(t, db.Unscoped().Where("name = ?", "tom yum").Delete(&entity.Dish{}).Error)
	dishes, err = svc.DishesByName(context.Background(), "tom yum")
	require.NoError(t, err)
	assert.Len(t, dishes, 2)
}
