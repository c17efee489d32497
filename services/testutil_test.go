package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/alexanderukhanov/restaurants-back-serverless/entity"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// in-memory sqlite หายถ้าเปิด connection ที่สอง
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{},
		&entity.Dish{},
		&entity.UserLike{},
		&entity.Order{},
		&entity.DishInOrder{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	u := &entity.User{Email: email, Password: "hash", Role: entity.RoleUser}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedRestaurant(t *testing.T, db *gorm.DB, name string) *entity.Restaurant {
	t.Helper()
	r := &entity.Restaurant{
		Type:        "sushi",
		Address:     "somewhere 1",
		Name:        name,
		PreviewLink: "https://assets.s3.amazonaws.com/" + name + ".png",
	}
	require.NoError(t, db.Create(r).Error)
	return r
}

func seedDish(t *testing.T, db *gorm.DB, restaurantID uint, name, cost string) *entity.Dish {
	t.Helper()
	d := &entity.Dish{
		Name:         name,
		Description:  name + " description",
		PreviewLink:  "https://assets.s3.amazonaws.com/" + name + ".png",
		Cost:         decimal.RequireFromString(cost),
		RestaurantID: restaurantID,
	}
	require.NoError(t, db.Create(d).Error)
	return d
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

// fakeBlob — BlobStore ปลอมสำหรับเทสต์ฝั่งร้าน/เมนู
type fakeBlob struct {
	uploaded  []string
	deleted   []string
	deleteErr error
}

func (f *fakeBlob) UploadBase64(_ context.Context, _, entityName string) (string, error) {
	link := "https://assets.s3.amazonaws.com/" + entityName + ".png"
	f.uploaded = append(f.uploaded, link)
	return link, nil
}

func (f *fakeBlob) DeleteByLinks(_ context.Context, links []string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, links...)
	return nil
}
