package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderukhanov/restaurants-back-serverless/entity"
	"github.com/alexanderukhanov/restaurants-back-serverless/repository"
)

func TestUpdateDish(t *testing.T) {
	db := newTestDB(t)
	svc := NewDishService(repository.NewDishRepository(db), &fakeBlob{})

	rest := seedRestaurant(t, db, "sakura")
	dish := seedDish(t, db, rest.ID, "dish A", "10.00")

	cost := decimal.RequireFromString("12.75")
	fields := &DishFieldsIn{Name: strPtr("dish A deluxe"), Cost: &cost}
	require.NoError(t, svc.Update(context.Background(), dish.ID, fields))

	var updated entity.Dish
	require.NoError(t, db.First(&updated, dish.ID).Error)
	assert.Equal(t, "dish A deluxe", updated.Name)
	assert.True(t, updated.Cost.Equal(cost))
	assert.Equal(t, dish.Description, updated.Description) // field ที่ไม่ส่งไม่โดนแตะ
}

func TestUpdateDish_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewDishService(repository.NewDishRepository(db), &fakeBlob{})

	err := svc.Update(context.Background(), 31, &DishFieldsIn{Name: strPtr("x")})
	assert.True(t, IsNotFound(err))
}

func TestDeleteDish(t *testing.T) {
	db := newTestDB(t)
	blob := &fakeBlob{}
	svc := NewDishService(repository.NewDishRepository(db), blob)

	rest := seedRestaurant(t, db, "sakura")
	dish := seedDish(t, db, rest.ID, "dish A", "10.00")

	warning, err := svc.Delete(context.Background(), dish.ID)
	require.NoError(t, err)
	assert.Empty(t, warning)
	assert.Zero(t, countRows(t, db, &entity.Dish{}))
	assert.Equal(t, []string{dish.PreviewLink}, blob.deleted)
}

func TestDeleteDish_BlobFailureIsWarning(t *testing.T) {
	db := newTestDB(t)
	svc := NewDishService(repository.NewDishRepository(db), &fakeBlob{deleteErr: assert.AnError})

	rest := seedRestaurant(t, db, "sakura")
	dish := seedDish(t, db, rest.ID, "dish A", "10.00")

	warning, err := svc.Delete(context.Background(), dish.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, warning)
	assert.Zero(t, countRows(t, db, &entity.Dish{}))
}

func TestDeleteDish_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewDishService(repository.NewDishRepository(db), &fakeBlob{})

	_, err := svc.Delete(context.Background(), 77)
	assert.True(t, IsNotFound(err))
}
