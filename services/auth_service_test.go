package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/alexanderukhanov/restaurants-back-serverless/entity"
	"github.com/alexanderukhanov/restaurants-back-serverless/repository"
	"github.com/alexanderukhanov/restaurants-back-serverless/utils"
)

func TestLogin_AutoRegistersUnknownEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), "secret", time.Hour, "admin@test.com", "admin-pass")

	token, user, err := svc.Login("New@Test.com", "password1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.Equal(t, "new@test.com", user.Email) // normalize
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password1")))

	claims, err := utils.ParseToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, entity.RoleUser, claims.Role)
}

func TestLogin_AdminCredentialsGetAdminRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), "secret", time.Hour, "admin@test.com", "admin-pass")

	_, user, err := svc.Login("admin@test.com", "admin-pass")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, user.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db), "secret", time.Hour, "", "")

	_, _, err := svc.Login("someone@test.com", "password1")
	require.NoError(t, err)

	_, _, err = svc.Login("someone@test.com", "different1")
	assert.ErrorIs(t, err, ErrWrongPassword)

	// user เดิมไม่ถูกสร้างซ้ำ
	assert.EqualValues(t, 1, countRows(t, db, &entity.User{}))
}
