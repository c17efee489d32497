package services

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/alexanderukhanov/restaurants-back-serverless/entity"
	"github.com/alexanderukhanov/restaurants-back-serverless/repository"
	"github.com/alexanderukhanov/restaurants-back-serverless/utils"
)

// AuthService — login แบบ find-or-create: email ที่ไม่เคยเห็นคือสมัครใหม่
type AuthService struct {
	userRepo      *repository.UserRepository
	jwtSecret     string
	jwtTTL        time.Duration
	adminEmail    string
	adminPassword string
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration, adminEmail, adminPassword string) *AuthService {
	return &AuthService{
		userRepo:      repo,
		jwtSecret:     secret,
		jwtTTL:        ttl,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
	}
}

// Login คืน token + user; user ใหม่ถูกสร้างพร้อม hash password
// role เป็น admin เมื่อ credentials ตรงกับ admin ที่ config ไว้
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hashed, hashErr := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if hashErr != nil {
			return "", nil, hashErr
		}
		role := entity.RoleUser
		if email == s.adminEmail && password == s.adminPassword {
			role = entity.RoleAdmin
		}
		user = &entity.User{Email: email, Password: string(hashed), Role: role}
		if err := s.userRepo.Create(user); err != nil {
			return "", nil, err
		}
	} else if err != nil {
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrWrongPassword
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) TokenTTL() time.Duration {
	return s.jwtTTL
}
