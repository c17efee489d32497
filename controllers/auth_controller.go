package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexanderukhanov/restaurants-back-serverless/pkg/resp"
	"github.com/alexanderukhanov/restaurants-back-serverless/services"
)

// ชื่อ cookie เดิมจากฝั่ง frontend — เปลี่ยนไม่ได้
const AuthCookie = "ExpressGeneratorTs"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(s *services.AuthService) *AuthController {
	return &AuthController{Service: s}
}

// POST /auth/login — email ใหม่ = สมัครเลย, สำเร็จแล้วตั้ง JWT cookie
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, _, err := a.Service.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrWrongPassword) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	maxAge := int(a.Service.TokenTTL().Seconds())
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(AuthCookie, token, maxAge, "/", "", true, true)
	resp.OK(c, nil)
}

// POST /auth/logout
func (a *AuthController) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(AuthCookie, "", -1, "/", "", true, true)
	resp.OK(c, nil)
}
