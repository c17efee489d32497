package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/alexanderukhanov/restaurants-back-serverless/pkg/resp"
	"github.com/alexanderukhanov/restaurants-back-serverless/services"
	"github.com/alexanderukhanov/restaurants-back-serverless/utils"
)

type UserController struct {
	Service *services.UserService
}

func NewUserController(s *services.UserService) *UserController {
	return &UserController{Service: s}
}

// GET /profile
func (u *UserController) Profile(c *gin.Context) {
	user, err := u.Service.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": user.ID, "email": user.Email, "role": user.Role})
}
