package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alexanderukhanov/restaurants-back-serverless/pkg/resp"
	"github.com/alexanderukhanov/restaurants-back-serverless/services"
	"github.com/alexanderukhanov/restaurants-back-serverless/utils"
)

type RestaurantController struct {
	Service *services.RestaurantService
}

func NewRestaurantController(s *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Service: s}
}

// POST /restaurants (admin) — ร้านใหม่ + เมนูชุดแรก
func (rc *RestaurantController) Create(c *gin.Context) {
	var req services.CreateRestaurantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	id, err := rc.Service.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.Created(c, gin.H{"id": id})
}

type UpdateRestaurantReq struct {
	ID uint `json:"id" binding:"required"`
	services.RestaurantFieldsIn
}

// PUT /restaurants (admin)
func (rc *RestaurantController) Update(c *gin.Context) {
	var req UpdateRestaurantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := rc.Service.Update(c.Request.Context(), req.ID, &req.RestaurantFieldsIn); err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, nil)
}

// POST /restaurants/like — toggle ไลก์ของ user ปัจจุบัน
func (rc *RestaurantController) ToggleLike(c *gin.Context) {
	var req UpdateRestaurantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	userID := utils.CurrentUserID(c)
	if err := rc.Service.ToggleLike(c.Request.Context(), userID, req.ID, &req.RestaurantFieldsIn); err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, nil)
}

// DELETE /restaurants/:id (admin)
func (rc *RestaurantController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	warning, err := rc.Service.Delete(c.Request.Context(), uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if warning != "" {
		resp.OK(c, gin.H{"warning": warning})
		return
	}
	resp.OK(c, nil)
}

// GET /restaurants — ทุกร้านพร้อมเมนู + isLiked ของคนที่ขอ
func (rc *RestaurantController) List(c *gin.Context) {
	items, err := rc.Service.List(c.Request.Context(), utils.CurrentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, items)
}
