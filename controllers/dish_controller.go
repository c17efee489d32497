package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alexanderukhanov/restaurants-back-serverless/pkg/resp"
	"github.com/alexanderukhanov/restaurants-back-serverless/services"
)

type DishController struct {
	Service *services.DishService
}

func NewDishController(s *services.DishService) *DishController {
	return &DishController{Service: s}
}

type UpdateDishReq struct {
	ID uint `json:"id" binding:"required"`
	services.DishFieldsIn
}

// PUT /dishes (admin)
func (dc *DishController) Update(c *gin.Context) {
	var req UpdateDishReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := dc.Service.Update(c.Request.Context(), req.ID, &req.DishFieldsIn); err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, nil)
}

// DELETE /dishes/:id (admin)
func (dc *DishController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	warning, err := dc.Service.Delete(c.Request.Context(), uint(id))
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
