package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alexanderukhanov/restaurants-back-serverless/pkg/resp"
	"github.com/alexanderukhanov/restaurants-back-serverless/services"
	"github.com/alexanderukhanov/restaurants-back-serverless/utils"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Service: s}
}

// POST /orders — place order; 201 body ว่างตาม behavior เดิม
func (oc *OrderController) Create(c *gin.Context) {
	var req services.PlaceOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	userID := utils.CurrentUserID(c)
	if _, err := oc.Service.PlaceOrder(c.Request.Context(), userID, &req); err != nil {
		handleServiceError(c, err)
		return
	}
	resp.Created(c, nil)
}

// DELETE /orders/:id
func (oc *OrderController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	if err := oc.Service.DeleteOrder(c.Request.Context(), uint(id)); err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, nil)
}

// GET /orders/:id/dishes — line items ของ order
func (oc *OrderController) LineItems(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	items, err := oc.Service.LineItems(c.Request.Context(), uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}
