package controllers

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alexanderukhanov/restaurants-back-serverless/pkg/resp"
	"github.com/alexanderukhanov/restaurants-back-serverless/services"
)

// CatalogController — read path จาก KV store อย่างเดียว ไม่แตะ write
type CatalogController struct {
	Service *services.CatalogService
}

func NewCatalogController(s *services.CatalogService) *CatalogController {
	return &CatalogController{Service: s}
}

type RestaurantsPageReq struct {
	Limit            int  `json:"limit"`
	LastEvaluatedKey uint `json:"lastEvaluatedKey"`
}

// POST /catalog/restaurants — cursor pagination แบบ scan เดิม
func (cc *CatalogController) RestaurantsPage(c *gin.Context) {
	var req RestaurantsPageReq
	// body ว่าง = หน้าแรก default limit
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		resp.BadRequest(c, err.Error())
		return
	}

	items, next, err := cc.Service.RestaurantsPage(c.Request.Context(), req.LastEvaluatedKey, req.Limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "lastEvaluatedKey": next})
}

type DishesByNameReq struct {
	Name string `json:"name" binding:"required"`
}

// POST /catalog/dishes-by-name
func (cc *CatalogController) DishesByName(c *gin.Context) {
	var req DishesByNameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	dishes, err := cc.Service.DishesByName(c.Request.Context(), req.Name)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": dishes})
}

// GET /catalog/restaurants/:id
func (cc *CatalogController) RestaurantByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	rest, err := cc.Service.RestaurantByID(c.Request.Context(), uint(id))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	resp.OK(c, rest)
}
