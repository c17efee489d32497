package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/alexanderukhanov/restaurants-back-serverless/pkg/resp"
	"github.com/alexanderukhanov/restaurants-back-serverless/services"
)

// handleServiceError map business error → HTTP ที่ boundary เดียว
// ที่เหลือทั้งหมดถือเป็น unexpected (500) และส่ง message กลับไปช่วย debug
func handleServiceError(c *gin.Context, err error) {
	var nf *services.NotFoundError
	switch {
	case errors.As(err, &nf):
		resp.NotFound(c, nf.Error())
	case errors.Is(err, services.ErrPriceMismatch):
		resp.PaymentRequired(c, err.Error())
	case errors.Is(err, services.ErrEmptyOrder):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
