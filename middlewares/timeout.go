package middlewares

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// Timeout ครอบ request ด้วย deadline สั้นๆ — ทุก query/transaction ข้างใน
// ใช้ ctx นี้ พอหมดเวลา GORM rollback ให้เองทั้งก้อน
func Timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
