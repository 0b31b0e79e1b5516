package middleware

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/fekuna/coffee-storefront-service/internal/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const AdminKeyHeader = "X-Admin-Key"

func RequestLogger(log logger.ZapLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			log.Error("http request", append(fields, zap.String("errors", c.Errors.String()))...)
			return
		}
		log.Info("http request", fields...)
	}
}

// RequireAdminKey rejects requests whose X-Admin-Key header does not match key.
// An empty key disables the admin API entirely.
func RequireAdminKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetHeader(AdminKeyHeader)
		if key == "" || subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}
