package server

import (
	"net/http"

	"github.com/fekuna/coffee-storefront-service/internal/pkg/logger"
	"github.com/fekuna/coffee-storefront-service/internal/pkg/middleware"
	producthandler "github.com/fekuna/coffee-storefront-service/internal/product/handler"
	propertyhandler "github.com/fekuna/coffee-storefront-service/internal/property/handler"
	"github.com/gin-gonic/gin"
)

// NewHTTPRouter builds the storefront and admin REST API. Admin routes live under
// /api/v1/admin and require the X-Admin-Key header to match adminKey.
func NewHTTPRouter(log logger.ZapLogger, adminKey string, products *producthandler.HTTPHandler, properties *propertyhandler.HTTPHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	admin := v1.Group("/admin")
	admin.Use(middleware.RequireAdminKey(adminKey))

	products.RegisterRoutes(v1, admin)
	properties.RegisterRoutes(admin)
	return r
}
