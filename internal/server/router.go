package server

import (
	"net/http"

	"equiprent/internal/middleware"
	"equiprent/internal/modules/catalog"
	"equiprent/internal/modules/customer"
	"equiprent/internal/modules/dashboard"
	"equiprent/internal/modules/equipment"
	"equiprent/internal/modules/events"
	"equiprent/internal/modules/maintenance"
	"equiprent/internal/modules/rental"
	"equiprent/internal/repository"

	"github.com/gin-gonic/gin"
)

// NewRouter wires every module onto a fresh gin engine under /api.
func NewRouter(store *repository.Store, hub *events.Hub, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.ErrorLogger(),
		middleware.AccessLog(),
		middleware.CORS(allowedOrigins),
	)

	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := store.DB().DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	customer.NewHandler(store).RegisterRoutes(api)
	catalog.NewHandler(store).RegisterRoutes(api)
	equipment.NewHandler(store).RegisterRoutes(api)
	maintenance.NewHandler(store).RegisterRoutes(api)
	rental.NewHandler(store).RegisterRoutes(api)
	dashboard.NewHandler(dashboard.NewService(store)).RegisterRoutes(api)
	events.NewHandler(hub, allowedOrigins).RegisterRoutes(api)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})

	return r
}
