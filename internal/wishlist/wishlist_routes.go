package wishlist

import (
	"qaleb-store/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	wl := r.Group("/wishlist")
	wl.Use(middleware.AuthMiddleware())
	{
		wl.GET("/ids", middleware.RateLimitByUser(5, 10), h.ListIDs)
		wl.GET("/items", middleware.RateLimitByUser(5, 10), h.ListItems)
		wl.POST("/toggle/:templateId", middleware.RateLimitByUser(1, 3), h.Toggle)
	}
}
