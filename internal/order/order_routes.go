package order

import (
	"qaleb-store/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	orders := r.Group("/orders")
	orders.Use(middleware.AuthMiddleware())
	{
		orders.POST("", middleware.RateLimitByUser(0.5, 3), h.Create)
		orders.POST("/:id/pay", middleware.RateLimitByUser(0.5, 3), h.Pay)
		orders.GET("", middleware.RateLimitByUser(5, 10), h.List)
		orders.GET("/:id", middleware.RateLimitByUser(5, 10), h.Detail)
	}
}
