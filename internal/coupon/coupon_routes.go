package coupon

import (
	"qaleb-store/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	coupons := r.Group("/coupons")
	{
		// Validation is previewed from the cart drawer, so it stays open to
		// guests but rate limited per IP against brute-forcing codes.
		coupons.POST("/validate", middleware.RateLimitByIP(1, 5), h.Validate)
	}

	admin := r.Group("/admin/coupons")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware("admin"))
	{
		admin.POST("", middleware.RateLimitByUser(1, 3), h.Create)
		admin.GET("", h.List)
		admin.DELETE("/:id", middleware.RateLimitByUser(1, 3), h.Deactivate)
	}
}
