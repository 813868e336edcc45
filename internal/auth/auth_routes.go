package auth

import (
	"qaleb-store/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	auth := r.Group("/auth")
	{
		auth.POST("/register",
			middleware.RateLimitByIP(0.1, 3),
			handler.Register,
		)

		auth.POST("/login",
			middleware.RateLimitByIP(0.5, 5),
			handler.Login,
		)

		auth.POST("/refresh",
			middleware.RateLimitByIP(1, 5),
			handler.Refresh,
		)

		auth.POST("/logout", handler.Logout)

		protected := auth.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/me",
				middleware.RateLimitByUser(5, 10),
				handler.Me,
			)
		}
	}
}
