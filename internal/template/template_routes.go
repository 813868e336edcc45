package template

import (
	"qaleb-store/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	templates := r.Group("/templates")
	{
		// Public catalog, cached server-side.
		templates.GET("",
			middleware.RateLimitByIP(10, 20),
			handler.List,
		)
		templates.GET("/:templateId",
			middleware.RateLimitByIP(10, 20),
			handler.Detail,
		)

		admin := templates.Group("")
		admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware("admin"))
		{
			mutationLimit := middleware.RateLimitByUser(1, 3)

			admin.POST("", mutationLimit, handler.Create)
			admin.PUT("/:templateId", mutationLimit, handler.Update)
			admin.DELETE("/:templateId", mutationLimit, handler.Delete)
		}
	}
}
