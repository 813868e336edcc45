package app

import (
	"database/sql"

	"qaleb-store/internal/auth"
	"qaleb-store/internal/cloudinary"
	"qaleb-store/internal/coupon"
	"qaleb-store/internal/email"
	"qaleb-store/internal/order"
	"qaleb-store/internal/outbox"
	"qaleb-store/internal/shared/database/dbgen"
	"qaleb-store/internal/template"
	"qaleb-store/internal/wishlist"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	redisClient *redis.Client,
	cloudinaryService cloudinary.Service,
	emailService email.Service,
	logger *zap.Logger,
) {
	queries := dbgen.New(db)

	// --- Repositories ---
	authRepo := auth.NewRepository(queries)
	templateRepo := template.NewRepository(queries)
	couponRepo := coupon.NewRepository(queries)
	wishlistRepo := wishlist.NewRepository(queries)
	orderRepo := order.NewRepository(queries)
	outboxRepo := outbox.NewRepository(queries)

	// --- Services ---
	authService := auth.NewService(authRepo)
	templateService := template.NewService(templateRepo, redisClient, cloudinaryService, logger)
	couponService := coupon.NewService(couponRepo, logger)
	wishlistService := wishlist.NewService(db, wishlistRepo, logger)
	orderService := order.NewService(db, orderRepo, templateRepo, couponService, outboxRepo, authRepo, emailService, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	templateHandler := template.NewHandler(templateService)
	couponHandler := coupon.NewHandler(couponService)
	wishlistHandler := wishlist.NewHandler(wishlistService)
	orderHandler := order.NewHandler(orderService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		template.RegisterRoutes(api, templateHandler)
		coupon.RegisterRoutes(api, couponHandler)
		wishlist.RegisterRoutes(api, wishlistHandler)
		order.RegisterRoutes(api, orderHandler)
	}
}
