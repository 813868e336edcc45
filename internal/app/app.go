package app

import (
	"os"

	"qaleb-store/internal/cloudinary"
	"qaleb-store/internal/email"
	"qaleb-store/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine, logger *zap.Logger) error {
	// 1. Setup Infrastructure
	db, err := connection.ConnectDBWithRetry(os.Getenv("DB_URL"), 5)
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	// 2. Setup Third Party Services
	cloudinaryService, err := cloudinary.NewService(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
		"qaleb/templates",
	)
	if err != nil {
		return err
	}

	emailService := newEmailService(logger)

	// 3. Register Modules & Routes
	registerModules(router, db, redisClient, cloudinaryService, emailService, logger)

	return nil
}

func newEmailService(logger *zap.Logger) email.Service {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		return email.NewNoopService(logger)
	}
	return email.NewService(apiKey, os.Getenv("EMAIL_FROM"), logger)
}
