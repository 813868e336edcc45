package app

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"qaleb-store/internal/auth"
	"qaleb-store/internal/coupon"
	"qaleb-store/internal/messaging/kafka/consumer"
	"qaleb-store/internal/order"
	"qaleb-store/internal/outbox"
	"qaleb-store/internal/shared/connection"
	"qaleb-store/internal/shared/database/dbgen"
	"qaleb-store/internal/template"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func RunConsumer() error {
	log.Println("[CONSUMER] Starting receipt consumer...")

	db, err := connection.ConnectDBWithRetry(os.Getenv("DB_URL"), 5)
	if err != nil {
		return err
	}
	defer db.Close()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	queries := dbgen.New(db)

	authRepo := auth.NewRepository(queries)
	templateRepo := template.NewRepository(queries)
	couponService := coupon.NewService(coupon.NewRepository(queries), logger)
	outboxRepo := outbox.NewRepository(queries)
	orderRepo := order.NewRepository(queries)
	emailService := newEmailService(logger)

	orderService := order.NewService(db, orderRepo, templateRepo, couponService, outboxRepo, authRepo, emailService, logger)

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{os.Getenv("KAFKA_BROKER")},
		Topic:   orderEventsTopic,
		GroupID: "receipt-consumer-group",
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.Run(ctx, reader, orderService)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[CONSUMER] Shutting down...")
	cancel()
	log.Println("[CONSUMER] Stopped")

	return nil
}
