package app

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"qaleb-store/internal/messaging/kafka/producer"
	"qaleb-store/internal/outbox"
	"qaleb-store/internal/shared/connection"
	"qaleb-store/internal/shared/database/dbgen"
)

const orderEventsTopic = "order.events"

func RunWorker() error {
	log.Println("[WORKER] Starting outbox publisher...")

	db, err := connection.ConnectDBWithRetry(os.Getenv("DB_URL"), 5)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	writer, err := connection.ConnectKafkaWithRetry(os.Getenv("KAFKA_BROKER"), orderEventsTopic, 5)
	if err != nil {
		log.Fatalf("Failed to connect to kafka: %v", err)
	}
	defer writer.Close()

	outboxRepo := outbox.NewRepository(dbgen.New(db))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.Run(ctx, outboxRepo, writer)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[WORKER] Shutting down...")
	cancel()
	time.Sleep(1 * time.Second)
	log.Println("[WORKER] Stopped")

	return nil
}
