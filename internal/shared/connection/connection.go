package connection

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

const retryDelay = 5 * time.Second

// dialWithRetry runs dial until it succeeds or attempts run out, sleeping a
// fixed delay between tries. Containers race their backing services on
// startup, so every external connection goes through this.
func dialWithRetry(name string, attempts int, dial func() error) error {
	var err error
	for i := 1; i <= attempts; i++ {
		if err = dial(); err == nil {
			log.Printf("✅ Connected to %s", name)
			return nil
		}
		log.Printf("⚠️ %s retry %d/%d failed: %v", name, i, attempts, err)
		time.Sleep(retryDelay)
	}
	return fmt.Errorf("connect %s: %w", name, err)
}

func ConnectDBWithRetry(dsn string, maxRetries int) (*sql.DB, error) {
	var db *sql.DB

	err := dialWithRetry("database", maxRetries, func() error {
		var openErr error
		db, openErr = sql.Open("postgres", dsn)
		if openErr != nil {
			return openErr
		}
		return db.Ping()
	})
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)
	return db, nil
}

func ConnectRedisWithRetry(addr string, maxRetries int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})

	err := dialWithRetry("redis", maxRetries, func() error {
		return rdb.Ping(context.Background()).Err()
	})
	if err != nil {
		return nil, err
	}
	return rdb, nil
}

// ConnectKafkaWithRetry probes the broker with a raw dial; the returned
// writer itself connects lazily per message.
func ConnectKafkaWithRetry(broker, topic string, maxRetries int) (*kafka.Writer, error) {
	err := dialWithRetry("kafka", maxRetries, func() error {
		conn, dialErr := kafka.Dial("tcp", broker)
		if dialErr != nil {
			return dialErr
		}
		return conn.Close()
	})
	if err != nil {
		return nil, err
	}

	return &kafka.Writer{
		Addr:     kafka.TCP(broker),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}, nil
}
