package producer

import (
	"context"
	"log"
	"time"

	"qaleb-store/internal/outbox"

	"github.com/segmentio/kafka-go"
)

const (
	pollInterval = 5 * time.Second
	batchSize    = 10
)

// Run sweeps the outbox on a fixed interval and publishes pending events
// until ctx is cancelled. Messages are keyed by aggregate id so all events
// of one order land on the same partition in creation order.
func Run(ctx context.Context, repo outbox.Repository, writer *kafka.Writer) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	log.Printf("[WORKER] outbox publisher started, polling every %s", pollInterval)

	for {
		select {
		case <-ctx.Done():
			log.Println("[WORKER] outbox publisher stopped")
			return
		case <-ticker.C:
			if err := sweep(ctx, repo, writer); err != nil {
				log.Printf("[WORKER] outbox sweep failed: %v", err)
			}
		}
	}
}

func sweep(ctx context.Context, repo outbox.Repository, writer *kafka.Writer) error {
	events, err := repo.ListPending(ctx, batchSize)
	if err != nil {
		return err
	}

	for _, ev := range events {
		msg := kafka.Message{
			Key:   []byte(ev.AggregateID.String()),
			Value: ev.Payload,
			Headers: []kafka.Header{
				{Key: "event_type", Value: []byte(ev.EventType)},
				{Key: "aggregate_type", Value: []byte(ev.AggregateType)},
			},
		}

		if err := writer.WriteMessages(ctx, msg); err != nil {
			log.Printf("[WORKER] publish failed for event %s (%s): %v", ev.ID, ev.EventType, err)
			if markErr := repo.MarkFailed(ctx, ev.ID); markErr != nil {
				log.Printf("[WORKER] could not mark event %s FAILED: %v", ev.ID, markErr)
			}
			continue
		}

		if err := repo.MarkSent(ctx, ev.ID); err != nil {
			log.Printf("[WORKER] could not mark event %s SENT: %v", ev.ID, err)
		}
	}

	return nil
}
