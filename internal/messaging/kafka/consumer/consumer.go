package consumer

import (
	"context"
	"log"

	"qaleb-store/internal/order"

	"github.com/segmentio/kafka-go"
)

// Run fetches order events and dispatches them by the event_type header
// until ctx is cancelled. Unknown event types are committed and skipped so
// a new producer-side event never wedges the group.
func Run(ctx context.Context, reader *kafka.Reader, orderService order.Service) {
	log.Println("[CONSUMER] order event consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("[CONSUMER] fetch failed: %v", err)
			continue
		}

		switch headerValue(msg.Headers, "event_type") {
		case order.EventOrderPaid:
			if err := handleOrderPaid(ctx, msg.Value, orderService); err != nil {
				// Leave uncommitted so the event is redelivered.
				log.Printf("[CONSUMER] ORDER_PAID handling failed: %v", err)
				continue
			}
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Printf("[CONSUMER] commit failed: %v", err)
		}
	}
}

func headerValue(headers []kafka.Header, key string) string {
	for _, h := range headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
