package consumer

import (
	"context"
	"encoding/json"
	"log"
	"qaleb-store/internal/order"
)

func handleOrderPaid(ctx context.Context, payload []byte, orderService order.Service) error {
	var data order.OrderEventPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return err
	}

	log.Printf("[CONSUMER] Sending receipt for order: %s", data.OrderNumber)

	if err := orderService.SendReceipt(ctx, data.OrderID); err != nil {
		return err
	}

	log.Printf("[CONSUMER] Receipt sent successfully for order: %s", data.OrderNumber)
	return nil
}
