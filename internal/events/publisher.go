// Package events publishes order lifecycle messages to RabbitMQ.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"restaurant-orders/internal/connections/rabbitmq"
	"restaurant-orders/internal/domain"
)

const orderPlacedKey = "orders.placed"

type OrderPublisher struct {
	client *rabbitmq.Client
}

func NewOrderPublisher(client *rabbitmq.Client) *OrderPublisher {
	return &OrderPublisher{client: client}
}

func (p *OrderPublisher) PublishOrderPlaced(ctx context.Context, msg domain.OrderPlacedMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal order message: %w", err)
	}
	return p.client.Publish(ctx, rabbitmq.OrdersExchange, orderPlacedKey, body)
}
