package events

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/esit/ecommerce-api/internal/model"
)

const (
	orderQueueName = "orders.events"
	dlxExchange    = "orders.dlx"
	dlqQueueName   = "orders.dlq"
)

const (
	KindOrderCreated       = "order.created"
	KindOrderStatusChanged = "order.status_changed"
	KindOrderDeleted       = "order.deleted"
)

// Setup declares the durable order-event queue and its dead-letter pair.
func Setup(ch *amqp.Channel) error {
	if err := ch.ExchangeDeclare(dlxExchange, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare DLX: %w", err)
	}
	if _, err := ch.QueueDeclare(dlqQueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare DLQ: %w", err)
	}
	if err := ch.QueueBind(dlqQueueName, orderQueueName, dlxExchange, false, nil); err != nil {
		return fmt.Errorf("bind DLQ: %w", err)
	}
	if _, err := ch.QueueDeclare(orderQueueName, true, false, false, false, amqp.Table{
		"x-dead-letter-exchange":    dlxExchange,
		"x-dead-letter-routing-key": orderQueueName,
	}); err != nil {
		return fmt.Errorf("declare order event queue: %w", err)
	}
	return nil
}

// Publisher emits order lifecycle events. A nil channel disables publishing,
// so the API runs without a broker in tests.
type Publisher struct {
	ch *amqp.Channel
}

func NewPublisher(ch *amqp.Channel) *Publisher {
	return &Publisher{ch: ch}
}

func (p *Publisher) PublishOrderEvent(ctx context.Context, ev model.OrderEvent) error {
	if p == nil || p.ch == nil {
		return nil
	}
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal order event: %w", err)
	}
	err = p.ch.PublishWithContext(ctx, "", orderQueueName, false, false, amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
	})
	if err != nil {
		return fmt.Errorf("publish order event: %w", err)
	}
	return nil
}
