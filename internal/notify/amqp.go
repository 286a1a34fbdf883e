package notify

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPPublisher is the part of *amqp.Channel used to publish notifications.
type AMQPPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// AMQPSender publishes notifications to a RabbitMQ exchange.
type AMQPSender struct {
	publisher  AMQPPublisher
	exchange   string
	routingKey string
}

// NewAMQPSender creates a sender. An empty exchange publishes to the queue
// named by routingKey.
func NewAMQPSender(publisher AMQPPublisher, exchange, routingKey string) *AMQPSender {
	return &AMQPSender{
		publisher:  publisher,
		exchange:   exchange,
		routingKey: routingKey,
	}
}

func (a *AMQPSender) Send(ctx context.Context, msg Message) error {
	payload, err := msg.MarshalJSON()
	if err != nil {
		return fmt.Errorf("could not encode notification: %w", err)
	}

	headers := amqp.Table{}
	for k, v := range msg.Attributes() {
		headers[k] = v
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := a.publisher.PublishWithContext(ctx, a.exchange, a.routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Headers:      headers,
		Body:         payload,
	}); err != nil {
		return fmt.Errorf("could not publish notification: %w", err)
	}

	return nil
}

// DialAMQP connects to RabbitMQ and declares the durable notification queue.
// The returned close function releases the channel and the connection.
func DialAMQP(url, queue string) (*amqp.Channel, func() error, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to amqp broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, nil, fmt.Errorf("could not open amqp channel: %w", err)
	}

	if queue != "" {
		if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()

			return nil, nil, fmt.Errorf("could not declare amqp queue: %w", err)
		}
	}

	return ch, func() error {
		_ = ch.Close()

		return conn.Close()
	}, nil
}
