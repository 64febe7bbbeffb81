package mq

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher pushes booking events onto their queues. A nil Publisher
// is valid and drops every event, so the service can run without a
// broker in development.
type Publisher struct {
	conn   *amqp.Connection
	logger *zap.Logger
}

func NewPublisher(conn *amqp.Connection, logger *zap.Logger) *Publisher {
	if conn == nil {
		return nil
	}
	return &Publisher{
		conn:   conn,
		logger: logger,
	}
}

// Publish is fire-and-forget: failures are logged, never returned, so
// a broker outage can't fail a committed booking.
func (p *Publisher) Publish(queueName string, message any) {
	if p == nil {
		return
	}
	ch, err := NewChannel(p.conn)
	if err != nil {
		p.logger.Warn("failed to open mq channel", zap.Error(err))
		return
	}
	defer ch.Close()

	if err := sendJSON(ch, queueName, message); err != nil {
		p.logger.Warn("failed to publish event",
			zap.String("queue", queueName), zap.Error(err))
	}
}

func sendJSON(ch *amqp.Channel, queueName string, message any) error {
	body, err := json.Marshal(message)
	if err != nil {
		return err
	}
	return ch.PublishWithContext(
		context.Background(),
		"",
		queueName,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
}
