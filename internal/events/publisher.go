package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"order-desk/internal/config"
	"order-desk/internal/model"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

// Event actions published on the order lifecycle.
const (
	ActionCreated = "order.created"
	ActionUpdated = "order.updated"
	ActionDeleted = "order.deleted"
)

// Publisher emits order lifecycle events. Publishing is best-effort from the
// caller's point of view: API responses never depend on it.
type Publisher interface {
	Publish(ctx context.Context, action string, order *model.Order) error
	Close() error
}

// envelope is the wire format of a lifecycle event.
type envelope struct {
	Action string       `json:"action"`
	At     time.Time    `json:"at"`
	Order  *model.Order `json:"order"`
}

// kafkaPublisher publishes events to a Kafka topic, keyed by order id so
// events for one order stay in partition order.
type kafkaPublisher struct {
	writer *kafka.Writer
	logger zerolog.Logger
}

// NewKafkaPublisher creates a Kafka-backed publisher.
func NewKafkaPublisher(cfg config.KafkaConfig, logger zerolog.Logger) Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
	}

	return &kafkaPublisher{
		writer: writer,
		logger: logger.With().Str("publisher", "kafka").Logger(),
	}
}

func (p *kafkaPublisher) Publish(ctx context.Context, action string, order *model.Order) error {
	value, err := json.Marshal(envelope{Action: action, At: time.Now().UTC(), Order: order})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.ID.String()),
		Value: value,
		Time:  time.Now(),
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/json")},
			{Key: "action", Value: []byte(action)},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	p.logger.Debug().
		Str("action", action).
		Str("order_id", order.ID.String()).
		Msg("event published")

	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

// nopPublisher discards events. Used when event publishing is disabled.
type nopPublisher struct{}

// NewNopPublisher creates a publisher that discards all events.
func NewNopPublisher() Publisher { return nopPublisher{} }

func (nopPublisher) Publish(context.Context, string, *model.Order) error { return nil }

func (nopPublisher) Close() error { return nil }
