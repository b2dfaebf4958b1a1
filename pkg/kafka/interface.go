package kafka

import (
	"context"

	"github.com/IBM/sarama"
)

// IProducer defines the interface for publishing events to Kafka.
// Implementations are safe for concurrent use.
type IProducer interface {
	Publish(key, value []byte) error
	HealthCheck() error
	Close() error
}

// IConsumer wraps a Kafka consumer group for easier testing and management.
type IConsumer interface {
	// ConsumeWithContext joins the group and consumes topics. Blocks until
	// the context is cancelled or a rebalance error occurs.
	ConsumeWithContext(ctx context.Context, topics []string, handler sarama.ConsumerGroupHandler) error
	// Errors returns the consumer group error channel.
	Errors() <-chan error
	// Close closes the consumer group.
	Close() error
}
