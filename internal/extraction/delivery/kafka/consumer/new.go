package consumer

import (
	"fmt"

	"usecase-srv/config"
	"usecase-srv/pkg/discord"
	pkgKafka "usecase-srv/pkg/kafka"
	"usecase-srv/pkg/log"
)

// Config holds the configuration for the extraction activity consumer.
type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	Discord     discord.IDiscord
}

// Consumer manages the Kafka consumer group for extraction activity events.
type Consumer struct {
	l           log.Logger
	kafkaConfig config.KafkaConfig
	discord     discord.IDiscord

	activityGroup pkgKafka.IConsumer
}

// New creates a new extraction activity consumer.
func New(cfg Config) (*Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if len(cfg.KafkaConfig.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}
	if cfg.KafkaConfig.Topic == "" {
		return nil, fmt.Errorf("kafka topic is required")
	}

	return &Consumer{
		l:           cfg.Logger,
		kafkaConfig: cfg.KafkaConfig,
		discord:     cfg.Discord,
	}, nil
}

// Close closes all consumer groups.
func (c *Consumer) Close() error {
	if c.activityGroup != nil {
		if err := c.activityGroup.Close(); err != nil {
			return fmt.Errorf("failed to close activity group: %w", err)
		}
	}

	return nil
}

// createConsumerGroup creates a new Kafka consumer group.
func (c *Consumer) createConsumerGroup(groupID string) (pkgKafka.IConsumer, error) {
	group, err := pkgKafka.NewConsumer(pkgKafka.ConsumerConfig{
		Brokers: c.kafkaConfig.Brokers,
		GroupID: groupID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group %s: %w", groupID, err)
	}

	return group, nil
}
