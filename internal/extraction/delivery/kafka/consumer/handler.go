package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	kafkaDelivery "usecase-srv/internal/extraction/delivery/kafka"

	"github.com/IBM/sarama"
)

type activityEventsHandler struct {
	consumer *Consumer
}

func (h *activityEventsHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *activityEventsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *activityEventsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := h.consumer.handleActivityMessage(msg); err != nil {
			h.consumer.l.Errorf(context.Background(), "extraction.delivery.kafka.consumer.ConsumeActivityEvents: Failed to process activity message: %v", err)
			continue
		}
		session.MarkMessage(msg, "")
	}
	return nil
}

// handleActivityMessage routes one activity event. Notifications are best
// effort and never block offset commits.
func (c *Consumer) handleActivityMessage(msg *sarama.ConsumerMessage) error {
	ctx := context.Background()

	var event kafkaDelivery.ActivityEventMessage
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal activity event: %w", err)
	}

	switch event.Type {
	case kafkaDelivery.EventTypeUseCasesExtracted:
		c.l.Infof(ctx, "Session %s: %d use cases extracted (%d stored, source %s)",
			event.SessionID, event.ExtractedCount, event.StoredCount, event.Source)
		c.notifyExtracted(ctx, event)
	case kafkaDelivery.EventTypeUseCaseRefined:
		c.l.Infof(ctx, "Session %s: use case %s refined", event.SessionID, event.UseCaseID)
	default:
		c.l.Warnf(ctx, "Unknown activity event type: %s", event.Type)
	}

	return nil
}

func (c *Consumer) notifyExtracted(ctx context.Context, event kafkaDelivery.ActivityEventMessage) {
	if c.discord == nil || event.StoredCount == 0 {
		return
	}

	description := fmt.Sprintf("Session: %s\nUser: %s\nExtracted: %d\nStored: %d\nSource: %s",
		event.SessionID, event.UserID, event.ExtractedCount, event.StoredCount, event.Source)
	if err := c.discord.SendInfo(ctx, "Use cases extracted", description); err != nil {
		c.l.Warnf(ctx, "extraction.delivery.kafka.consumer.notifyExtracted: %v", err)
	}
}
