package consumer

import (
	"context"

	kafkaDelivery "usecase-srv/internal/extraction/delivery/kafka"
)

// ConsumeActivityEvents starts consuming extraction activity events.
func (c *Consumer) ConsumeActivityEvents(ctx context.Context) error {
	group, err := c.createConsumerGroup(kafkaDelivery.ConsumerGroupActivityEvents)
	if err != nil {
		return err
	}
	c.activityGroup = group

	handler := &activityEventsHandler{
		consumer: c,
	}

	// Consume loop; re-joins the group after rebalances until the context
	// is cancelled.
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if err := group.ConsumeWithContext(ctx, []string{c.kafkaConfig.Topic}, handler); err != nil {
					c.l.Errorf(ctx, "Consumer error: %v", err)
				}
			}
		}
	}()

	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "Consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s", c.kafkaConfig.Topic)

	return nil
}
