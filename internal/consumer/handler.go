package consumer

import (
	"context"
	"fmt"

	extractionConsumer "usecase-srv/internal/extraction/delivery/kafka/consumer"
)

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	extractionConsumer *extractionConsumer.Consumer
}

// setupDomains initializes all domain consumers
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	extractionCons, err := extractionConsumer.New(extractionConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.kafkaConfig,
		Discord:     srv.discord,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create extraction consumer: %w", err)
	}

	srv.l.Infof(ctx, "Extraction domain initialized")

	return &domainConsumers{
		extractionConsumer: extractionCons,
	}, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.extractionConsumer.ConsumeActivityEvents(ctx); err != nil {
		return fmt.Errorf("failed to start extraction consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if consumers.extractionConsumer != nil {
		if err := consumers.extractionConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing extraction consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
