package minio

import (
	"context"
	"time"
)

// MinIO defines the interface for object storage operations.
// Implementations are safe for concurrent use.
type MinIO interface {
	Upload(ctx context.Context, objectName string, data []byte, contentType string) error
	PresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
	Remove(ctx context.Context, objectName string) error
	HealthCheck(ctx context.Context) error
}
