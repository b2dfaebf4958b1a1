package repository

import (
	"context"

	"usecase-srv/internal/transcript"
)

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	GetTranscript(ctx context.Context, sessionID string) (transcript.TranscriptOutput, error)
	SaveTranscript(ctx context.Context, sessionID string, snapshot transcript.TranscriptOutput) error
	InvalidateTranscript(ctx context.Context, sessionID string) error
}
