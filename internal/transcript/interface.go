package transcript

import (
	"context"

	"usecase-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	GetTranscript(ctx context.Context, sc model.Scope, input GetTranscriptInput) (TranscriptOutput, error)
	ApplyRefinement(ctx context.Context, input ApplyRefinementInput) ([]model.TranscriptMessage, error)
	Invalidate(ctx context.Context, sessionID string) error
}
