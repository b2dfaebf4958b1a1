package usecase

import (
	"context"
	"errors"

	"usecase-srv/internal/model"
	"usecase-srv/internal/transcript"
	"usecase-srv/internal/transcript/repository"
	"usecase-srv/pkg/scope"
	"usecase-srv/pkg/sessionsrv"
)

func (uc *implUseCase) GetTranscript(ctx context.Context, sc model.Scope, input transcript.GetTranscriptInput) (transcript.TranscriptOutput, error) {
	if input.SessionID == "" {
		return transcript.TranscriptOutput{}, transcript.ErrSessionRequired
	}

	if !input.SkipCache {
		snapshot, err := uc.repo.GetTranscript(ctx, input.SessionID)
		if err == nil {
			snapshot.FromCache = true
			return snapshot, nil
		}
		if !errors.Is(err, repository.ErrCacheMiss) {
			uc.l.Warnf(ctx, "transcript.usecase.GetTranscript: cache read failed, falling back to backend: %v", err)
		}
	}

	scopeHeader, err := scope.CreateScopeHeader(sc)
	if err != nil {
		uc.l.Errorf(ctx, "transcript.usecase.GetTranscript: failed to encode scope header: %v", err)
		return transcript.TranscriptOutput{}, err
	}

	envelope, err := uc.sessionSrv.GetHistory(ctx, scopeHeader, input.SessionID, input.Limit)
	if err != nil {
		switch {
		case errors.Is(err, sessionsrv.ErrSessionNotFound):
			return transcript.TranscriptOutput{}, transcript.ErrSessionNotFound
		case errors.Is(err, sessionsrv.ErrForbidden):
			return transcript.TranscriptOutput{}, transcript.ErrForbidden
		default:
			uc.l.Errorf(ctx, "transcript.usecase.GetTranscript: history fetch failed: %v", err)
			return transcript.TranscriptOutput{}, transcript.ErrHistoryUnavailable
		}
	}

	output := transcript.TranscriptOutput{
		SessionID: envelope.SessionID,
		Summary:   envelope.Summary,
		Messages:  buildTranscript(envelope.ConversationHistory, envelope.GeneratedUseCases),
		UseCases:  normalizeCollection(envelope.GeneratedUseCases),
	}
	if output.SessionID == "" {
		output.SessionID = input.SessionID
	}
	if envelope.SessionContext != nil {
		output.Title, _ = envelope.SessionContext["session_title"].(string)
	}

	if err := uc.repo.SaveTranscript(ctx, input.SessionID, output); err != nil {
		uc.l.Warnf(ctx, "transcript.usecase.GetTranscript: cache write failed: %v", err)
	}
	return output, nil
}

func (uc *implUseCase) Invalidate(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return transcript.ErrSessionRequired
	}
	return uc.repo.InvalidateTranscript(ctx, sessionID)
}

// normalizeCollection normalizes the fresh collection for direct display,
// keeping backend order. Records without ids are kept; they simply cannot
// be targeted by refinements.
func normalizeCollection(fresh []map[string]any) []model.UseCase {
	useCases := make([]model.UseCase, 0, len(fresh))
	for _, raw := range fresh {
		useCases = append(useCases, model.NewUseCaseFromRaw(raw))
	}
	return useCases
}
