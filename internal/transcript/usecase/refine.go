package usecase

import (
	"context"

	"usecase-srv/internal/model"
	"usecase-srv/internal/transcript"
)

func (uc *implUseCase) ApplyRefinement(ctx context.Context, input transcript.ApplyRefinementInput) ([]model.TranscriptMessage, error) {
	switch input.Mode {
	case transcript.RefineModeReload:
		// The session backend already holds the refined record; callers
		// re-fetch the transcript instead of patching it locally.
		return input.Transcript, nil
	case transcript.RefineModeInPlace:
		refined := model.NewUseCaseFromRaw(input.RefinedRaw)
		refined.Refined = true
		if refined.ID == "" {
			// Keep the record addressable by later refinements.
			refined.ID = input.TargetID
		}
		return substituteUseCase(input.Transcript, input.TargetID, refined), nil
	default:
		uc.l.Warnf(ctx, "transcript.usecase.ApplyRefinement: unknown mode %q", input.Mode)
		return nil, transcript.ErrUnknownRefineMode
	}
}

// substituteUseCase replaces every use case matching targetID across the
// transcript. Messages without a match are carried over untouched; nothing
// is added or removed, so a miss returns an equivalent transcript.
func substituteUseCase(messages []model.TranscriptMessage, targetID string, refined model.UseCase) []model.TranscriptMessage {
	next := make([]model.TranscriptMessage, len(messages))
	copy(next, messages)

	for i, msg := range messages {
		if len(msg.UseCases) == 0 {
			continue
		}
		replaced := false
		useCases := make([]model.UseCase, len(msg.UseCases))
		for j, u := range msg.UseCases {
			if u.ID != "" && u.ID == targetID {
				useCases[j] = refined
				replaced = true
			} else {
				useCases[j] = u
			}
		}
		if replaced {
			next[i].UseCases = useCases
		}
	}
	return next
}
