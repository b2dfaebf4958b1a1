package usecase

import (
	"context"
	"errors"

	"usecase-srv/internal/extraction"
	"usecase-srv/internal/model"
	"usecase-srv/pkg/extractsrv"
	"usecase-srv/pkg/scope"
)

func (uc *implUseCase) Refine(ctx context.Context, sc model.Scope, input extraction.RefineInput) (extraction.RefineOutput, error) {
	if input.TargetID == "" {
		return extraction.RefineOutput{}, extraction.ErrTargetRequired
	}

	scopeHeader, err := scope.CreateScopeHeader(sc)
	if err != nil {
		uc.l.Errorf(ctx, "extraction.usecase.Refine: failed to encode scope header: %v", err)
		return extraction.RefineOutput{}, err
	}

	raw, err := uc.extractSrv.Refine(ctx, scopeHeader, extractsrv.RefineRequest{
		UseCaseID:      input.TargetID,
		RefinementType: input.RefinementType,
	})
	if err != nil {
		if errors.Is(err, extractsrv.ErrUseCaseNotFound) {
			return extraction.RefineOutput{}, extraction.ErrUseCaseNotFound
		}
		uc.l.Errorf(ctx, "extraction.usecase.Refine: backend call failed: %v", err)
		return extraction.RefineOutput{}, extraction.ErrBackendUnavailable
	}

	refinedRaw, _ := raw["refined_use_case"].(map[string]any)
	refined := model.NewUseCaseFromRaw(refinedRaw)
	refined.Refined = true
	if refined.ID == "" {
		// The backend persists under the original id; keep the record
		// addressable.
		refined.ID = input.TargetID
	}

	uc.invalidateTranscript(ctx, input.SessionID)
	uc.publishEvent(ctx, sc, extractionEvent{
		Type:      eventTypeRefined,
		SessionID: input.SessionID,
		UseCaseID: refined.ID,
	})
	return extraction.RefineOutput{UseCase: refined}, nil
}
