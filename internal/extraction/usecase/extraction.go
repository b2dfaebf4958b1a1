package usecase

import (
	"context"
	"strings"

	"usecase-srv/internal/extraction"
	"usecase-srv/internal/model"
	"usecase-srv/pkg/extractsrv"
	"usecase-srv/pkg/scope"
)

func (uc *implUseCase) Extract(ctx context.Context, sc model.Scope, input extraction.ExtractInput) (model.ExtractionResult, error) {
	if strings.TrimSpace(input.Message) == "" {
		return model.ExtractionResult{}, extraction.ErrMessageRequired
	}

	scopeHeader, err := scope.CreateScopeHeader(sc)
	if err != nil {
		uc.l.Errorf(ctx, "extraction.usecase.Extract: failed to encode scope header: %v", err)
		return model.ExtractionResult{}, err
	}

	raw, err := uc.extractSrv.Extract(ctx, scopeHeader, extractsrv.ExtractRequest{
		SessionID:      input.SessionID,
		RawText:        input.Message,
		ProjectContext: input.ProjectContext,
		Domain:         input.Domain,
	})
	if err != nil {
		uc.l.Errorf(ctx, "extraction.usecase.Extract: backend call failed: %v", err)
		return model.ExtractionResult{}, extraction.ErrBackendUnavailable
	}

	result := model.NewExtractionResultFromRaw(raw)
	if result.SessionID == "" {
		result.SessionID = input.SessionID
	}

	uc.invalidateTranscript(ctx, result.SessionID)
	uc.publishEvent(ctx, sc, extractionEvent{
		Type:           eventTypeExtracted,
		SessionID:      result.SessionID,
		ExtractedCount: result.ExtractedCount,
		StoredCount:    result.StoredCount,
		Source:         "text",
	})
	return result, nil
}

func (uc *implUseCase) UploadDocument(ctx context.Context, sc model.Scope, input extraction.UploadInput) (model.ExtractionResult, error) {
	if len(input.Content) == 0 {
		return model.ExtractionResult{}, extraction.ErrFileRequired
	}
	if len(input.Content) > extraction.MaxUploadSize {
		return model.ExtractionResult{}, extraction.ErrFileTooLarge
	}

	scopeHeader, err := scope.CreateScopeHeader(sc)
	if err != nil {
		uc.l.Errorf(ctx, "extraction.usecase.UploadDocument: failed to encode scope header: %v", err)
		return model.ExtractionResult{}, err
	}

	raw, err := uc.extractSrv.UploadDocument(ctx, scopeHeader, extractsrv.UploadRequest{
		SessionID:      input.SessionID,
		FileName:       input.FileName,
		Content:        input.Content,
		ProjectContext: input.ProjectContext,
		Domain:         input.Domain,
	})
	if err != nil {
		uc.l.Errorf(ctx, "extraction.usecase.UploadDocument: backend call failed: %v", err)
		return model.ExtractionResult{}, extraction.ErrBackendUnavailable
	}

	result := model.NewExtractionResultFromRaw(raw)
	if result.SessionID == "" {
		result.SessionID = input.SessionID
	}

	uc.invalidateTranscript(ctx, result.SessionID)
	uc.publishEvent(ctx, sc, extractionEvent{
		Type:           eventTypeExtracted,
		SessionID:      result.SessionID,
		ExtractedCount: result.ExtractedCount,
		StoredCount:    result.StoredCount,
		Source:         "document",
	})
	return result, nil
}
