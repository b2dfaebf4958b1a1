package usecase

import (
	"context"
	"strings"

	"usecase-srv/internal/extraction"
	"usecase-srv/internal/model"
	"usecase-srv/pkg/extractsrv"
	"usecase-srv/pkg/scope"
)

func (uc *implUseCase) Query(ctx context.Context, sc model.Scope, input extraction.QueryInput) (extraction.QueryOutput, error) {
	if strings.TrimSpace(input.Question) == "" {
		return extraction.QueryOutput{}, extraction.ErrQuestionRequired
	}

	scopeHeader, err := scope.CreateScopeHeader(sc)
	if err != nil {
		uc.l.Errorf(ctx, "extraction.usecase.Query: failed to encode scope header: %v", err)
		return extraction.QueryOutput{}, err
	}

	raw, err := uc.extractSrv.Query(ctx, scopeHeader, extractsrv.QueryRequest{
		SessionID: input.SessionID,
		Question:  input.Question,
	})
	if err != nil {
		uc.l.Errorf(ctx, "extraction.usecase.Query: backend call failed: %v", err)
		return extraction.QueryOutput{}, extraction.ErrBackendUnavailable
	}

	output := extraction.QueryOutput{}
	if answer, ok := raw["answer"].(string); ok {
		output.Answer = answer
	} else if answer, ok := raw["response"].(string); ok {
		output.Answer = answer
	}
	if refs, ok := raw["related_use_cases"].([]any); ok {
		output.UseCases = make([]model.UseCase, 0, len(refs))
		for _, el := range refs {
			entry, _ := el.(map[string]any)
			output.UseCases = append(output.UseCases, model.NewUseCaseFromRaw(entry))
		}
	}
	return output, nil
}
