package extraction

import (
	"context"

	"usecase-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Extract(ctx context.Context, sc model.Scope, input ExtractInput) (model.ExtractionResult, error)
	UploadDocument(ctx context.Context, sc model.Scope, input UploadInput) (model.ExtractionResult, error)
	Refine(ctx context.Context, sc model.Scope, input RefineInput) (RefineOutput, error)
	Query(ctx context.Context, sc model.Scope, input QueryInput) (QueryOutput, error)
}
