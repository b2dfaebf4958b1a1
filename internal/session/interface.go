package session

import (
	"context"

	"usecase-srv/internal/model"
	"usecase-srv/pkg/paginator"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, sc model.Scope, pq paginator.PaginateQuery) (ListOutput, error)
	GetTitle(ctx context.Context, sc model.Scope, sessionID string) (string, error)
	Rename(ctx context.Context, sc model.Scope, input RenameInput) error
	Delete(ctx context.Context, sc model.Scope, sessionID string) error
	Export(ctx context.Context, sc model.Scope, input ExportInput) (ExportOutput, error)
}
