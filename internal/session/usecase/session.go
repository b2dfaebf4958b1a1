package usecase

import (
	"context"
	"errors"
	"strings"

	"usecase-srv/internal/model"
	"usecase-srv/internal/session"
	"usecase-srv/pkg/paginator"
	"usecase-srv/pkg/scope"
	"usecase-srv/pkg/sessionsrv"
)

func (uc *implUseCase) mapBackendError(err error) error {
	switch {
	case errors.Is(err, sessionsrv.ErrSessionNotFound):
		return session.ErrSessionNotFound
	case errors.Is(err, sessionsrv.ErrForbidden):
		return session.ErrForbidden
	default:
		return session.ErrBackendUnavailable
	}
}

func (uc *implUseCase) scopeHeader(ctx context.Context, sc model.Scope) (string, error) {
	header, err := scope.CreateScopeHeader(sc)
	if err != nil {
		uc.l.Errorf(ctx, "session.usecase.scopeHeader: failed to encode scope header: %v", err)
	}
	return header, err
}

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input session.CreateInput) (session.CreateOutput, error) {
	header, err := uc.scopeHeader(ctx, sc)
	if err != nil {
		return session.CreateOutput{}, err
	}

	resp, err := uc.sessionSrv.CreateSession(ctx, header, sessionsrv.CreateSessionRequest{
		SessionID:      input.SessionID,
		ProjectContext: input.ProjectContext,
		Domain:         input.Domain,
	})
	if err != nil {
		uc.l.Errorf(ctx, "session.usecase.Create: backend call failed: %v", err)
		return session.CreateOutput{}, uc.mapBackendError(err)
	}
	return session.CreateOutput{SessionID: resp.SessionID, Message: resp.Message}, nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, pq paginator.PaginateQuery) (session.ListOutput, error) {
	pq.Adjust()

	header, err := uc.scopeHeader(ctx, sc)
	if err != nil {
		return session.ListOutput{}, err
	}

	infos, err := uc.sessionSrv.ListSessions(ctx, header)
	if err != nil {
		uc.l.Errorf(ctx, "session.usecase.List: backend call failed: %v", err)
		return session.ListOutput{}, uc.mapBackendError(err)
	}

	// The session backend returns the full registry; paginate here.
	total := int64(len(infos))
	start := pq.Offset()
	if start > total {
		start = total
	}
	end := start + pq.Limit
	if end > total {
		end = total
	}

	sessions := make([]model.Session, 0, end-start)
	for _, info := range infos[start:end] {
		sessions = append(sessions, model.Session{
			ID:             info.SessionID,
			Title:          info.SessionTitle,
			ProjectContext: info.ProjectContext,
			Domain:         info.Domain,
			CreatedAt:      info.CreatedAt,
			LastActive:     info.LastActive,
		})
	}

	return session.ListOutput{
		Sessions: sessions,
		Pagination: paginator.Paginator{
			Total:       total,
			Count:       int64(len(sessions)),
			PerPage:     pq.Limit,
			CurrentPage: pq.Page,
		},
	}, nil
}

func (uc *implUseCase) GetTitle(ctx context.Context, sc model.Scope, sessionID string) (string, error) {
	if sessionID == "" {
		return "", session.ErrSessionRequired
	}

	header, err := uc.scopeHeader(ctx, sc)
	if err != nil {
		return "", err
	}

	title, err := uc.sessionSrv.GetTitle(ctx, header, sessionID)
	if err != nil {
		uc.l.Errorf(ctx, "session.usecase.GetTitle: backend call failed: %v", err)
		return "", uc.mapBackendError(err)
	}
	return title, nil
}

func (uc *implUseCase) Rename(ctx context.Context, sc model.Scope, input session.RenameInput) error {
	if input.SessionID == "" {
		return session.ErrSessionRequired
	}
	if strings.TrimSpace(input.NewTitle) == "" {
		return session.ErrTitleRequired
	}

	header, err := uc.scopeHeader(ctx, sc)
	if err != nil {
		return err
	}

	if err := uc.sessionSrv.RenameSession(ctx, header, input.SessionID, input.NewTitle); err != nil {
		uc.l.Errorf(ctx, "session.usecase.Rename: backend call failed: %v", err)
		return uc.mapBackendError(err)
	}
	return nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, sessionID string) error {
	if sessionID == "" {
		return session.ErrSessionRequired
	}

	header, err := uc.scopeHeader(ctx, sc)
	if err != nil {
		return err
	}

	if err := uc.sessionSrv.DeleteSession(ctx, header, sessionID); err != nil {
		uc.l.Errorf(ctx, "session.usecase.Delete: backend call failed: %v", err)
		return uc.mapBackendError(err)
	}

	if err := uc.transcriptUC.Invalidate(ctx, sessionID); err != nil {
		uc.l.Warnf(ctx, "session.usecase.Delete: transcript invalidation failed: %v", err)
	}
	return nil
}
