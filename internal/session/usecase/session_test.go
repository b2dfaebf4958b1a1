package usecase

import (
	"context"
	"fmt"
	"testing"

	"usecase-srv/internal/model"
	"usecase-srv/pkg/log"
	"usecase-srv/pkg/paginator"
	"usecase-srv/pkg/sessionsrv"
)

type listStubSession struct {
	sessionsrv.ISession
	infos []sessionsrv.SessionInfo
}

func (s *listStubSession) ListSessions(ctx context.Context, scopeHeader string) ([]sessionsrv.SessionInfo, error) {
	return s.infos, nil
}

func registryOf(n int) []sessionsrv.SessionInfo {
	infos := make([]sessionsrv.SessionInfo, 0, n)
	for i := 0; i < n; i++ {
		infos = append(infos, sessionsrv.SessionInfo{
			SessionID:    fmt.Sprintf("s%d", i+1),
			SessionTitle: fmt.Sprintf("Session %d", i+1),
		})
	}
	return infos
}

func TestList(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("first page with defaults", func(t *testing.T) {
		uc := New(&listStubSession{infos: registryOf(20)}, &stubTranscriptUC{}, newStubStorage(), log.NewNopLogger())

		out, err := uc.List(ctx, sc, paginator.PaginateQuery{})
		if err != nil {
			t.Fatal(err)
		}
		if len(out.Sessions) != paginator.DefaultLimit {
			t.Errorf("got %d sessions, want %d", len(out.Sessions), paginator.DefaultLimit)
		}
		if out.Sessions[0].ID != "s1" {
			t.Errorf("got first session %s, want s1", out.Sessions[0].ID)
		}
		if out.Pagination.Total != 20 || out.Pagination.CurrentPage != 1 {
			t.Errorf("pagination mismatch: %+v", out.Pagination)
		}
		if !out.Pagination.HasNextPage() {
			t.Error("expected a next page")
		}
	})

	t.Run("last partial page", func(t *testing.T) {
		uc := New(&listStubSession{infos: registryOf(7)}, &stubTranscriptUC{}, newStubStorage(), log.NewNopLogger())

		out, err := uc.List(ctx, sc, paginator.PaginateQuery{Page: 2, Limit: 5})
		if err != nil {
			t.Fatal(err)
		}
		if len(out.Sessions) != 2 {
			t.Errorf("got %d sessions, want 2", len(out.Sessions))
		}
		if out.Sessions[0].ID != "s6" {
			t.Errorf("got first session %s, want s6", out.Sessions[0].ID)
		}
		if out.Pagination.HasNextPage() {
			t.Error("did not expect a next page")
		}
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		uc := New(&listStubSession{infos: registryOf(3)}, &stubTranscriptUC{}, newStubStorage(), log.NewNopLogger())

		out, err := uc.List(ctx, sc, paginator.PaginateQuery{Page: 5, Limit: 10})
		if err != nil {
			t.Fatal(err)
		}
		if len(out.Sessions) != 0 {
			t.Errorf("got %d sessions, want 0", len(out.Sessions))
		}
		if out.Pagination.Total != 3 {
			t.Errorf("got total %d, want 3", out.Pagination.Total)
		}
	})
}
