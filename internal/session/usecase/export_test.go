package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"usecase-srv/internal/model"
	"usecase-srv/internal/session"
	"usecase-srv/internal/transcript"
	"usecase-srv/pkg/log"
	"usecase-srv/pkg/sessionsrv"
)

type stubTranscriptUC struct {
	transcript.UseCase
	snapshot    transcript.TranscriptOutput
	err         error
	invalidated []string
}

func (s *stubTranscriptUC) GetTranscript(ctx context.Context, sc model.Scope, input transcript.GetTranscriptInput) (transcript.TranscriptOutput, error) {
	if s.err != nil {
		return transcript.TranscriptOutput{}, s.err
	}
	return s.snapshot, nil
}

func (s *stubTranscriptUC) Invalidate(ctx context.Context, sessionID string) error {
	s.invalidated = append(s.invalidated, sessionID)
	return nil
}

type stubStorage struct {
	objects map[string][]byte
	types   map[string]string
}

func newStubStorage() *stubStorage {
	return &stubStorage{objects: make(map[string][]byte), types: make(map[string]string)}
}

func (s *stubStorage) Upload(ctx context.Context, objectName string, data []byte, contentType string) error {
	s.objects[objectName] = data
	s.types[objectName] = contentType
	return nil
}

func (s *stubStorage) PresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	return "https://storage.local/" + objectName, nil
}

func (s *stubStorage) Remove(ctx context.Context, objectName string) error {
	delete(s.objects, objectName)
	return nil
}

func (s *stubStorage) HealthCheck(ctx context.Context) error { return nil }

type stubSession struct {
	sessionsrv.ISession
	deleted []string
}

func (s *stubSession) DeleteSession(ctx context.Context, scopeHeader, sessionID string) error {
	s.deleted = append(s.deleted, sessionID)
	return nil
}

func sampleSnapshot() transcript.TranscriptOutput {
	return transcript.TranscriptOutput{
		SessionID: "s1",
		Title:     "Billing rework",
		Summary:   "Two extraction rounds.",
		Messages: []model.TranscriptMessage{
			{Role: model.RoleUser, Content: "extract billing flows"},
			{Role: model.RoleAssistant, Content: "done"},
		},
		UseCases: []model.UseCase{
			{
				ID:       "uc-1",
				Title:    "Pay invoice",
				MainFlow: []string{"open invoice", "pay"},
				SubFlows: []model.SubFlow{
					{Text: "plain variant"},
					{Structured: true, Title: "Retry payment", Steps: []string{"retry", "confirm"}},
				},
				Refined: true,
			},
		},
	}
}

func TestExport(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("markdown export renders and uploads", func(t *testing.T) {
		storage := newStubStorage()
		uc := New(&stubSession{}, &stubTranscriptUC{snapshot: sampleSnapshot()}, storage, log.NewNopLogger())

		out, err := uc.Export(ctx, sc, session.ExportInput{SessionID: "s1", Format: session.ExportFormatMarkdown})
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(out.DownloadURL, "https://storage.local/exports/s1/") {
			t.Errorf("download url mismatch: %s", out.DownloadURL)
		}

		var rendered string
		for name, data := range storage.objects {
			if storage.types[name] != "text/markdown" {
				t.Errorf("content type mismatch: %s", storage.types[name])
			}
			rendered = string(data)
		}
		for _, want := range []string{
			"# Billing rework",
			"### 1. Pay invoice",
			"*Refined*",
			"- open invoice",
			"- Retry payment",
			"  - retry",
			"**user**: extract billing flows",
		} {
			if !strings.Contains(rendered, want) {
				t.Errorf("rendered markdown missing %q", want)
			}
		}
	})

	t.Run("json export keeps wire shapes", func(t *testing.T) {
		storage := newStubStorage()
		uc := New(&stubSession{}, &stubTranscriptUC{snapshot: sampleSnapshot()}, storage, log.NewNopLogger())

		if _, err := uc.Export(ctx, sc, session.ExportInput{SessionID: "s1", Format: session.ExportFormatJSON}); err != nil {
			t.Fatal(err)
		}
		for _, data := range storage.objects {
			payload := string(data)
			if !strings.Contains(payload, `"plain variant"`) {
				t.Error("plain sub-flow should export as a string")
			}
			if !strings.Contains(payload, `"Retry payment"`) {
				t.Error("structured sub-flow should export as an object")
			}
		}
	})

	t.Run("unknown format is rejected", func(t *testing.T) {
		uc := New(&stubSession{}, &stubTranscriptUC{}, newStubStorage(), log.NewNopLogger())
		if _, err := uc.Export(ctx, sc, session.ExportInput{SessionID: "s1", Format: "pdf"}); !errors.Is(err, session.ErrUnknownFormat) {
			t.Errorf("error mismatch: %v", err)
		}
	})

	t.Run("missing session maps to domain error", func(t *testing.T) {
		tuc := &stubTranscriptUC{err: transcript.ErrSessionNotFound}
		uc := New(&stubSession{}, tuc, newStubStorage(), log.NewNopLogger())
		if _, err := uc.Export(ctx, sc, session.ExportInput{SessionID: "s1", Format: session.ExportFormatJSON}); !errors.Is(err, session.ErrSessionNotFound) {
			t.Errorf("error mismatch: %v", err)
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("delete invalidates the cached transcript", func(t *testing.T) {
		backend := &stubSession{}
		tuc := &stubTranscriptUC{}
		uc := New(backend, tuc, newStubStorage(), log.NewNopLogger())

		if err := uc.Delete(ctx, sc, "s1"); err != nil {
			t.Fatal(err)
		}
		if len(backend.deleted) != 1 || backend.deleted[0] != "s1" {
			t.Errorf("backend delete mismatch: %v", backend.deleted)
		}
		if len(tuc.invalidated) != 1 || tuc.invalidated[0] != "s1" {
			t.Errorf("invalidation mismatch: %v", tuc.invalidated)
		}
	})

	t.Run("missing session id is rejected", func(t *testing.T) {
		uc := New(&stubSession{}, &stubTranscriptUC{}, newStubStorage(), log.NewNopLogger())
		if err := uc.Delete(ctx, sc, ""); !errors.Is(err, session.ErrSessionRequired) {
			t.Errorf("error mismatch: %v", err)
		}
	})
}
