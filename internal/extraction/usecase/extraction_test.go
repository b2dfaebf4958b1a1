package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"usecase-srv/internal/extraction"
	"usecase-srv/internal/model"
	"usecase-srv/internal/transcript"
	"usecase-srv/pkg/extractsrv"
	"usecase-srv/pkg/log"
)

type stubExtract struct {
	extractsrv.IExtract
	response map[string]any
	err      error
}

func (s *stubExtract) Extract(ctx context.Context, scopeHeader string, req extractsrv.ExtractRequest) (map[string]any, error) {
	return s.response, s.err
}

func (s *stubExtract) UploadDocument(ctx context.Context, scopeHeader string, req extractsrv.UploadRequest) (map[string]any, error) {
	return s.response, s.err
}

func (s *stubExtract) Refine(ctx context.Context, scopeHeader string, req extractsrv.RefineRequest) (map[string]any, error) {
	return s.response, s.err
}

func (s *stubExtract) Query(ctx context.Context, scopeHeader string, req extractsrv.QueryRequest) (map[string]any, error) {
	return s.response, s.err
}

type stubProducer struct {
	events [][]byte
	err    error
}

func (p *stubProducer) Publish(key, value []byte) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, value)
	return nil
}

func (p *stubProducer) HealthCheck() error { return nil }
func (p *stubProducer) Close() error       { return nil }

type stubTranscriptUC struct {
	transcript.UseCase
	invalidated []string
}

func (s *stubTranscriptUC) Invalidate(ctx context.Context, sessionID string) error {
	s.invalidated = append(s.invalidated, sessionID)
	return nil
}

func newTestUC(srv *stubExtract, producer *stubProducer, tuc *stubTranscriptUC) extraction.UseCase {
	return New(srv, tuc, producer, log.NewNopLogger())
}

func TestExtract(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("normalizes the backend envelope", func(t *testing.T) {
		srv := &stubExtract{response: map[string]any{
			"session_id":   "s1",
			"stored_count": float64(1),
			"results": []any{
				map[string]any{"id": "uc-1", "title": "Login"},
			},
		}}
		uc := newTestUC(srv, &stubProducer{}, &stubTranscriptUC{})

		result, err := uc.Extract(ctx, sc, extraction.ExtractInput{Message: "users log in"})
		if err != nil {
			t.Fatal(err)
		}
		if result.ExtractedCount != 1 || result.Results[0].Title != "Login" {
			t.Errorf("result mismatch: %+v", result)
		}
		if result.Results[0].MainFlow == nil {
			t.Error("normalized record has nil slices")
		}
	})

	t.Run("empty message is rejected", func(t *testing.T) {
		uc := newTestUC(&stubExtract{}, &stubProducer{}, &stubTranscriptUC{})
		if _, err := uc.Extract(ctx, sc, extraction.ExtractInput{Message: "  "}); !errors.Is(err, extraction.ErrMessageRequired) {
			t.Errorf("error mismatch: %v", err)
		}
	})

	t.Run("invalidates the session transcript", func(t *testing.T) {
		tuc := &stubTranscriptUC{}
		srv := &stubExtract{response: map[string]any{"session_id": "s1"}}
		uc := newTestUC(srv, &stubProducer{}, tuc)

		if _, err := uc.Extract(ctx, sc, extraction.ExtractInput{Message: "text", SessionID: "s1"}); err != nil {
			t.Fatal(err)
		}
		if len(tuc.invalidated) != 1 || tuc.invalidated[0] != "s1" {
			t.Errorf("invalidation mismatch: %v", tuc.invalidated)
		}
	})

	t.Run("publishes an activity event", func(t *testing.T) {
		producer := &stubProducer{}
		srv := &stubExtract{response: map[string]any{
			"session_id": "s1",
			"results":    []any{map[string]any{"title": "A"}},
		}}
		uc := newTestUC(srv, producer, &stubTranscriptUC{})

		if _, err := uc.Extract(ctx, sc, extraction.ExtractInput{Message: "text"}); err != nil {
			t.Fatal(err)
		}
		if len(producer.events) != 1 {
			t.Fatalf("event count mismatch: %d", len(producer.events))
		}
		var event map[string]any
		if err := json.Unmarshal(producer.events[0], &event); err != nil {
			t.Fatal(err)
		}
		if event["type"] != "use_cases.extracted" || event["user_id"] != "u1" {
			t.Errorf("event mismatch: %v", event)
		}
	})

	t.Run("publish failure does not fail the request", func(t *testing.T) {
		producer := &stubProducer{err: errors.New("broker down")}
		srv := &stubExtract{response: map[string]any{}}
		uc := newTestUC(srv, producer, &stubTranscriptUC{})

		if _, err := uc.Extract(ctx, sc, extraction.ExtractInput{Message: "text"}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("backend failure maps to domain error", func(t *testing.T) {
		uc := newTestUC(&stubExtract{err: errors.New("dial tcp")}, &stubProducer{}, &stubTranscriptUC{})
		if _, err := uc.Extract(ctx, sc, extraction.ExtractInput{Message: "text"}); !errors.Is(err, extraction.ErrBackendUnavailable) {
			t.Errorf("error mismatch: %v", err)
		}
	})
}

func TestUploadDocument(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("empty file is rejected", func(t *testing.T) {
		uc := newTestUC(&stubExtract{}, &stubProducer{}, &stubTranscriptUC{})
		if _, err := uc.UploadDocument(ctx, sc, extraction.UploadInput{FileName: "a.pdf"}); !errors.Is(err, extraction.ErrFileRequired) {
			t.Errorf("error mismatch: %v", err)
		}
	})

	t.Run("oversized file is rejected", func(t *testing.T) {
		uc := newTestUC(&stubExtract{}, &stubProducer{}, &stubTranscriptUC{})
		input := extraction.UploadInput{FileName: "a.pdf", Content: make([]byte, extraction.MaxUploadSize+1)}
		if _, err := uc.UploadDocument(ctx, sc, input); !errors.Is(err, extraction.ErrFileTooLarge) {
			t.Errorf("error mismatch: %v", err)
		}
	})

	t.Run("normalizes the backend envelope", func(t *testing.T) {
		srv := &stubExtract{response: map[string]any{
			"session_id":        "s1",
			"extraction_method": "document",
			"generated_use_cases": []any{
				map[string]any{"title": "From doc"},
			},
		}}
		uc := newTestUC(srv, &stubProducer{}, &stubTranscriptUC{})

		result, err := uc.UploadDocument(ctx, sc, extraction.UploadInput{FileName: "a.pdf", Content: []byte("x")})
		if err != nil {
			t.Fatal(err)
		}
		if result.ExtractionMethod != "document" || len(result.Results) != 1 {
			t.Errorf("result mismatch: %+v", result)
		}
	})
}

func TestRefine(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("refined record is tagged and addressable", func(t *testing.T) {
		srv := &stubExtract{response: map[string]any{
			"refined_use_case": map[string]any{"title": "Login with MFA"},
		}}
		uc := newTestUC(srv, &stubProducer{}, &stubTranscriptUC{})

		out, err := uc.Refine(ctx, sc, extraction.RefineInput{TargetID: "uc-1"})
		if err != nil {
			t.Fatal(err)
		}
		if !out.UseCase.Refined || out.UseCase.ID != "uc-1" || out.UseCase.Title != "Login with MFA" {
			t.Errorf("refined record mismatch: %+v", out.UseCase)
		}
	})

	t.Run("missing target is rejected", func(t *testing.T) {
		uc := newTestUC(&stubExtract{}, &stubProducer{}, &stubTranscriptUC{})
		if _, err := uc.Refine(ctx, sc, extraction.RefineInput{}); !errors.Is(err, extraction.ErrTargetRequired) {
			t.Errorf("error mismatch: %v", err)
		}
	})

	t.Run("unknown use case maps to not found", func(t *testing.T) {
		uc := newTestUC(&stubExtract{err: extractsrv.ErrUseCaseNotFound}, &stubProducer{}, &stubTranscriptUC{})
		if _, err := uc.Refine(ctx, sc, extraction.RefineInput{TargetID: "gone"}); !errors.Is(err, extraction.ErrUseCaseNotFound) {
			t.Errorf("error mismatch: %v", err)
		}
	})

	t.Run("session transcript invalidated when session given", func(t *testing.T) {
		tuc := &stubTranscriptUC{}
		srv := &stubExtract{response: map[string]any{
			"refined_use_case": map[string]any{"id": "uc-1"},
		}}
		uc := newTestUC(srv, &stubProducer{}, tuc)

		if _, err := uc.Refine(ctx, sc, extraction.RefineInput{TargetID: "uc-1", SessionID: "s1"}); err != nil {
			t.Fatal(err)
		}
		if len(tuc.invalidated) != 1 {
			t.Errorf("invalidation mismatch: %v", tuc.invalidated)
		}
	})
}

func TestQuery(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("answer and related records returned", func(t *testing.T) {
		srv := &stubExtract{response: map[string]any{
			"answer": "Two login flows exist.",
			"related_use_cases": []any{
				map[string]any{"id": "uc-1", "title": "Login"},
			},
		}}
		uc := newTestUC(srv, &stubProducer{}, &stubTranscriptUC{})

		out, err := uc.Query(ctx, sc, extraction.QueryInput{Question: "how many login flows?"})
		if err != nil {
			t.Fatal(err)
		}
		if out.Answer != "Two login flows exist." || len(out.UseCases) != 1 {
			t.Errorf("output mismatch: %+v", out)
		}
	})

	t.Run("legacy response key accepted", func(t *testing.T) {
		srv := &stubExtract{response: map[string]any{"response": "ok"}}
		uc := newTestUC(srv, &stubProducer{}, &stubTranscriptUC{})

		out, err := uc.Query(ctx, sc, extraction.QueryInput{Question: "q"})
		if err != nil {
			t.Fatal(err)
		}
		if out.Answer != "ok" {
			t.Errorf("answer mismatch: %q", out.Answer)
		}
	})

	t.Run("empty question is rejected", func(t *testing.T) {
		uc := newTestUC(&stubExtract{}, &stubProducer{}, &stubTranscriptUC{})
		if _, err := uc.Query(ctx, sc, extraction.QueryInput{}); !errors.Is(err, extraction.ErrQuestionRequired) {
			t.Errorf("error mismatch: %v", err)
		}
	})
}
