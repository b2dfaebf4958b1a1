package usecase

import (
	"reflect"
	"strings"
	"testing"
)

func userMsg(content string) map[string]any {
	return map[string]any{"role": "user", "content": content}
}

func uploadAck(filename string) map[string]any {
	return map[string]any{
		"role":    "user",
		"content": "Uploaded " + filename,
		"metadata": map[string]any{
			"type":     "document_upload",
			"filename": filename,
			"size":     float64(1024),
		},
	}
}

func assistantWithRefs(refs ...any) map[string]any {
	return map[string]any{
		"role":    "assistant",
		"content": "Extracted use cases",
		"metadata": map[string]any{
			"use_cases": refs,
		},
	}
}

func longText() string {
	return strings.Repeat("requirements text ", 20) // well past 200 chars
}

func TestBuildTranscript(t *testing.T) {
	t.Run("order is preserved", func(t *testing.T) {
		history := []map[string]any{
			userMsg("first"),
			{"role": "assistant", "content": "second"},
			userMsg("third"),
		}
		messages := buildTranscript(history, nil)
		if len(messages) != 3 {
			t.Fatalf("length mismatch: got %d, want 3", len(messages))
		}
		for i, want := range []string{"first", "second", "third"} {
			if messages[i].Content != want {
				t.Errorf("message %d: got %q, want %q", i, messages[i].Content, want)
			}
		}
	})

	t.Run("long user message after upload is suppressed", func(t *testing.T) {
		history := []map[string]any{
			uploadAck("reqs.pdf"),
			userMsg(longText()),
			{"role": "assistant", "content": "done"},
		}
		messages := buildTranscript(history, nil)
		if len(messages) != 2 {
			t.Fatalf("length mismatch: got %d, want 2", len(messages))
		}
		if messages[0].Metadata == nil || messages[0].Metadata.Filename != "reqs.pdf" {
			t.Errorf("upload turn should survive: %+v", messages[0])
		}
		if messages[1].Role != "assistant" {
			t.Errorf("assistant turn should survive: %+v", messages[1])
		}
	})

	t.Run("short message after upload survives", func(t *testing.T) {
		history := []map[string]any{
			uploadAck("reqs.pdf"),
			userMsg("please extract"),
		}
		if messages := buildTranscript(history, nil); len(messages) != 2 {
			t.Errorf("length mismatch: got %d, want 2", len(messages))
		}
	})

	t.Run("long message without preceding upload survives", func(t *testing.T) {
		history := []map[string]any{
			userMsg("hello"),
			userMsg(longText()),
		}
		if messages := buildTranscript(history, nil); len(messages) != 2 {
			t.Errorf("length mismatch: got %d, want 2", len(messages))
		}
	})

	t.Run("long first message survives", func(t *testing.T) {
		history := []map[string]any{userMsg(longText())}
		if messages := buildTranscript(history, nil); len(messages) != 1 {
			t.Errorf("length mismatch: got %d, want 1", len(messages))
		}
	})

	t.Run("long assistant message after upload survives", func(t *testing.T) {
		history := []map[string]any{
			uploadAck("reqs.pdf"),
			{"role": "assistant", "content": longText()},
		}
		if messages := buildTranscript(history, nil); len(messages) != 2 {
			t.Errorf("length mismatch: got %d, want 2", len(messages))
		}
	})

	t.Run("lookback is exactly one message", func(t *testing.T) {
		history := []map[string]any{
			uploadAck("reqs.pdf"),
			userMsg("ok"),
			userMsg(longText()),
		}
		if messages := buildTranscript(history, nil); len(messages) != 3 {
			t.Errorf("length mismatch: got %d, want 3", len(messages))
		}
	})

	t.Run("history refs resolve to fresh records", func(t *testing.T) {
		history := []map[string]any{
			assistantWithRefs(map[string]any{"id": "uc-1", "title": "Stale title"}),
		}
		fresh := []map[string]any{
			{"id": "uc-1", "title": "Fresh title", "main_flow": []any{"step"}},
		}
		messages := buildTranscript(history, fresh)
		if len(messages) != 1 || len(messages[0].UseCases) != 1 {
			t.Fatalf("unexpected transcript: %+v", messages)
		}
		got := messages[0].UseCases[0]
		if got.Title != "Fresh title" || !reflect.DeepEqual(got.MainFlow, []string{"step"}) {
			t.Errorf("fresh record should win: %+v", got)
		}
	})

	t.Run("legacy use_case_id refs resolve", func(t *testing.T) {
		history := []map[string]any{
			assistantWithRefs(map[string]any{"use_case_id": "uc-2"}),
		}
		fresh := []map[string]any{{"id": "uc-2", "title": "Fresh"}}
		messages := buildTranscript(history, fresh)
		if messages[0].UseCases[0].Title != "Fresh" {
			t.Errorf("use_case_id ref should resolve: %+v", messages[0].UseCases)
		}
	})

	t.Run("numeric and string ids reconcile", func(t *testing.T) {
		history := []map[string]any{
			assistantWithRefs(map[string]any{"id": float64(7), "title": "Stale"}),
		}
		fresh := []map[string]any{{"id": "7", "title": "Fresh"}}
		messages := buildTranscript(history, fresh)
		if messages[0].UseCases[0].Title != "Fresh" {
			t.Errorf("numeric ref should match string id: %+v", messages[0].UseCases)
		}
	})

	t.Run("unmatched ref falls back to its own payload", func(t *testing.T) {
		history := []map[string]any{
			assistantWithRefs(map[string]any{"id": "gone", "title": "Embedded"}),
		}
		messages := buildTranscript(history, nil)
		got := messages[0].UseCases[0]
		if got.Title != "Embedded" || got.ID != "gone" {
			t.Errorf("embedded payload should be used: %+v", got)
		}
	})

	t.Run("id-less ref is normalized standalone", func(t *testing.T) {
		history := []map[string]any{
			assistantWithRefs(map[string]any{"title": "Preview"}),
		}
		fresh := []map[string]any{{"id": "uc-1", "title": "Fresh"}}
		messages := buildTranscript(history, fresh)
		got := messages[0].UseCases[0]
		if got.Title != "Preview" || got.ID != "" {
			t.Errorf("id-less ref should keep its payload: %+v", got)
		}
	})

	t.Run("duplicate fresh ids last write wins", func(t *testing.T) {
		fresh := []map[string]any{
			{"id": "uc-1", "title": "Older"},
			{"id": "uc-1", "title": "Newer"},
		}
		idx := buildIdentityIndex(fresh)
		if idx["uc-1"].Title != "Newer" {
			t.Errorf("later record should win: %+v", idx["uc-1"])
		}
	})

	t.Run("validation results carried onto the turn", func(t *testing.T) {
		history := []map[string]any{
			{
				"role":    "assistant",
				"content": "Extracted",
				"metadata": map[string]any{
					"validation_results": []any{
						map[string]any{"title": "Login", "status": "valid"},
					},
				},
			},
		}
		messages := buildTranscript(history, nil)
		if len(messages[0].ValidationResults) != 1 || messages[0].ValidationResults[0].Title != "Login" {
			t.Errorf("validation results missing: %+v", messages[0])
		}
	})

	t.Run("empty history yields empty transcript", func(t *testing.T) {
		messages := buildTranscript(nil, nil)
		if messages == nil || len(messages) != 0 {
			t.Errorf("expected empty non-nil transcript, got %v", messages)
		}
	})
}

func TestBuildTranscriptEndToEnd(t *testing.T) {
	history := []map[string]any{
		uploadAck("spec.docx"),
		userMsg(longText()),
		assistantWithRefs(
			map[string]any{"id": "uc-1", "title": "Old login"},
			map[string]any{"title": "Unsaved preview"},
		),
		userMsg("refine the login one"),
	}
	fresh := []map[string]any{
		{"id": "uc-1", "title": "Login with MFA", "status": "stored"},
	}

	messages := buildTranscript(history, fresh)
	if len(messages) != 3 {
		t.Fatalf("length mismatch: got %d, want 3", len(messages))
	}

	extraction := messages[1]
	if len(extraction.UseCases) != 2 {
		t.Fatalf("use-case count mismatch: %+v", extraction.UseCases)
	}
	if extraction.UseCases[0].Title != "Login with MFA" {
		t.Errorf("indexed record should be fresh: %+v", extraction.UseCases[0])
	}
	if extraction.UseCases[1].Title != "Unsaved preview" {
		t.Errorf("preview record should keep its payload: %+v", extraction.UseCases[1])
	}
	for _, uc := range extraction.UseCases {
		if uc.MainFlow == nil || uc.SubFlows == nil {
			t.Errorf("normalized record has nil slices: %+v", uc)
		}
	}
	if messages[2].Content != "refine the login one" {
		t.Errorf("trailing turn mismatch: %+v", messages[2])
	}
}
