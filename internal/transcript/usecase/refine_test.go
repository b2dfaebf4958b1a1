package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"usecase-srv/internal/model"
	"usecase-srv/internal/transcript"
	"usecase-srv/pkg/log"
)

func refineUC(t *testing.T) *implUseCase {
	t.Helper()
	return &implUseCase{l: log.NewNopLogger()}
}

func sampleTranscript() []model.TranscriptMessage {
	return []model.TranscriptMessage{
		{Role: model.RoleUser, Content: "extract please"},
		{
			Role:    model.RoleAssistant,
			Content: "done",
			UseCases: []model.UseCase{
				{ID: "uc-1", Title: "Login"},
				{ID: "uc-2", Title: "Checkout"},
			},
		},
	}
}

func TestApplyRefinement(t *testing.T) {
	ctx := context.Background()

	t.Run("in-place replaces the matching record", func(t *testing.T) {
		out, err := refineUC(t).ApplyRefinement(ctx, transcript.ApplyRefinementInput{
			Transcript: sampleTranscript(),
			TargetID:   "uc-1",
			RefinedRaw: map[string]any{"id": "uc-1", "title": "Login with MFA"},
			Mode:       transcript.RefineModeInPlace,
		})
		if err != nil {
			t.Fatal(err)
		}
		got := out[1].UseCases[0]
		if got.Title != "Login with MFA" || !got.Refined {
			t.Errorf("refined record mismatch: %+v", got)
		}
		if out[1].UseCases[1].Title != "Checkout" {
			t.Errorf("unrelated record touched: %+v", out[1].UseCases[1])
		}
	})

	t.Run("in-place is pure replacement, no merge", func(t *testing.T) {
		messages := []model.TranscriptMessage{{
			Role: model.RoleAssistant,
			UseCases: []model.UseCase{{
				ID:           "uc-1",
				Title:        "Login",
				Stakeholders: []string{"customer"},
			}},
		}}
		out, err := refineUC(t).ApplyRefinement(ctx, transcript.ApplyRefinementInput{
			Transcript: messages,
			TargetID:   "uc-1",
			RefinedRaw: map[string]any{"id": "uc-1", "title": "Login v2"},
			Mode:       transcript.RefineModeInPlace,
		})
		if err != nil {
			t.Fatal(err)
		}
		got := out[0].UseCases[0]
		if len(got.Stakeholders) != 0 {
			t.Errorf("old fields should not merge in: %+v", got)
		}
	})

	t.Run("no match leaves transcript equivalent", func(t *testing.T) {
		before := sampleTranscript()
		out, err := refineUC(t).ApplyRefinement(ctx, transcript.ApplyRefinementInput{
			Transcript: before,
			TargetID:   "missing",
			RefinedRaw: map[string]any{"title": "Orphan"},
			Mode:       transcript.RefineModeInPlace,
		})
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(out, before) {
			t.Errorf("transcript changed on miss:\n got %+v\nwant %+v", out, before)
		}
	})

	t.Run("input transcript is not mutated", func(t *testing.T) {
		before := sampleTranscript()
		_, err := refineUC(t).ApplyRefinement(ctx, transcript.ApplyRefinementInput{
			Transcript: before,
			TargetID:   "uc-1",
			RefinedRaw: map[string]any{"id": "uc-1", "title": "Changed"},
			Mode:       transcript.RefineModeInPlace,
		})
		if err != nil {
			t.Fatal(err)
		}
		if before[1].UseCases[0].Title != "Login" {
			t.Errorf("input mutated: %+v", before[1].UseCases[0])
		}
	})

	t.Run("repeated application is idempotent", func(t *testing.T) {
		uc := refineUC(t)
		input := transcript.ApplyRefinementInput{
			Transcript: sampleTranscript(),
			TargetID:   "uc-1",
			RefinedRaw: map[string]any{"id": "uc-1", "title": "Login with MFA"},
			Mode:       transcript.RefineModeInPlace,
		}
		once, err := uc.ApplyRefinement(ctx, input)
		if err != nil {
			t.Fatal(err)
		}
		input.Transcript = once
		twice, err := uc.ApplyRefinement(ctx, input)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("second application changed the transcript")
		}
	})

	t.Run("refined record without id stays addressable", func(t *testing.T) {
		out, err := refineUC(t).ApplyRefinement(ctx, transcript.ApplyRefinementInput{
			Transcript: sampleTranscript(),
			TargetID:   "uc-1",
			RefinedRaw: map[string]any{"title": "No id from backend"},
			Mode:       transcript.RefineModeInPlace,
		})
		if err != nil {
			t.Fatal(err)
		}
		if out[1].UseCases[0].ID != "uc-1" {
			t.Errorf("target id should be kept: %+v", out[1].UseCases[0])
		}
	})

	t.Run("reload returns the transcript untouched", func(t *testing.T) {
		before := sampleTranscript()
		out, err := refineUC(t).ApplyRefinement(ctx, transcript.ApplyRefinementInput{
			Transcript: before,
			TargetID:   "uc-1",
			RefinedRaw: map[string]any{"id": "uc-1", "title": "Ignored"},
			Mode:       transcript.RefineModeReload,
		})
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(out, before) {
			t.Errorf("reload should not patch locally")
		}
	})

	t.Run("unknown mode is rejected", func(t *testing.T) {
		_, err := refineUC(t).ApplyRefinement(ctx, transcript.ApplyRefinementInput{
			Transcript: sampleTranscript(),
			TargetID:   "uc-1",
			Mode:       transcript.RefineMode("merge"),
		})
		if !errors.Is(err, transcript.ErrUnknownRefineMode) {
			t.Errorf("error mismatch: got %v, want ErrUnknownRefineMode", err)
		}
	})
}
