package model

import "testing"

func TestNewExtractionResultFromRaw(t *testing.T) {
	t.Run("extracted_count falls back to results length", func(t *testing.T) {
		result := NewExtractionResultFromRaw(map[string]any{
			"results": []any{map[string]any{}, map[string]any{}},
		})
		if result.ExtractedCount != 2 {
			t.Errorf("ExtractedCount mismatch: got %d, want 2", result.ExtractedCount)
		}
	})

	t.Run("finite extracted_count is kept", func(t *testing.T) {
		result := NewExtractionResultFromRaw(map[string]any{
			"extracted_count": float64(7),
			"results":         []any{map[string]any{}},
		})
		if result.ExtractedCount != 7 {
			t.Errorf("ExtractedCount mismatch: got %d, want 7", result.ExtractedCount)
		}
	})

	t.Run("non-numeric extracted_count falls back", func(t *testing.T) {
		result := NewExtractionResultFromRaw(map[string]any{
			"extracted_count": "many",
			"results":         []any{map[string]any{}},
		})
		if result.ExtractedCount != 1 {
			t.Errorf("ExtractedCount mismatch: got %d, want 1", result.ExtractedCount)
		}
	})

	t.Run("results wins over generated_use_cases", func(t *testing.T) {
		result := NewExtractionResultFromRaw(map[string]any{
			"results":             []any{map[string]any{"title": "From results"}},
			"generated_use_cases": []any{map[string]any{"title": "From fresh"}, map[string]any{}},
		})
		if len(result.Results) != 1 || result.Results[0].Title != "From results" {
			t.Errorf("Results mismatch: %+v", result.Results)
		}
	})

	t.Run("generated_use_cases used when results absent", func(t *testing.T) {
		result := NewExtractionResultFromRaw(map[string]any{
			"generated_use_cases": []any{map[string]any{"title": "Fresh"}},
		})
		if len(result.Results) != 1 || result.Results[0].Title != "Fresh" {
			t.Errorf("Results mismatch: %+v", result.Results)
		}
	})

	t.Run("empty envelope is fully defined", func(t *testing.T) {
		result := NewExtractionResultFromRaw(map[string]any{})
		if result.Results == nil || result.ValidationResults == nil {
			t.Error("slices should be non-nil")
		}
		if result.ExtractedCount != 0 {
			t.Errorf("ExtractedCount should be 0, got %d", result.ExtractedCount)
		}
		if result.ProcessingTimeSeconds != nil {
			t.Error("ProcessingTimeSeconds should be absent")
		}
	})

	t.Run("validation entries normalized", func(t *testing.T) {
		result := NewExtractionResultFromRaw(map[string]any{
			"validation_results": []any{
				map[string]any{
					"title":         "Login",
					"status":        "valid_with_warnings",
					"issues":        []any{"missing outcome"},
					"quality_score": 0.8,
				},
				map[string]any{"title": "Broken", "status": "error", "reason": "bad shape"},
			},
		})
		if len(result.ValidationResults) != 2 {
			t.Fatalf("ValidationResults length mismatch: got %d", len(result.ValidationResults))
		}
		first := result.ValidationResults[0]
		if first.Status != "valid_with_warnings" || len(first.Issues) != 1 {
			t.Errorf("first entry mismatch: %+v", first)
		}
		if first.QualityScore == nil || *first.QualityScore != 0.8 {
			t.Errorf("quality score mismatch: %v", first.QualityScore)
		}
		if result.ValidationResults[1].Reason != "bad shape" {
			t.Errorf("second entry mismatch: %+v", result.ValidationResults[1])
		}
	})

	t.Run("processing time kept when finite", func(t *testing.T) {
		result := NewExtractionResultFromRaw(map[string]any{
			"processing_time_seconds": 2.5,
		})
		if result.ProcessingTimeSeconds == nil || *result.ProcessingTimeSeconds != 2.5 {
			t.Errorf("ProcessingTimeSeconds mismatch: %v", result.ProcessingTimeSeconds)
		}
	})
}

func TestNewMessageMetadataFromRaw(t *testing.T) {
	t.Run("upload metadata extracted", func(t *testing.T) {
		md := NewMessageMetadataFromRaw(map[string]any{
			"type":     MetadataTypeDocumentUpload,
			"filename": "reqs.pdf",
			"size":     float64(2048),
		})
		if md == nil {
			t.Fatal("metadata should not be nil")
		}
		if md.Type != MetadataTypeDocumentUpload || md.Filename != "reqs.pdf" || md.Size != 2048 {
			t.Errorf("metadata mismatch: %+v", md)
		}
	})

	t.Run("empty metadata collapses to nil", func(t *testing.T) {
		if md := NewMessageMetadataFromRaw(map[string]any{"use_cases": []any{}}); md != nil {
			t.Errorf("expected nil metadata, got %+v", md)
		}
	})

	t.Run("nil input", func(t *testing.T) {
		if md := NewMessageMetadataFromRaw(nil); md != nil {
			t.Errorf("expected nil metadata, got %+v", md)
		}
	})
}
