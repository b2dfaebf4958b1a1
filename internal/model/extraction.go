package model

import "math"

// ExtractionResult is the canonical form of an extraction/refinement
// response envelope. Fully defined after normalization except
// ProcessingTimeSeconds, which is informational and allowed to be absent.
type ExtractionResult struct {
	SessionID             string            `json:"session_id"`
	Message               string            `json:"message"`
	ExtractedCount        int               `json:"extracted_count"`
	StoredCount           int               `json:"stored_count"`
	DuplicateCount        int               `json:"duplicate_count"`
	ProcessingTimeSeconds *float64          `json:"processing_time_seconds,omitempty"`
	SpeedPerUseCase       *float64          `json:"speed_per_use_case,omitempty"`
	ExtractionMethod      string            `json:"extraction_method,omitempty"`
	ValidationResults     []ValidationEntry `json:"validation_results"`
	Results               []UseCase         `json:"results"`
}

// ValidationEntry is one per-use-case validation verdict from extraction.
type ValidationEntry struct {
	Title        string   `json:"title"`
	Status       string   `json:"status"`
	Issues       []string `json:"issues"`
	QualityScore *float64 `json:"quality_score,omitempty"`
	Reason       string   `json:"reason,omitempty"`
}

// NewExtractionResultFromRaw normalizes a raw extraction response envelope.
// The result list comes from "results" when present, otherwise from
// "generated_use_cases"; each element goes through NewUseCaseFromRaw.
// Pure and total like the record normalizer.
func NewExtractionResultFromRaw(raw map[string]any) ExtractionResult {
	result := ExtractionResult{
		ValidationResults: []ValidationEntry{},
		Results:           []UseCase{},
	}
	if raw == nil {
		return result
	}

	result.SessionID, _ = raw["session_id"].(string)
	result.Message, _ = raw["message"].(string)
	result.ExtractionMethod, _ = raw["extraction_method"].(string)

	var rawResults []any
	if arr, ok := raw["results"].([]any); ok {
		rawResults = arr
	} else if arr, ok := raw["generated_use_cases"].([]any); ok {
		rawResults = arr
	}
	for _, el := range rawResults {
		entry, _ := el.(map[string]any)
		result.Results = append(result.Results, NewUseCaseFromRaw(entry))
	}

	// A backend that omits the count must not silently under-report.
	if count, ok := finiteNumber(raw["extracted_count"]); ok {
		result.ExtractedCount = int(count)
	} else {
		result.ExtractedCount = len(result.Results)
	}
	if count, ok := finiteNumber(raw["stored_count"]); ok {
		result.StoredCount = int(count)
	}
	if count, ok := finiteNumber(raw["duplicate_count"]); ok {
		result.DuplicateCount = int(count)
	}
	if secs, ok := finiteNumber(raw["processing_time_seconds"]); ok {
		result.ProcessingTimeSeconds = &secs
	}
	if speed, ok := finiteNumber(raw["speed_per_use_case"]); ok {
		result.SpeedPerUseCase = &speed
	}

	if entries, ok := raw["validation_results"].([]any); ok {
		for _, el := range entries {
			entry, _ := el.(map[string]any)
			result.ValidationResults = append(result.ValidationResults, NewValidationEntryFromRaw(entry))
		}
	}

	return result
}

// NewValidationEntryFromRaw normalizes one raw validation entry.
func NewValidationEntryFromRaw(raw map[string]any) ValidationEntry {
	entry := ValidationEntry{Issues: []string{}}
	if raw == nil {
		return entry
	}

	entry.Title, _ = raw["title"].(string)
	entry.Status, _ = raw["status"].(string)
	entry.Reason, _ = raw["reason"].(string)
	if issues, ok := raw["issues"].([]any); ok {
		entry.Issues = toStringSlice(issues)
	}
	if score, ok := finiteNumber(raw["quality_score"]); ok {
		entry.QualityScore = &score
	}

	return entry
}

func finiteNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
