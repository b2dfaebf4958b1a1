package transcript

import "usecase-srv/internal/model"

// EchoSuppressionMinChars is the content length above which a user message
// directly following a document upload is treated as the backend echoing the
// extracted document text. Documented heuristic: it can misfire on a long
// manually-typed message sent right after an upload; the backend gives no
// stronger signal.
const EchoSuppressionMinChars = 200

// RefineMode selects how a refinement result is applied to a transcript.
type RefineMode string

const (
	// RefineModeReload defers to a fresh reconciliation run against
	// re-fetched history. Used whenever a persisted session exists; the
	// backend is the source of truth.
	RefineModeReload RefineMode = "reload"
	// RefineModeInPlace substitutes the refined record across the given
	// transcript. Used only for unsaved, purely local extraction results.
	RefineModeInPlace RefineMode = "inPlace"
)

type GetTranscriptInput struct {
	SessionID string
	Limit     int
	// SkipCache forces a backend fetch even when a cached snapshot exists.
	SkipCache bool
}

type ApplyRefinementInput struct {
	Transcript []model.TranscriptMessage
	TargetID   string
	RefinedRaw map[string]any
	Mode       RefineMode
}

// TranscriptOutput is one reconciled transcript snapshot. Messages and
// UseCases come from the same backend read.
type TranscriptOutput struct {
	SessionID string                    `json:"session_id"`
	Title     string                    `json:"title"`
	Summary   string                    `json:"summary,omitempty"`
	Messages  []model.TranscriptMessage `json:"messages"`
	UseCases  []model.UseCase           `json:"use_cases"`
	FromCache bool                      `json:"-"`
}
