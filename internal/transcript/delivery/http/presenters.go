package http

import (
	"usecase-srv/internal/model"
	"usecase-srv/internal/transcript"
)

type getTranscriptReq struct {
	SessionID string
	Limit     int
	Refresh   bool
}

func (r getTranscriptReq) toInput() transcript.GetTranscriptInput {
	return transcript.GetTranscriptInput{
		SessionID: r.SessionID,
		Limit:     r.Limit,
		SkipCache: r.Refresh,
	}
}

type applyRefinementReq struct {
	TargetID       string                    `json:"target_id" binding:"required"`
	RefinedUseCase map[string]any            `json:"refined_use_case" binding:"required"`
	Mode           string                    `json:"mode,omitempty"`
	Transcript     []model.TranscriptMessage `json:"transcript"`
}

func (r applyRefinementReq) toInput() transcript.ApplyRefinementInput {
	// Patching locally is the reason this endpoint exists; reload callers
	// just re-fetch the transcript.
	mode := transcript.RefineModeInPlace
	if r.Mode != "" {
		mode = transcript.RefineMode(r.Mode)
	}
	return transcript.ApplyRefinementInput{
		Transcript: r.Transcript,
		TargetID:   r.TargetID,
		RefinedRaw: r.RefinedUseCase,
		Mode:       mode,
	}
}

type transcriptResp struct {
	SessionID string                    `json:"session_id"`
	Title     string                    `json:"title"`
	Summary   string                    `json:"summary,omitempty"`
	Messages  []model.TranscriptMessage `json:"messages"`
	UseCases  []model.UseCase           `json:"use_cases"`
	FromCache bool                      `json:"from_cache"`
}

// newTranscriptResp exposes the canonical records directly: their JSON tags
// are the product's wire contract, including the heterogeneous sub-flow
// shapes.
func (h *handler) newTranscriptResp(o transcript.TranscriptOutput) transcriptResp {
	return transcriptResp{
		SessionID: o.SessionID,
		Title:     o.Title,
		Summary:   o.Summary,
		Messages:  o.Messages,
		UseCases:  o.UseCases,
		FromCache: o.FromCache,
	}
}

type refinementResp struct {
	Messages []model.TranscriptMessage `json:"messages"`
}

func (h *handler) newRefinementResp(messages []model.TranscriptMessage) refinementResp {
	return refinementResp{Messages: messages}
}
