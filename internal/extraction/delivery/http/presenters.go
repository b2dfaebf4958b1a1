package http

import (
	"usecase-srv/internal/extraction"
	"usecase-srv/internal/model"
)

type extractReq struct {
	SessionID      string `json:"session_id,omitempty"`
	Message        string `json:"message" binding:"required"`
	ProjectContext string `json:"project_context,omitempty"`
	Domain         string `json:"domain,omitempty"`
}

func (r extractReq) toInput() extraction.ExtractInput {
	return extraction.ExtractInput{
		SessionID:      r.SessionID,
		Message:        r.Message,
		ProjectContext: r.ProjectContext,
		Domain:         r.Domain,
	}
}

type uploadReq struct {
	SessionID      string
	FileName       string
	Content        []byte
	ProjectContext string
	Domain         string
}

func (r uploadReq) toInput() extraction.UploadInput {
	return extraction.UploadInput{
		SessionID:      r.SessionID,
		FileName:       r.FileName,
		Content:        r.Content,
		ProjectContext: r.ProjectContext,
		Domain:         r.Domain,
	}
}

type refineReq struct {
	UseCaseID      string `json:"use_case_id" binding:"required"`
	RefinementType string `json:"refinement_type,omitempty"`
	SessionID      string `json:"session_id,omitempty"`
}

func (r refineReq) toInput() extraction.RefineInput {
	return extraction.RefineInput{
		TargetID:       r.UseCaseID,
		RefinementType: r.RefinementType,
		SessionID:      r.SessionID,
	}
}

type queryReq struct {
	SessionID string `json:"session_id,omitempty"`
	Question  string `json:"question" binding:"required"`
}

func (r queryReq) toInput() extraction.QueryInput {
	return extraction.QueryInput{
		SessionID: r.SessionID,
		Question:  r.Question,
	}
}

type extractionResp struct {
	SessionID             string                  `json:"session_id"`
	Message               string                  `json:"message"`
	ExtractedCount        int                     `json:"extracted_count"`
	StoredCount           int                     `json:"stored_count"`
	DuplicateCount        int                     `json:"duplicate_count"`
	ProcessingTimeSeconds *float64                `json:"processing_time_seconds,omitempty"`
	ExtractionMethod      string                  `json:"extraction_method,omitempty"`
	ValidationResults     []model.ValidationEntry `json:"validation_results"`
	Results               []model.UseCase         `json:"results"`
}

func (h *handler) newExtractionResp(o model.ExtractionResult) extractionResp {
	return extractionResp{
		SessionID:             o.SessionID,
		Message:               o.Message,
		ExtractedCount:        o.ExtractedCount,
		StoredCount:           o.StoredCount,
		DuplicateCount:        o.DuplicateCount,
		ProcessingTimeSeconds: o.ProcessingTimeSeconds,
		ExtractionMethod:      o.ExtractionMethod,
		ValidationResults:     o.ValidationResults,
		Results:               o.Results,
	}
}

type refineResp struct {
	RefinedUseCase model.UseCase `json:"refined_use_case"`
}

func (h *handler) newRefineResp(o extraction.RefineOutput) refineResp {
	return refineResp{RefinedUseCase: o.UseCase}
}

type queryResp struct {
	Answer   string          `json:"answer"`
	UseCases []model.UseCase `json:"related_use_cases,omitempty"`
}

func (h *handler) newQueryResp(o extraction.QueryOutput) queryResp {
	return queryResp{Answer: o.Answer, UseCases: o.UseCases}
}
