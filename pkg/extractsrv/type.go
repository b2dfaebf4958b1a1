package extractsrv

import pkghttp "usecase-srv/pkg/http"

// ExtractConfig holds configuration for the extraction service client.
type ExtractConfig struct {
	BaseURL    string
	HTTPClient pkghttp.IClient
}

// ExtractRequest is the payload for free-text extraction.
type ExtractRequest struct {
	SessionID      string `json:"session_id,omitempty"`
	RawText        string `json:"raw_text"`
	ProjectContext string `json:"project_context,omitempty"`
	Domain         string `json:"domain,omitempty"`
}

// UploadRequest is the payload for document-upload extraction.
type UploadRequest struct {
	SessionID      string
	FileName       string
	Content        []byte
	ProjectContext string
	Domain         string
}

// RefineRequest is the payload for refining one stored use case.
type RefineRequest struct {
	UseCaseID      string `json:"use_case_id"`
	RefinementType string `json:"refinement_type"`
}

// QueryRequest is the payload for natural-language requirement queries.
type QueryRequest struct {
	SessionID string `json:"session_id"`
	Question  string `json:"question"`
}

// extractImpl implements IExtract.
type extractImpl struct {
	baseURL    string
	httpClient pkghttp.IClient
}
