package extractsrv

import "context"

// IExtract defines the interface for the extraction service API client.
// Responses are returned as raw JSON objects: the backend is not
// schema-stable, so shaping them is the caller's concern.
// Implementations are safe for concurrent use.
type IExtract interface {
	Extract(ctx context.Context, scopeHeader string, req ExtractRequest) (map[string]any, error)
	UploadDocument(ctx context.Context, scopeHeader string, req UploadRequest) (map[string]any, error)
	Refine(ctx context.Context, scopeHeader string, req RefineRequest) (map[string]any, error)
	Query(ctx context.Context, scopeHeader string, req QueryRequest) (map[string]any, error)
}

// New creates a new extraction service client. Returns the interface.
func New(cfg ExtractConfig) IExtract {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = defaultHTTPClient()
	}
	return &extractImpl{
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}
}
