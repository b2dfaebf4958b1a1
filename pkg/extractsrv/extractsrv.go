package extractsrv

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	pkghttp "usecase-srv/pkg/http"
)

func defaultHTTPClient() pkghttp.IClient {
	return pkghttp.NewClient(pkghttp.ClientConfig{
		Timeout:   DefaultTimeout,
		Retries:   DefaultRetries,
		RetryWait: DefaultRetryWait,
	})
}

func (c *extractImpl) headers(scopeHeader string) map[string]string {
	if scopeHeader == "" {
		return nil
	}
	return map[string]string{HeaderScope: scopeHeader}
}

func (c *extractImpl) decode(body []byte, statusCode int, op string) (map[string]any, error) {
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: unexpected status code: %d", op, statusCode)
	}
	var envelope map[string]any
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%s: failed to unmarshal response: %w", op, err)
	}
	return envelope, nil
}

// Extract submits free text for use-case extraction.
func (c *extractImpl) Extract(ctx context.Context, scopeHeader string, req ExtractRequest) (map[string]any, error) {
	url := c.baseURL + PathParse

	body, statusCode, err := c.httpClient.Post(ctx, url, req, c.headers(scopeHeader))
	if err != nil {
		return nil, fmt.Errorf("failed to extract use cases: %w", err)
	}
	return c.decode(body, statusCode, "extract")
}

// UploadDocument submits a document for extraction via multipart upload.
func (c *extractImpl) UploadDocument(ctx context.Context, scopeHeader string, req UploadRequest) (map[string]any, error) {
	url := c.baseURL + PathUpload

	fields := map[string]string{}
	if req.SessionID != "" {
		fields["session_id"] = req.SessionID
	}
	if req.ProjectContext != "" {
		fields["project_context"] = req.ProjectContext
	}
	if req.Domain != "" {
		fields["domain"] = req.Domain
	}

	body, statusCode, err := c.httpClient.PostMultipart(ctx, url, pkghttp.FilePart{
		FieldName: "file",
		FileName:  req.FileName,
		Content:   req.Content,
	}, fields, c.headers(scopeHeader))
	if err != nil {
		return nil, fmt.Errorf("failed to upload document: %w", err)
	}
	return c.decode(body, statusCode, "upload")
}

// Refine asks the backend to refine one stored use case.
func (c *extractImpl) Refine(ctx context.Context, scopeHeader string, req RefineRequest) (map[string]any, error) {
	url := c.baseURL + PathRefine

	body, statusCode, err := c.httpClient.Post(ctx, url, req, c.headers(scopeHeader))
	if err != nil {
		return nil, fmt.Errorf("failed to refine use case: %w", err)
	}
	if statusCode == http.StatusNotFound {
		return nil, ErrUseCaseNotFound
	}
	return c.decode(body, statusCode, "refine")
}

// Query answers a natural-language question about a session's requirements.
func (c *extractImpl) Query(ctx context.Context, scopeHeader string, req QueryRequest) (map[string]any, error) {
	url := c.baseURL + PathQuery

	body, statusCode, err := c.httpClient.Post(ctx, url, req, c.headers(scopeHeader))
	if err != nil {
		return nil, fmt.Errorf("failed to query requirements: %w", err)
	}
	return c.decode(body, statusCode, "query")
}
