package sessionsrv

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

func (c *sessionImpl) headers(scopeHeader string) map[string]string {
	if scopeHeader == "" {
		return nil
	}
	return map[string]string{HeaderScope: scopeHeader}
}

func checkStatus(statusCode int, op string) error {
	switch statusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return ErrSessionNotFound
	case http.StatusForbidden:
		return ErrForbidden
	default:
		return fmt.Errorf("%s: unexpected status code: %d", op, statusCode)
	}
}

// CreateSession creates a new session or re-opens an existing one.
func (c *sessionImpl) CreateSession(ctx context.Context, scopeHeader string, req CreateSessionRequest) (CreateSessionResponse, error) {
	url := c.baseURL + PathSession + "/create"

	body, statusCode, err := c.httpClient.Post(ctx, url, req, c.headers(scopeHeader))
	if err != nil {
		return CreateSessionResponse{}, fmt.Errorf("failed to create session: %w", err)
	}
	if err := checkStatus(statusCode, "create session"); err != nil {
		return CreateSessionResponse{}, err
	}

	var resp CreateSessionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return CreateSessionResponse{}, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return resp, nil
}

// GetHistory fetches the conversation history and the fresh use-case
// collection for a session in a single round trip. Both snapshots come from
// the same backend read, which is what transcript reconciliation requires.
func (c *sessionImpl) GetHistory(ctx context.Context, scopeHeader, sessionID string, limit int) (HistoryEnvelope, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	url := fmt.Sprintf("%s%s/%s/history?limit=%d", c.baseURL, PathSession, sessionID, limit)

	body, statusCode, err := c.httpClient.Get(ctx, url, c.headers(scopeHeader))
	if err != nil {
		return HistoryEnvelope{}, fmt.Errorf("failed to get session history: %w", err)
	}
	if err := checkStatus(statusCode, "get history"); err != nil {
		return HistoryEnvelope{}, err
	}

	var envelope HistoryEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return HistoryEnvelope{}, fmt.Errorf("failed to unmarshal history: %w", err)
	}
	return envelope, nil
}

// GetTitle fetches the stored title of a session.
func (c *sessionImpl) GetTitle(ctx context.Context, scopeHeader, sessionID string) (string, error) {
	url := fmt.Sprintf("%s%s/%s/title", c.baseURL, PathSession, sessionID)

	body, statusCode, err := c.httpClient.Get(ctx, url, c.headers(scopeHeader))
	if err != nil {
		return "", fmt.Errorf("failed to get session title: %w", err)
	}
	if err := checkStatus(statusCode, "get title"); err != nil {
		return "", err
	}

	var resp struct {
		SessionTitle string `json:"session_title"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to unmarshal title: %w", err)
	}
	return resp.SessionTitle, nil
}

// ListSessions lists the calling user's sessions.
func (c *sessionImpl) ListSessions(ctx context.Context, scopeHeader string) ([]SessionInfo, error) {
	url := c.baseURL + PathSessions

	body, statusCode, err := c.httpClient.Get(ctx, url, c.headers(scopeHeader))
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	if err := checkStatus(statusCode, "list sessions"); err != nil {
		return nil, err
	}

	var resp struct {
		Sessions []SessionInfo `json:"sessions"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sessions: %w", err)
	}
	return resp.Sessions, nil
}

// RenameSession updates a session's title.
func (c *sessionImpl) RenameSession(ctx context.Context, scopeHeader, sessionID, newTitle string) error {
	url := c.baseURL + PathSession + "/rename"

	payload := map[string]string{
		"session_id": sessionID,
		"new_title":  newTitle,
	}
	_, statusCode, err := c.httpClient.Post(ctx, url, payload, c.headers(scopeHeader))
	if err != nil {
		return fmt.Errorf("failed to rename session: %w", err)
	}
	return checkStatus(statusCode, "rename session")
}

// DeleteSession clears all data for a session.
func (c *sessionImpl) DeleteSession(ctx context.Context, scopeHeader, sessionID string) error {
	url := fmt.Sprintf("%s%s/%s", c.baseURL, PathSession, sessionID)

	_, statusCode, err := c.httpClient.Delete(ctx, url, c.headers(scopeHeader))
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return checkStatus(statusCode, "delete session")
}
