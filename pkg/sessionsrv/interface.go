package sessionsrv

import "context"

// ISession defines the interface for the session service API client.
// Implementations are safe for concurrent use.
type ISession interface {
	CreateSession(ctx context.Context, scopeHeader string, req CreateSessionRequest) (CreateSessionResponse, error)
	GetHistory(ctx context.Context, scopeHeader, sessionID string, limit int) (HistoryEnvelope, error)
	GetTitle(ctx context.Context, scopeHeader, sessionID string) (string, error)
	ListSessions(ctx context.Context, scopeHeader string) ([]SessionInfo, error)
	RenameSession(ctx context.Context, scopeHeader, sessionID, newTitle string) error
	DeleteSession(ctx context.Context, scopeHeader, sessionID string) error
}

// New creates a new session service client. Returns the interface.
func New(cfg SessionConfig) ISession {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = defaultHTTPClient()
	}
	return &sessionImpl{
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}
}
