package sessionsrv

import pkghttp "usecase-srv/pkg/http"

// SessionConfig holds configuration for the session service client.
type SessionConfig struct {
	BaseURL    string
	HTTPClient pkghttp.IClient
}

// HistoryEnvelope is the raw history payload for one session. Message and
// use-case entries are kept as raw JSON objects; the backend stores them as
// schemaless metadata and this client does not shape them.
type HistoryEnvelope struct {
	SessionID           string           `json:"session_id"`
	ConversationHistory []map[string]any `json:"conversation_history"`
	GeneratedUseCases   []map[string]any `json:"generated_use_cases"`
	SessionContext      map[string]any   `json:"session_context"`
	Summary             string           `json:"summary"`
}

// SessionInfo is one entry of the session registry listing.
type SessionInfo struct {
	SessionID      string `json:"session_id"`
	SessionTitle   string `json:"session_title"`
	ProjectContext string `json:"project_context"`
	Domain         string `json:"domain"`
	CreatedAt      string `json:"created_at"`
	LastActive     string `json:"last_active"`
}

// CreateSessionRequest is the payload for creating or re-opening a session.
type CreateSessionRequest struct {
	SessionID      string `json:"session_id,omitempty"`
	ProjectContext string `json:"project_context,omitempty"`
	Domain         string `json:"domain,omitempty"`
}

// CreateSessionResponse is the backend's create/get response.
type CreateSessionResponse struct {
	SessionID string         `json:"session_id"`
	Context   map[string]any `json:"context"`
	Message   string         `json:"message"`
}

// sessionImpl implements ISession.
type sessionImpl struct {
	baseURL    string
	httpClient pkghttp.IClient
}
