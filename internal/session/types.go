package session

import (
	"time"

	"usecase-srv/internal/model"
	"usecase-srv/pkg/paginator"
)

// Export formats supported by session export.
const (
	ExportFormatJSON     = "json"
	ExportFormatMarkdown = "markdown"
)

// ExportURLExpiry is how long a generated export download link stays valid.
const ExportURLExpiry = 24 * time.Hour

type CreateInput struct {
	SessionID      string
	ProjectContext string
	Domain         string
}

type CreateOutput struct {
	SessionID string
	Message   string
}

type ListOutput struct {
	Sessions   []model.Session
	Pagination paginator.Paginator
}

type RenameInput struct {
	SessionID string
	NewTitle  string
}

type ExportInput struct {
	SessionID string
	Format    string
}

type ExportOutput struct {
	ObjectName  string
	DownloadURL string
	ExpiresAt   time.Time
}
