package http

import (
	"time"

	"usecase-srv/internal/session"
	"usecase-srv/pkg/paginator"
)

type createSessionReq struct {
	SessionID      string `json:"session_id,omitempty"`
	ProjectContext string `json:"project_context,omitempty"`
	Domain         string `json:"domain,omitempty"`
}

func (r createSessionReq) toInput() session.CreateInput {
	return session.CreateInput{
		SessionID:      r.SessionID,
		ProjectContext: r.ProjectContext,
		Domain:         r.Domain,
	}
}

type renameSessionReq struct {
	SessionID string `json:"session_id" binding:"required"`
	NewTitle  string `json:"new_title" binding:"required"`
}

func (r renameSessionReq) toInput() session.RenameInput {
	return session.RenameInput{
		SessionID: r.SessionID,
		NewTitle:  r.NewTitle,
	}
}

type exportSessionReq struct {
	SessionID string
	Format    string `json:"format,omitempty"`
}

func (r exportSessionReq) toInput() session.ExportInput {
	format := r.Format
	if format == "" {
		format = session.ExportFormatJSON
	}
	return session.ExportInput{
		SessionID: r.SessionID,
		Format:    format,
	}
}

type createSessionResp struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message,omitempty"`
}

func (h *handler) newCreateSessionResp(o session.CreateOutput) createSessionResp {
	return createSessionResp{SessionID: o.SessionID, Message: o.Message}
}

type sessionResp struct {
	SessionID      string `json:"session_id"`
	SessionTitle   string `json:"session_title"`
	ProjectContext string `json:"project_context,omitempty"`
	Domain         string `json:"domain,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
	LastActive     string `json:"last_active,omitempty"`
}

type listSessionsResp struct {
	Sessions   []sessionResp               `json:"sessions"`
	Pagination paginator.PaginatorResponse `json:"pagination"`
}

func (h *handler) newListSessionsResp(o session.ListOutput) listSessionsResp {
	resp := listSessionsResp{
		Sessions:   make([]sessionResp, 0, len(o.Sessions)),
		Pagination: o.Pagination.ToResponse(),
	}
	for _, s := range o.Sessions {
		resp.Sessions = append(resp.Sessions, sessionResp{
			SessionID:      s.ID,
			SessionTitle:   s.Title,
			ProjectContext: s.ProjectContext,
			Domain:         s.Domain,
			CreatedAt:      s.CreatedAt,
			LastActive:     s.LastActive,
		})
	}
	return resp
}

type titleResp struct {
	SessionTitle string `json:"session_title"`
}

type exportResp struct {
	DownloadURL string    `json:"download_url"`
	ObjectName  string    `json:"object_name"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func (h *handler) newExportResp(o session.ExportOutput) exportResp {
	return exportResp{
		DownloadURL: o.DownloadURL,
		ObjectName:  o.ObjectName,
		ExpiresAt:   o.ExpiresAt,
	}
}
