package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"usecase-srv/internal/model"
	"usecase-srv/internal/session"
	"usecase-srv/internal/transcript"
)

func (uc *implUseCase) Export(ctx context.Context, sc model.Scope, input session.ExportInput) (session.ExportOutput, error) {
	if input.SessionID == "" {
		return session.ExportOutput{}, session.ErrSessionRequired
	}
	if input.Format != session.ExportFormatJSON && input.Format != session.ExportFormatMarkdown {
		return session.ExportOutput{}, session.ErrUnknownFormat
	}

	// Export always reflects the backend's current state, never a cached
	// snapshot.
	snapshot, err := uc.transcriptUC.GetTranscript(ctx, sc, transcript.GetTranscriptInput{
		SessionID: input.SessionID,
		SkipCache: true,
	})
	if err != nil {
		switch {
		case errors.Is(err, transcript.ErrSessionNotFound):
			return session.ExportOutput{}, session.ErrSessionNotFound
		case errors.Is(err, transcript.ErrForbidden):
			return session.ExportOutput{}, session.ErrForbidden
		default:
			uc.l.Errorf(ctx, "session.usecase.Export: transcript fetch failed: %v", err)
			return session.ExportOutput{}, session.ErrBackendUnavailable
		}
	}

	var data []byte
	var contentType, extension string
	switch input.Format {
	case session.ExportFormatJSON:
		data, err = json.MarshalIndent(snapshot, "", "  ")
		contentType, extension = "application/json", "json"
	case session.ExportFormatMarkdown:
		data = []byte(renderMarkdown(snapshot))
		contentType, extension = "text/markdown", "md"
	}
	if err != nil {
		uc.l.Errorf(ctx, "session.usecase.Export: rendering failed: %v", err)
		return session.ExportOutput{}, session.ErrExportFailed
	}

	objectName := fmt.Sprintf("exports/%s/%s.%s", input.SessionID, uuid.NewString(), extension)
	if err := uc.storage.Upload(ctx, objectName, data, contentType); err != nil {
		uc.l.Errorf(ctx, "session.usecase.Export: upload failed: %v", err)
		return session.ExportOutput{}, session.ErrExportFailed
	}

	url, err := uc.storage.PresignedURL(ctx, objectName, session.ExportURLExpiry)
	if err != nil {
		uc.l.Errorf(ctx, "session.usecase.Export: presign failed: %v", err)
		return session.ExportOutput{}, session.ErrExportFailed
	}

	return session.ExportOutput{
		ObjectName:  objectName,
		DownloadURL: url,
		ExpiresAt:   time.Now().Add(session.ExportURLExpiry),
	}, nil
}

// renderMarkdown renders a transcript snapshot as a readable requirements
// document: session header, then each use case, then the conversation.
func renderMarkdown(snapshot transcript.TranscriptOutput) string {
	var b strings.Builder

	title := snapshot.Title
	if title == "" {
		title = snapshot.SessionID
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	if snapshot.Summary != "" {
		fmt.Fprintf(&b, "%s\n\n", snapshot.Summary)
	}

	if len(snapshot.UseCases) > 0 {
		b.WriteString("## Use Cases\n\n")
		for i, u := range snapshot.UseCases {
			fmt.Fprintf(&b, "### %d. %s\n\n", i+1, u.Title)
			if u.Refined {
				b.WriteString("*Refined*\n\n")
			}
			writeList(&b, "Preconditions", u.Preconditions)
			writeList(&b, "Main Flow", u.MainFlow)
			writeSubFlows(&b, u.SubFlows)
			writeList(&b, "Alternate Flows", u.AlternateFlows)
			writeList(&b, "Outcomes", u.Outcomes)
			writeList(&b, "Stakeholders", u.Stakeholders)
		}
	}

	if len(snapshot.Messages) > 0 {
		b.WriteString("## Conversation\n\n")
		for _, msg := range snapshot.Messages {
			fmt.Fprintf(&b, "**%s**: %s\n\n", msg.Role, msg.Content)
		}
	}

	return b.String()
}

func writeList(b *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "**%s**\n\n", heading)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}

func writeSubFlows(b *strings.Builder, subFlows []model.SubFlow) {
	if len(subFlows) == 0 {
		return
	}
	b.WriteString("**Sub Flows**\n\n")
	for _, sf := range subFlows {
		if !sf.Structured {
			fmt.Fprintf(b, "- %s\n", sf.Text)
			continue
		}
		if sf.Title != "" {
			fmt.Fprintf(b, "- %s\n", sf.Title)
		} else {
			b.WriteString("- Sub flow\n")
		}
		for _, step := range sf.Steps {
			fmt.Fprintf(b, "  - %s\n", step)
		}
	}
	b.WriteString("\n")
}
