package usecase

import (
	"context"
	"encoding/json"
	"time"

	"usecase-srv/internal/model"
)

// Event types published to the extraction activity topic.
const (
	eventTypeExtracted = "use_cases.extracted"
	eventTypeRefined   = "use_case.refined"
)

type extractionEvent struct {
	Type           string `json:"type"`
	SessionID      string `json:"session_id,omitempty"`
	UserID         string `json:"user_id,omitempty"`
	UseCaseID      string `json:"use_case_id,omitempty"`
	ExtractedCount int    `json:"extracted_count,omitempty"`
	StoredCount    int    `json:"stored_count,omitempty"`
	Source         string `json:"source,omitempty"`
	Timestamp      int64  `json:"timestamp"`
}

// publishEvent emits an activity event. Best effort: failures are logged
// and never fail the request.
func (uc *implUseCase) publishEvent(ctx context.Context, sc model.Scope, event extractionEvent) {
	if uc.producer == nil {
		return
	}

	event.UserID = sc.UserID
	event.Timestamp = time.Now().Unix()

	value, err := json.Marshal(event)
	if err != nil {
		uc.l.Warnf(ctx, "extraction.usecase.publishEvent: marshal failed: %v", err)
		return
	}

	key := []byte(event.SessionID)
	if len(key) == 0 {
		key = []byte(event.UserID)
	}
	if err := uc.producer.Publish(key, value); err != nil {
		uc.l.Warnf(ctx, "extraction.usecase.publishEvent: publish failed: %v", err)
	}
}

// invalidateTranscript drops the cached snapshot after anything that can
// change the session's use-case collection. Best effort.
func (uc *implUseCase) invalidateTranscript(ctx context.Context, sessionID string) {
	if sessionID == "" {
		return
	}
	if err := uc.transcriptUC.Invalidate(ctx, sessionID); err != nil {
		uc.l.Warnf(ctx, "extraction.usecase.invalidateTranscript: %v", err)
	}
}
