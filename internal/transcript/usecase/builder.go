package usecase

import (
	"unicode/utf8"

	"usecase-srv/internal/model"
	"usecase-srv/internal/transcript"
)

// buildTranscript reconciles the stored history with the fresh use-case
// collection into an ordered display transcript. History order is
// preserved; messages are filtered and annotated, never reordered.
func buildTranscript(history, fresh []map[string]any) []model.TranscriptMessage {
	idx := buildIdentityIndex(fresh)

	messages := make([]model.TranscriptMessage, 0, len(history))
	for i, raw := range history {
		var prev map[string]any
		if i > 0 {
			prev = history[i-1]
		}
		if isEchoedDocumentText(raw, prev) {
			continue
		}
		messages = append(messages, newTranscriptMessage(raw, idx))
	}
	return messages
}

// isEchoedDocumentText detects the backend storing the extracted text of an
// uploaded document as a long user turn right after the upload
// acknowledgement. Lookback is exactly one message.
func isEchoedDocumentText(msg, prev map[string]any) bool {
	if role, _ := msg["role"].(string); role != model.RoleUser {
		return false
	}
	content, _ := msg["content"].(string)
	if utf8.RuneCountInString(content) <= transcript.EchoSuppressionMinChars {
		return false
	}
	if prev == nil || metadataType(prev) != model.MetadataTypeDocumentUpload {
		return false
	}
	return metadataType(msg) != model.MetadataTypeDocumentUpload
}

func metadataType(msg map[string]any) string {
	md, _ := msg["metadata"].(map[string]any)
	if md == nil {
		return ""
	}
	t, _ := md["type"].(string)
	return t
}

func newTranscriptMessage(raw map[string]any, idx identityIndex) model.TranscriptMessage {
	msg := model.TranscriptMessage{}
	msg.Role, _ = raw["role"].(string)
	msg.Content, _ = raw["content"].(string)

	md, _ := raw["metadata"].(map[string]any)
	msg.Metadata = model.NewMessageMetadataFromRaw(md)
	if md == nil {
		return msg
	}

	if refs, ok := md["use_cases"].([]any); ok {
		msg.UseCases = resolveUseCases(refs, idx)
	}
	if entries, ok := md["validation_results"].([]any); ok {
		results := make([]model.ValidationEntry, 0, len(entries))
		for _, el := range entries {
			entry, _ := el.(map[string]any)
			results = append(results, model.NewValidationEntryFromRaw(entry))
		}
		msg.ValidationResults = results
	}
	return msg
}
