package model

// Message roles in a conversation transcript.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// MetadataTypeDocumentUpload marks the acknowledgement turn the backend
// stores when a document is uploaded.
const MetadataTypeDocumentUpload = "document_upload"

// TranscriptMessage is one reconciled conversation turn. Ordering matches
// the source history; reconciliation filters and annotates, never reorders.
type TranscriptMessage struct {
	Role    string `json:"role"`
	Content string `json:"content,omitempty"`
	// Metadata is the display-relevant subset of the stored message metadata.
	Metadata *MessageMetadata `json:"metadata,omitempty"`
	// UseCases is set only on assistant turns that carry extraction results,
	// resolved to the freshest known version of each record.
	UseCases          []UseCase         `json:"use_cases,omitempty"`
	ValidationResults []ValidationEntry `json:"validation_results,omitempty"`
}

// MessageMetadata is the typed view of a message's stored metadata.
type MessageMetadata struct {
	Type             string `json:"type,omitempty"`
	Filename         string `json:"filename,omitempty"`
	FileType         string `json:"file_type,omitempty"`
	Size             int64  `json:"size,omitempty"`
	ExtractionMethod string `json:"extraction_method,omitempty"`
}

// NewMessageMetadataFromRaw extracts the typed metadata fields from a raw
// metadata object. Returns nil when nothing displayable is present.
func NewMessageMetadataFromRaw(raw map[string]any) *MessageMetadata {
	if raw == nil {
		return nil
	}

	md := &MessageMetadata{}
	md.Type, _ = raw["type"].(string)
	md.Filename, _ = raw["filename"].(string)
	md.FileType, _ = raw["file_type"].(string)
	md.ExtractionMethod, _ = raw["extraction_method"].(string)
	if size, ok := finiteNumber(raw["size"]); ok {
		md.Size = int64(size)
	}

	if *md == (MessageMetadata{}) {
		return nil
	}
	return md
}
