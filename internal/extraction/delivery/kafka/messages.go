package kafka

// ActivityEventMessage is the wire format of extraction activity events.
// Must stay in sync with what the extraction usecase publishes.
type ActivityEventMessage struct {
	Type           string `json:"type"`
	SessionID      string `json:"session_id,omitempty"`
	UserID         string `json:"user_id,omitempty"`
	UseCaseID      string `json:"use_case_id,omitempty"`
	ExtractedCount int    `json:"extracted_count,omitempty"`
	StoredCount    int    `json:"stored_count,omitempty"`
	Source         string `json:"source,omitempty"`
	Timestamp      int64  `json:"timestamp"`
}
