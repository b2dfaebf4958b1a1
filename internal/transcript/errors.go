package transcript

import "errors"

// Domain errors
var (
	// ErrSessionRequired - session id is required
	ErrSessionRequired = errors.New("transcript: session_id is required")

	// ErrSessionNotFound - the session backend does not know this session
	ErrSessionNotFound = errors.New("transcript: session not found")

	// ErrForbidden - the session belongs to another user
	ErrForbidden = errors.New("transcript: session access forbidden")

	// ErrHistoryUnavailable - the session backend could not be reached
	ErrHistoryUnavailable = errors.New("transcript: history fetch failed")

	// ErrUnknownRefineMode - refinement mode is neither reload nor inPlace
	ErrUnknownRefineMode = errors.New("transcript: unknown refine mode")
)
