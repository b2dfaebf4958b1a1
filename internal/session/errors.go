package session

import "errors"

// Domain errors
var (
	// ErrSessionRequired - session id is required
	ErrSessionRequired = errors.New("session: session_id is required")

	// ErrTitleRequired - rename needs a non-empty title
	ErrTitleRequired = errors.New("session: new title is required")

	// ErrSessionNotFound - the backend does not know this session
	ErrSessionNotFound = errors.New("session: session not found")

	// ErrForbidden - the session belongs to another user
	ErrForbidden = errors.New("session: access forbidden")

	// ErrUnknownFormat - export format is neither json nor markdown
	ErrUnknownFormat = errors.New("session: unknown export format")

	// ErrBackendUnavailable - the session backend could not be reached
	ErrBackendUnavailable = errors.New("session: backend unavailable")

	// ErrExportFailed - export rendering or storage failed
	ErrExportFailed = errors.New("session: export failed")
)
