package sessionsrv

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout for the session service.
	DefaultTimeout = 15 * time.Second
	// DefaultRetries is the default number of retries.
	DefaultRetries = 3
	// DefaultRetryWait is the default wait between retries.
	DefaultRetryWait = 1 * time.Second
)

// API path segments (full URLs built in sessionsrv.go).
const (
	PathSession  = "/session"
	PathSessions = "/sessions/"
)

// HeaderScope carries the forwarded identity to the backend.
const HeaderScope = "X-Scope"

// DefaultHistoryLimit is the history page size requested when the caller
// does not specify one.
const DefaultHistoryLimit = 10
