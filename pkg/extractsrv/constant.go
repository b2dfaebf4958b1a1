package extractsrv

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout for the extraction
	// service. Extraction calls are slow; the backend does model inference.
	DefaultTimeout = 120 * time.Second
	// DefaultRetries is the default number of retries.
	DefaultRetries = 1
	// DefaultRetryWait is the default wait between retries.
	DefaultRetryWait = 2 * time.Second
)

// API path segments (full URLs built in extractsrv.go).
const (
	PathParse  = "/parse/use-case"
	PathUpload = "/parse/document"
	PathRefine = "/use-case/refine"
	PathQuery  = "/query"
)

// HeaderScope carries the forwarded identity to the backend.
const HeaderScope = "X-Scope"
