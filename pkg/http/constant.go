package http

import "time"

// Client defaults, applied when ClientConfig leaves a field zero.
const (
	DefaultTimeout   = 30 * time.Second
	DefaultRetries   = 3
	DefaultRetryWait = 1 * time.Second
)

// DefaultConfig returns a ClientConfig with all defaults filled in.
func DefaultConfig() ClientConfig {
	return ClientConfig{
		Timeout:   DefaultTimeout,
		Retries:   DefaultRetries,
		RetryWait: DefaultRetryWait,
	}
}
