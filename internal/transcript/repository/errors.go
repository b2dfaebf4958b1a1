package repository

import "errors"

var (
	// ErrCacheMiss - no snapshot cached for the session
	ErrCacheMiss = errors.New("transcript snapshot not cached")
)
