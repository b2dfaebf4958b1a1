package sessionsrv

import "errors"

var (
	// ErrSessionNotFound - the backend does not know the requested session.
	ErrSessionNotFound = errors.New("sessionsrv: session not found")
	// ErrForbidden - the session belongs to another user.
	ErrForbidden = errors.New("sessionsrv: session access forbidden")
)
