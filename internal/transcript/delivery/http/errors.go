package http

import (
	"errors"

	"usecase-srv/internal/transcript"
	pkgErrors "usecase-srv/pkg/errors"
)

var (
	errSessionRequired    = pkgErrors.NewHTTPError(400, "Session ID is required")
	errSessionNotFound    = pkgErrors.NewHTTPError(404, "Session not found")
	errForbidden          = pkgErrors.NewHTTPError(403, "Session belongs to another user")
	errHistoryUnavailable = pkgErrors.NewHTTPError(502, "Session backend unavailable")
	errUnknownRefineMode  = pkgErrors.NewHTTPError(400, "Refine mode must be reload or inPlace")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, transcript.ErrSessionRequired):
		return errSessionRequired
	case errors.Is(err, transcript.ErrSessionNotFound):
		return errSessionNotFound
	case errors.Is(err, transcript.ErrForbidden):
		return errForbidden
	case errors.Is(err, transcript.ErrHistoryUnavailable):
		return errHistoryUnavailable
	case errors.Is(err, transcript.ErrUnknownRefineMode):
		return errUnknownRefineMode
	default:
		panic(err)
	}
}
