package http

import (
	"errors"

	"usecase-srv/internal/session"
	pkgErrors "usecase-srv/pkg/errors"
)

var (
	errWrongQuery         = pkgErrors.NewHTTPError(400, "Invalid query parameters")
	errSessionRequired    = pkgErrors.NewHTTPError(400, "Session ID is required")
	errTitleRequired      = pkgErrors.NewHTTPError(400, "New title is required")
	errSessionNotFound    = pkgErrors.NewHTTPError(404, "Session not found")
	errForbidden          = pkgErrors.NewHTTPError(403, "Session belongs to another user")
	errUnknownFormat      = pkgErrors.NewHTTPError(400, "Export format must be json or markdown")
	errBackendUnavailable = pkgErrors.NewHTTPError(502, "Session backend unavailable")
	errExportFailed       = pkgErrors.NewHTTPError(500, "Export failed")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, session.ErrSessionRequired):
		return errSessionRequired
	case errors.Is(err, session.ErrTitleRequired):
		return errTitleRequired
	case errors.Is(err, session.ErrSessionNotFound):
		return errSessionNotFound
	case errors.Is(err, session.ErrForbidden):
		return errForbidden
	case errors.Is(err, session.ErrUnknownFormat):
		return errUnknownFormat
	case errors.Is(err, session.ErrBackendUnavailable):
		return errBackendUnavailable
	case errors.Is(err, session.ErrExportFailed):
		return errExportFailed
	default:
		panic(err)
	}
}
