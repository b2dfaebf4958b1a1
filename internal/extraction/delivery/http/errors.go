package http

import (
	"errors"

	"usecase-srv/internal/extraction"
	pkgErrors "usecase-srv/pkg/errors"
)

var (
	errMessageRequired    = pkgErrors.NewHTTPError(400, "Message is required")
	errFileRequired       = pkgErrors.NewHTTPError(400, "File is required")
	errFileTooLarge       = pkgErrors.NewHTTPError(413, "File too large (max 10 MB)")
	errTargetRequired     = pkgErrors.NewHTTPError(400, "Use case ID is required")
	errUseCaseNotFound    = pkgErrors.NewHTTPError(404, "Use case not found")
	errQuestionRequired   = pkgErrors.NewHTTPError(400, "Question is required")
	errBackendUnavailable = pkgErrors.NewHTTPError(502, "Extraction backend unavailable")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, extraction.ErrMessageRequired):
		return errMessageRequired
	case errors.Is(err, extraction.ErrFileRequired):
		return errFileRequired
	case errors.Is(err, extraction.ErrFileTooLarge):
		return errFileTooLarge
	case errors.Is(err, extraction.ErrTargetRequired):
		return errTargetRequired
	case errors.Is(err, extraction.ErrUseCaseNotFound):
		return errUseCaseNotFound
	case errors.Is(err, extraction.ErrQuestionRequired):
		return errQuestionRequired
	case errors.Is(err, extraction.ErrBackendUnavailable):
		return errBackendUnavailable
	default:
		panic(err)
	}
}
