package extractsrv

import "errors"

// ErrUseCaseNotFound - the backend does not know the requested use case id.
var ErrUseCaseNotFound = errors.New("extractsrv: use case not found")
