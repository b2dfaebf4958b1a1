package extraction

import "errors"

// Domain errors
var (
	// ErrMessageRequired - free-text extraction needs a non-empty message
	ErrMessageRequired = errors.New("extraction: message is required")

	// ErrFileRequired - document extraction needs file content
	ErrFileRequired = errors.New("extraction: file is required")

	// ErrFileTooLarge - uploaded document exceeds the size limit
	ErrFileTooLarge = errors.New("extraction: file too large")

	// ErrTargetRequired - refinement needs a target use-case id
	ErrTargetRequired = errors.New("extraction: target use case id is required")

	// ErrUseCaseNotFound - the backend does not know the target use case
	ErrUseCaseNotFound = errors.New("extraction: use case not found")

	// ErrQuestionRequired - query needs a non-empty question
	ErrQuestionRequired = errors.New("extraction: question is required")

	// ErrBackendUnavailable - the extraction backend could not be reached
	ErrBackendUnavailable = errors.New("extraction: backend unavailable")
)
