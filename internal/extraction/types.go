package extraction

import "usecase-srv/internal/model"

type ExtractInput struct {
	SessionID      string
	Message        string
	ProjectContext string
	Domain         string
}

type UploadInput struct {
	SessionID      string
	FileName       string
	Content        []byte
	ProjectContext string
	Domain         string
}

type RefineInput struct {
	// TargetID is the stored use-case id being refined.
	TargetID       string
	RefinementType string
	// SessionID scopes cache invalidation; refinement itself is addressed
	// by use-case id only.
	SessionID string
}

type RefineOutput struct {
	UseCase model.UseCase
}

type QueryInput struct {
	SessionID string
	Question  string
}

type QueryOutput struct {
	Answer   string
	UseCases []model.UseCase
}

// MaxUploadSize bounds document uploads. Matches the extraction backend's
// own limit so oversized files fail fast without a round trip.
const MaxUploadSize = 10 << 20
