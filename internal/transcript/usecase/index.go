package usecase

import "usecase-srv/internal/model"

// identityIndex maps a canonical use-case id to the freshest normalized
// version of that record within one reconciliation pass. Never shared
// across calls.
type identityIndex map[string]model.UseCase

// buildIdentityIndex normalizes every record of the fresh collection and
// indexes it by id. Records without an id are normalized but not indexed;
// on duplicate ids the later record wins.
func buildIdentityIndex(fresh []map[string]any) identityIndex {
	idx := make(identityIndex, len(fresh))
	for _, raw := range fresh {
		uc := model.NewUseCaseFromRaw(raw)
		if uc.ID == "" {
			continue
		}
		idx[uc.ID] = uc
	}
	return idx
}

// resolveUseCases maps raw history use-case references to display records,
// preferring the indexed fresh version when the reference carries a known
// id. References identify themselves via id or the legacy use_case_id key.
func resolveUseCases(refs []any, idx identityIndex) []model.UseCase {
	resolved := make([]model.UseCase, 0, len(refs))
	for _, el := range refs {
		ref, _ := el.(map[string]any)

		id := model.NormalizeID(ref["id"])
		if id == "" {
			id = model.NormalizeID(ref["use_case_id"])
		}
		if fresh, ok := idx[id]; id != "" && ok {
			resolved = append(resolved, fresh)
			continue
		}

		uc := model.NewUseCaseFromRaw(ref)
		uc.ID = id
		resolved = append(resolved, uc)
	}
	return resolved
}
