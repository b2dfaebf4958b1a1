package model

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Use-case storage status as reported by the extraction backend.
const (
	UseCaseStatusStored    = "stored"
	UseCaseStatusDuplicate = "duplicate"
)

// DefaultUseCaseTitle is substituted when the backend omits a title.
const DefaultUseCaseTitle = "Untitled"

// UseCase is the canonical use-case record. Every slice field is non-nil
// after normalization; consumers never null-check them.
type UseCase struct {
	// ID is empty for ephemeral extraction previews the backend has not
	// persisted. Identity is never fabricated here.
	ID             string    `json:"id,omitempty"`
	Title          string    `json:"title"`
	Preconditions  []string  `json:"preconditions"`
	MainFlow       []string  `json:"main_flow"`
	SubFlows       []SubFlow `json:"sub_flows"`
	AlternateFlows []string  `json:"alternate_flows"`
	Outcomes       []string  `json:"outcomes"`
	Stakeholders   []string  `json:"stakeholders"`
	Status         string    `json:"status"`
	// Refined marks the record as the output of a refinement merge. Display
	// emphasis only; no logic branches on it.
	Refined bool `json:"refined,omitempty"`
}

// SubFlow is one heterogeneous sub-flow entry: either a plain string or a
// titled step list. Structured tells the two shapes apart.
type SubFlow struct {
	Structured bool     `json:"-"`
	Text       string   `json:"-"`
	Title      string   `json:"-"`
	Steps      []string `json:"-"`
}

type subFlowObject struct {
	Title string   `json:"title,omitempty"`
	Steps []string `json:"steps"`
}

// MarshalJSON keeps the backend's heterogeneous wire shape: plain entries
// marshal as strings, structured entries as {title, steps}.
func (s SubFlow) MarshalJSON() ([]byte, error) {
	if !s.Structured {
		return json.Marshal(s.Text)
	}
	steps := s.Steps
	if steps == nil {
		steps = []string{}
	}
	return json.Marshal(subFlowObject{Title: s.Title, Steps: steps})
}

// UnmarshalJSON accepts both wire shapes of a sub-flow entry.
func (s *SubFlow) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*s = SubFlow{Text: text}
		return nil
	}

	var obj subFlowObject
	if err := json.Unmarshal(data, &obj); err == nil {
		*s = SubFlow{Structured: true, Title: obj.Title, Steps: obj.Steps}
		if s.Steps == nil {
			s.Steps = []string{}
		}
		return nil
	}

	// Unknown shape: degrade to its raw text rather than failing.
	*s = SubFlow{Text: string(data)}
	return nil
}

// NewUseCaseFromRaw normalizes one raw use-case payload into the canonical
// record. Pure and total: any input, including nil, yields a fully-populated
// record with defaults in place of missing or mistyped fields.
func NewUseCaseFromRaw(raw map[string]any) UseCase {
	uc := UseCase{
		Title:          DefaultUseCaseTitle,
		Preconditions:  []string{},
		MainFlow:       []string{},
		SubFlows:       []SubFlow{},
		AlternateFlows: []string{},
		Outcomes:       []string{},
		Stakeholders:   []string{},
		Status:         UseCaseStatusStored,
	}
	if raw == nil {
		return uc
	}

	uc.ID = NormalizeID(raw["id"])

	if title, ok := raw["title"].(string); ok && title != "" {
		uc.Title = title
	}

	// The singular key is the already-flattened canonical form and wins over
	// the plural upload-time staging format.
	if flow, ok := raw["main_flow"].([]any); ok {
		uc.MainFlow = toStringSlice(flow)
	} else if flows, ok := raw["main_flows"].([]any); ok {
		uc.MainFlow = flattenFlows(flows)
	}

	if subFlows, ok := raw["sub_flows"].([]any); ok {
		uc.SubFlows = toSubFlows(subFlows)
	}
	if v, ok := raw["preconditions"].([]any); ok {
		uc.Preconditions = toStringSlice(v)
	}
	if v, ok := raw["alternate_flows"].([]any); ok {
		uc.AlternateFlows = toStringSlice(v)
	}
	if v, ok := raw["outcomes"].([]any); ok {
		uc.Outcomes = toStringSlice(v)
	}
	if v, ok := raw["stakeholders"].([]any); ok {
		uc.Stakeholders = toStringSlice(v)
	}

	if status, ok := raw["status"].(string); ok {
		if status == UseCaseStatusStored || status == UseCaseStatusDuplicate {
			uc.Status = status
		}
	}

	return uc
}

// NormalizeID canonicalizes a raw identifier to its string form so that
// numeric and string ids from different payloads reconcile. Returns "" for
// absent or unusable values.
func NormalizeID(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		if math.IsNaN(id) || math.IsInf(id, 0) {
			return ""
		}
		if id == math.Trunc(id) {
			return strconv.FormatInt(int64(id), 10)
		}
		return strconv.FormatFloat(id, 'f', -1, 64)
	case int:
		return strconv.Itoa(id)
	case int64:
		return strconv.FormatInt(id, 10)
	case json.Number:
		return id.String()
	default:
		return ""
	}
}

func toStringSlice(arr []any) []string {
	out := make([]string, 0, len(arr))
	for _, el := range arr {
		if s, ok := el.(string); ok {
			out = append(out, s)
			continue
		}
		out = append(out, fmt.Sprint(el))
	}
	return out
}

// flattenFlows flattens the plural array-of-arrays staging format one level.
// Non-array elements are kept in place.
func flattenFlows(arr []any) []string {
	out := make([]string, 0, len(arr))
	for _, el := range arr {
		if nested, ok := el.([]any); ok {
			out = append(out, toStringSlice(nested)...)
			continue
		}
		if s, ok := el.(string); ok {
			out = append(out, s)
			continue
		}
		out = append(out, fmt.Sprint(el))
	}
	return out
}

func toSubFlows(arr []any) []SubFlow {
	out := make([]SubFlow, 0, len(arr))
	for _, el := range arr {
		switch sf := el.(type) {
		case string:
			out = append(out, SubFlow{Text: sf})
		case map[string]any:
			steps, ok := sf["steps"].([]any)
			if !ok {
				out = append(out, SubFlow{Text: fmt.Sprint(el)})
				continue
			}
			title, _ := sf["title"].(string)
			out = append(out, SubFlow{
				Structured: true,
				Title:      title,
				Steps:      toStringSlice(steps),
			})
		default:
			out = append(out, SubFlow{Text: fmt.Sprint(el)})
		}
	}
	return out
}
