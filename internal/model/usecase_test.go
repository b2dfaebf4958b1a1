package model

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestNewUseCaseFromRaw(t *testing.T) {
	t.Run("empty input yields fully defaulted record", func(t *testing.T) {
		uc := NewUseCaseFromRaw(map[string]any{})

		if uc.Title != DefaultUseCaseTitle {
			t.Errorf("Title mismatch: got %q, want %q", uc.Title, DefaultUseCaseTitle)
		}
		if uc.Status != UseCaseStatusStored {
			t.Errorf("Status mismatch: got %q, want %q", uc.Status, UseCaseStatusStored)
		}
		if uc.ID != "" {
			t.Errorf("ID should be empty, got %q", uc.ID)
		}
		for name, slice := range map[string]any{
			"Preconditions":  uc.Preconditions,
			"MainFlow":       uc.MainFlow,
			"SubFlows":       uc.SubFlows,
			"AlternateFlows": uc.AlternateFlows,
			"Outcomes":       uc.Outcomes,
			"Stakeholders":   uc.Stakeholders,
		} {
			v := reflect.ValueOf(slice)
			if v.IsNil() {
				t.Errorf("%s should be non-nil", name)
			}
			if v.Len() != 0 {
				t.Errorf("%s should be empty, got length %d", name, v.Len())
			}
		}
	})

	t.Run("nil input yields fully defaulted record", func(t *testing.T) {
		uc := NewUseCaseFromRaw(nil)
		if uc.Title != DefaultUseCaseTitle || uc.MainFlow == nil {
			t.Errorf("nil input not defaulted: %+v", uc)
		}
	})

	t.Run("singular main_flow wins over plural", func(t *testing.T) {
		uc := NewUseCaseFromRaw(map[string]any{
			"main_flow":  []any{"a"},
			"main_flows": []any{[]any{"b", "c"}},
		})
		if !reflect.DeepEqual(uc.MainFlow, []string{"a"}) {
			t.Errorf("MainFlow mismatch: got %v, want [a]", uc.MainFlow)
		}
	})

	t.Run("plural main_flows flattens one level", func(t *testing.T) {
		uc := NewUseCaseFromRaw(map[string]any{
			"main_flows": []any{[]any{"a", "b"}, []any{"c"}},
		})
		if !reflect.DeepEqual(uc.MainFlow, []string{"a", "b", "c"}) {
			t.Errorf("MainFlow mismatch: got %v, want [a b c]", uc.MainFlow)
		}
	})

	t.Run("plural main_flows keeps plain elements in place", func(t *testing.T) {
		uc := NewUseCaseFromRaw(map[string]any{
			"main_flows": []any{"a", []any{"b"}},
		})
		if !reflect.DeepEqual(uc.MainFlow, []string{"a", "b"}) {
			t.Errorf("MainFlow mismatch: got %v, want [a b]", uc.MainFlow)
		}
	})

	t.Run("sub_flows keeps heterogeneous shapes", func(t *testing.T) {
		uc := NewUseCaseFromRaw(map[string]any{
			"sub_flows": []any{
				"plain step",
				map[string]any{"title": "Retry", "steps": []any{"s1", "s2"}},
			},
		})
		if len(uc.SubFlows) != 2 {
			t.Fatalf("SubFlows length mismatch: got %d, want 2", len(uc.SubFlows))
		}
		if uc.SubFlows[0].Structured || uc.SubFlows[0].Text != "plain step" {
			t.Errorf("plain sub-flow mismatch: %+v", uc.SubFlows[0])
		}
		if !uc.SubFlows[1].Structured || uc.SubFlows[1].Title != "Retry" {
			t.Errorf("structured sub-flow mismatch: %+v", uc.SubFlows[1])
		}
		if !reflect.DeepEqual(uc.SubFlows[1].Steps, []string{"s1", "s2"}) {
			t.Errorf("structured sub-flow steps mismatch: %v", uc.SubFlows[1].Steps)
		}
	})

	t.Run("sub_flow object without steps degrades to text", func(t *testing.T) {
		uc := NewUseCaseFromRaw(map[string]any{
			"sub_flows": []any{map[string]any{"note": "odd shape"}},
		})
		if len(uc.SubFlows) != 1 || uc.SubFlows[0].Structured {
			t.Fatalf("unexpected sub-flows: %+v", uc.SubFlows)
		}
		if uc.SubFlows[0].Text == "" {
			t.Error("degraded sub-flow should keep a text rendering")
		}
	})

	t.Run("status accepts only known values", func(t *testing.T) {
		cases := map[string]string{
			"stored":            UseCaseStatusStored,
			"duplicate":         UseCaseStatusDuplicate,
			"duplicate_skipped": UseCaseStatusStored,
			"":                  UseCaseStatusStored,
		}
		for input, want := range cases {
			uc := NewUseCaseFromRaw(map[string]any{"status": input})
			if uc.Status != want {
				t.Errorf("status %q: got %q, want %q", input, uc.Status, want)
			}
		}
	})

	t.Run("title falls back on empty or missing", func(t *testing.T) {
		if uc := NewUseCaseFromRaw(map[string]any{"title": ""}); uc.Title != DefaultUseCaseTitle {
			t.Errorf("empty title not defaulted: %q", uc.Title)
		}
		if uc := NewUseCaseFromRaw(map[string]any{"title": "Login"}); uc.Title != "Login" {
			t.Errorf("title not passed through: %q", uc.Title)
		}
	})

	t.Run("mistyped fields degrade to defaults", func(t *testing.T) {
		uc := NewUseCaseFromRaw(map[string]any{
			"title":         42,
			"main_flow":     "not an array",
			"preconditions": map[string]any{},
		})
		if uc.Title != DefaultUseCaseTitle {
			t.Errorf("mistyped title not defaulted: %q", uc.Title)
		}
		if len(uc.MainFlow) != 0 || len(uc.Preconditions) != 0 {
			t.Errorf("mistyped arrays not defaulted: %+v", uc)
		}
	})
}

func TestNormalizeID(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"string", "abc", "abc"},
		{"whole float", float64(5), "5"},
		{"fractional float", 5.5, "5.5"},
		{"int", 7, "7"},
		{"nil", nil, ""},
		{"bool", true, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeID(tc.in); got != tc.want {
				t.Errorf("NormalizeID(%v): got %q, want %q", tc.in, got, tc.want)
			}
		})
	}

	t.Run("json numbers and floats reconcile", func(t *testing.T) {
		if NormalizeID(float64(5)) != NormalizeID("5") {
			t.Error("numeric and string ids should share a canonical form")
		}
	})
}

func TestSubFlowJSON(t *testing.T) {
	t.Run("plain entry round-trips as string", func(t *testing.T) {
		data, err := json.Marshal(SubFlow{Text: "check stock"})
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != `"check stock"` {
			t.Errorf("unexpected wire form: %s", data)
		}

		var sf SubFlow
		if err := json.Unmarshal(data, &sf); err != nil {
			t.Fatal(err)
		}
		if sf.Structured || sf.Text != "check stock" {
			t.Errorf("round-trip mismatch: %+v", sf)
		}
	})

	t.Run("structured entry round-trips as object", func(t *testing.T) {
		in := SubFlow{Structured: true, Title: "Retry", Steps: []string{"s1"}}
		data, err := json.Marshal(in)
		if err != nil {
			t.Fatal(err)
		}

		var sf SubFlow
		if err := json.Unmarshal(data, &sf); err != nil {
			t.Fatal(err)
		}
		if !sf.Structured || sf.Title != "Retry" || !reflect.DeepEqual(sf.Steps, []string{"s1"}) {
			t.Errorf("round-trip mismatch: %+v", sf)
		}
	})
}
