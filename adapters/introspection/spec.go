package introspection

import (
	"encoding/json"
	"fmt"
	"os"

	"goparam/domain/terms"
)

// ModelSpec is the JSON-serializable description of a fitted model's term
// structure, used by the CLI rename command and by callers that serialize
// introspection output from another process.
type ModelSpec struct {
	Parameters   []string                `json:"parameters"`
	Family       string                  `json:"family,omitempty"`
	Multivariate bool                    `json:"multivariate,omitempty"`
	ZeroInflated bool                    `json:"zero_inflated,omitempty"`
	Factors      map[string][]string     `json:"factors,omitempty"`
	Ordered      []string                `json:"ordered,omitempty"`
	Nested       []string                `json:"nested,omitempty"`
	Secondary    map[string]TermMetaSpec `json:"secondary,omitempty"`
	Responses    []ModelSpec             `json:"responses,omitempty"`
}

// TermMetaSpec mirrors terms.TermMeta for JSON input.
type TermMetaSpec struct {
	Variable string `json:"variable"`
	Kind     string `json:"kind"`
	Level    string `json:"level,omitempty"`
}

// LoadModelSpec reads a ModelSpec from a JSON file.
func LoadModelSpec(path string) (ModelSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ModelSpec{}, fmt.Errorf("read model spec: %w", err)
	}
	var spec ModelSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return ModelSpec{}, fmt.Errorf("parse model spec: %w", err)
	}
	return spec, nil
}

// Build converts the spec into a StaticModel.
func (s ModelSpec) Build() *StaticModel {
	table := terms.NewMetaTable()
	for variable, levels := range s.Factors {
		table.FactorLevels[variable] = levels
	}
	for _, variable := range s.Ordered {
		table.Ordered[variable] = true
	}
	for _, name := range s.Nested {
		table.Nested[name] = true
	}
	for name, meta := range s.Secondary {
		table.Secondary[name] = terms.TermMeta{
			Variable: meta.Variable,
			Kind:     terms.TermKind(meta.Kind),
			Level:    meta.Level,
		}
	}

	model := &StaticModel{
		Params:         s.Parameters,
		ModelFamily:    terms.ModelFamily(s.Family),
		IsMultivariate: s.Multivariate,
		IsZeroInflated: s.ZeroInflated,
		Table:          table,
	}
	for _, sub := range s.Responses {
		model.Responses = append(model.Responses, sub.Build())
	}
	return model
}
