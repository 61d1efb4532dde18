package introspection

import (
	"os"
	"path/filepath"
	"testing"

	"goparam/domain/terms"
)

func TestModelSpec_Build(t *testing.T) {
	spec := ModelSpec{
		Parameters: []string{"Speciesversicolor", "grade.L"},
		Family:     "ordinal",
		Factors:    map[string][]string{"Species": {"versicolor"}},
		Ordered:    []string{"grade"},
		Nested:     []string{"site:plot"},
		Secondary:  map[string]TermMetaSpec{"doseHigh": {Variable: "dose", Kind: "factor", Level: "High"}},
	}

	model := spec.Build()
	if model.Family() != terms.FamilyOrdinal {
		t.Errorf("family = %s, want ordinal", model.Family())
	}
	meta := model.Meta()
	if !meta.Ordered["grade"] {
		t.Error("grade should be ordered")
	}
	if !meta.Nested["site:plot"] {
		t.Error("site:plot should be nested")
	}
	if meta.Secondary["doseHigh"].Variable != "dose" {
		t.Errorf("secondary = %+v", meta.Secondary["doseHigh"])
	}
}

func TestLoadModelSpec(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	content := `{"parameters": ["age", "Speciesversicolor"], "factors": {"Species": ["versicolor"]}}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	spec, err := LoadModelSpec(path)
	if err != nil {
		t.Fatalf("LoadModelSpec: %v", err)
	}
	if len(spec.Parameters) != 2 {
		t.Errorf("parameters = %v", spec.Parameters)
	}

	if _, err := LoadModelSpec(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestStaticModel_Defaults(t *testing.T) {
	m := &StaticModel{Params: []string{"x"}}
	if m.Family() != terms.FamilyDefault {
		t.Errorf("family = %s", m.Family())
	}
	if m.Multivariate() {
		t.Error("no responses means not multivariate")
	}
	if m.ResponseModel(0) != m {
		t.Error("out-of-range response should return the model itself")
	}
	if m.Meta() == nil {
		t.Error("nil table should yield an empty MetaTable")
	}
}
