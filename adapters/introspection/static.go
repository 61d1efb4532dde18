// Package introspection provides ModelIntrospectorPort implementations for
// callers that extract model structure up front (or build it by hand in
// tests).
package introspection

import (
	"goparam/domain/terms"
	"goparam/ports"
)

// StaticModel is a metadata-table-backed introspector. An explicit
// ModelFamily tag plus static tables replaces dispatch on a textual model
// class: the renaming pipeline never inspects the fitted object itself.
type StaticModel struct {
	Params         []string
	ModelFamily    terms.ModelFamily
	IsMultivariate bool
	IsZeroInflated bool
	// Responses holds the per-response sub-models of a multivariate fit.
	Responses []*StaticModel
	Table     *terms.MetaTable
}

var _ ports.ModelIntrospectorPort = (*StaticModel)(nil)

func (m *StaticModel) ParameterNames() []string {
	return m.Params
}

func (m *StaticModel) Family() terms.ModelFamily {
	if m.ModelFamily == "" {
		return terms.FamilyDefault
	}
	return m.ModelFamily
}

func (m *StaticModel) Multivariate() bool {
	return m.IsMultivariate && len(m.Responses) > 0
}

func (m *StaticModel) ZeroInflated() bool {
	return m.IsZeroInflated
}

// ResponseModel returns the i-th response sub-model, or the model itself
// when out of range.
func (m *StaticModel) ResponseModel(i int) ports.ModelIntrospectorPort {
	if i < 0 || i >= len(m.Responses) {
		return m
	}
	return m.Responses[i]
}

func (m *StaticModel) Meta() *terms.MetaTable {
	if m.Table == nil {
		return terms.NewMetaTable()
	}
	return m.Table
}
