package ports

import (
	"goparam/domain/terms"
)

// ModelIntrospectorPort is the contract with the model-introspection
// collaborator: everything the renaming pipeline needs from a fitted model,
// with the model object itself kept opaque.
type ModelIntrospectorPort interface {
	// ParameterNames returns the ordered raw parameter names of the fit,
	// restricted to the effects subset when the model distinguishes one.
	ParameterNames() []string

	// Family returns the model family tag used to select the
	// family-specific rewrite pass.
	Family() terms.ModelFamily

	// Multivariate reports whether the fit has multiple response
	// sub-models.
	Multivariate() bool

	// ZeroInflated reports whether parameter names carry zero-inflation or
	// hurdle component prefixes.
	ZeroInflated() bool

	// ResponseModel returns the introspector for the i-th response
	// sub-model of a multivariate fit. Single-response implementations
	// return themselves.
	ResponseModel(i int) ModelIntrospectorPort

	// Meta returns the per-variable metadata table for classification.
	Meta() *terms.MetaTable
}
