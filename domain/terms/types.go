package terms

// TermKind classifies a single model parameter by how its predictor entered
// the model formula.
type TermKind string

const (
	KindPlain          TermKind = "plain"
	KindFactor         TermKind = "factor"
	KindPoly           TermKind = "poly"
	KindPolyRaw        TermKind = "poly_raw"
	KindSpline         TermKind = "spline"
	KindLogarithm      TermKind = "logarithm"
	KindExponentiation TermKind = "exponentiation"
	KindSquareRoot     TermKind = "squareroot"
	KindAsIs           TermKind = "asis"
	KindSmooth         TermKind = "smooth"
	KindOrdered        TermKind = "ordered"
	KindInteraction    TermKind = "interaction"
	KindNested         TermKind = "nested"
)

// ModelFamily selects the family-specific name-rewrite pass applied before
// generic classification. The rewrite table keyed by family is configurable;
// the built-in entries are not assumed exhaustive.
type ModelFamily string

const (
	FamilyDefault       ModelFamily = "default"
	FamilyOrdinal       ModelFamily = "ordinal"
	FamilyMultinomial   ModelFamily = "multinomial"
	FamilyCompositional ModelFamily = "compositional"
)

// Term is one classified model parameter.
type Term struct {
	RawName  string
	Variable string
	Kind     TermKind
	// Level holds the factor level, polynomial/spline degree, ordered
	// contrast code, or inner function name, depending on Kind.
	Level string
	// Constituents is populated for interaction and nested terms only,
	// in the order the sub-names appear in the raw name.
	Constituents []Term
}

// IsInteraction reports whether the term decomposes into constituents.
func (t Term) IsInteraction() bool {
	return t.Kind == KindInteraction || t.Kind == KindNested
}

// TermMeta is one row of the per-term metadata table provided by model
// introspection: which variable a term derives from and how it is coded.
type TermMeta struct {
	Variable string
	Kind     TermKind
	Level    string
}

// MetaTable carries the variable metadata the classifier needs from model
// introspection. FactorLevels and Ordered describe factor coding; Nested
// marks raw interaction names that come from formula nesting; Secondary
// holds metadata for variables that appear only inside interactions and
// therefore have no primary term of their own.
type MetaTable struct {
	FactorLevels map[string][]string
	Ordered      map[string]bool
	Nested       map[string]bool
	Secondary    map[string]TermMeta
}

// NewMetaTable returns an empty metadata table with all maps allocated.
func NewMetaTable() *MetaTable {
	return &MetaTable{
		FactorLevels: make(map[string][]string),
		Ordered:      make(map[string]bool),
		Nested:       make(map[string]bool),
		Secondary:    make(map[string]TermMeta),
	}
}

// RenameOverlay is the explicit display-name mapping returned by the renaming
// pipeline. Keys are the model's original raw parameter names, so downstream
// consumers can match against the fit's native term names; Order preserves
// model order for deterministic iteration.
type RenameOverlay struct {
	Order []string
	Names map[string]string
}

// NewRenameOverlay returns an empty overlay.
func NewRenameOverlay() *RenameOverlay {
	return &RenameOverlay{Names: make(map[string]string)}
}

// Set records the display name for an original raw parameter name.
func (o *RenameOverlay) Set(original, display string) {
	if _, seen := o.Names[original]; !seen {
		o.Order = append(o.Order, original)
	}
	o.Names[original] = display
}

// DisplayName returns the display name for original, falling back to the
// original name itself when no rename was recorded.
func (o *RenameOverlay) DisplayName(original string) string {
	if name, ok := o.Names[original]; ok {
		return name
	}
	return original
}

// Len returns the number of renamed parameters.
func (o *RenameOverlay) Len() int {
	return len(o.Order)
}
