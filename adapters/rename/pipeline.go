package rename

import (
	"strings"

	"goparam/domain/terms"
	"goparam/ports"
)

// RewriteRule transforms a raw parameter name before generic classification.
type RewriteRule func(name string) string

// RewriteTable maps model families to their name-rewrite pass. The built-in
// table covers the label conventions of ordinal, baseline-category
// multinomial and compositional fits; it is not assumed exhaustive, and
// callers extend it per family via Renamer.AddRule.
type RewriteTable map[terms.ModelFamily][]RewriteRule

// DefaultRewriteTable returns the built-in family rewrite rules.
func DefaultRewriteTable() RewriteTable {
	return RewriteTable{
		terms.FamilyOrdinal:     {StripInterceptLabel},
		terms.FamilyMultinomial: {StripLeadingCategory},
	}
}

// StripInterceptLabel removes the "Intercept: " label prefix that ordinal
// fits put on threshold parameters.
func StripInterceptLabel(name string) string {
	return strings.TrimPrefix(name, "Intercept: ")
}

// StripLeadingCategory removes the leading "category:" segment that
// baseline-category multinomial fits prepend to every coefficient name.
// Approximate for names that themselves contain the interaction delimiter:
// only the first segment is removed.
func StripLeadingCategory(name string) string {
	if i := strings.Index(name, interactionDelimiter); i >= 0 {
		return strings.TrimSpace(name[i+1:])
	}
	return name
}

// StripCategorySuffix returns a rule that removes a trailing ".category"
// marker for any of the given response categories, the naming convention of
// compositional-regression fits. The categories must be supplied by the
// caller; there is no safe generic form because predictor names may contain
// dots themselves.
func StripCategorySuffix(categories ...string) RewriteRule {
	return func(name string) string {
		for _, cat := range categories {
			if marker := "." + cat; strings.HasSuffix(name, marker) && len(name) > len(marker) {
				return name[:len(name)-len(marker)]
			}
		}
		return name
	}
}

// componentPrefixes are the zero-inflation/hurdle component tags fitting
// procedures prepend to parameter names. The tag is stripped before
// classification and is not part of the variable.
var componentPrefixes = []string{"count_", "cond_", "zero_", "zi_", "hu_", "disp_"}

// SplitComponent splits a zero-inflated/hurdle parameter name into its
// component tag and the bare term name. Names without a recognized tag
// return an empty component.
func SplitComponent(name string) (component, rest string) {
	for _, p := range componentPrefixes {
		if strings.HasPrefix(name, p) && len(name) > len(p) {
			return strings.TrimSuffix(p, "_"), name[len(p):]
		}
	}
	return "", name
}

// Renamer orchestrates classification, formatting and interaction
// composition over every parameter of a fitted model.
type Renamer struct {
	rules RewriteTable
}

// NewRenamer creates a renamer with the default family rewrite table.
func NewRenamer() *Renamer {
	return &Renamer{rules: DefaultRewriteTable()}
}

// AddRule appends a rewrite rule for one model family.
func (r *Renamer) AddRule(family terms.ModelFamily, rule RewriteRule) *Renamer {
	r.rules[family] = append(r.rules[family], rule)
	return r
}

// Rename returns the display-name overlay for every parameter of the model.
// Overlay keys are the model's original raw names, so downstream consumers
// can match against the fit's native term names. Rename is total over any
// term list: unrecognized syntax passes through as a plain term.
func (r *Renamer) Rename(model ports.ModelIntrospectorPort) *terms.RenameOverlay {
	originals := model.ParameterNames()

	// Multivariate fits repeat the same term structure per response; use
	// the first response sub-model's metadata unless the model is itself
	// zero-inflated (then its own names carry the component tags).
	meta := model
	if model.Multivariate() && !model.ZeroInflated() {
		if sub := model.ResponseModel(0); sub != nil {
			meta = sub
		}
	}

	classifier := NewClassifier(meta.Meta())
	overlay := terms.NewRenameOverlay()
	for _, original := range originals {
		clean := original
		if model.ZeroInflated() {
			_, clean = SplitComponent(clean)
		}
		for _, rule := range r.rules[model.Family()] {
			clean = rule(clean)
		}
		overlay.Set(original, FormatTerm(classifier.Classify(clean)))
	}
	return overlay
}
