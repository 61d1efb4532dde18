package rename

import (
	"regexp"
	"strings"

	"goparam/domain/terms"
)

// interactionDelimiter separates the constituents of an interaction term in
// its raw name.
const interactionDelimiter = ":"

var (
	splineFunctions = map[string]bool{"ns": true, "bs": true, "rcs": true, "mSpline": true}
	logFunctions    = map[string]bool{"log": true, "log1p": true, "log2": true, "log10": true}

	// orderedContrast matches the contrast codes appended to ordered-factor
	// terms: .L, .Q, .C, or ^n for higher orders.
	orderedContrast = regexp.MustCompile(`^(\.L|\.Q|\.C|\^[0-9]+)$`)
)

// Classifier turns raw term names into classified Terms using the model's
// variable metadata. Classification is total: unrecognized syntax degrades to
// a plain term, never an error.
type Classifier struct {
	meta *terms.MetaTable
}

// NewClassifier creates a classifier over the given metadata table. A nil
// table is treated as empty, so every term falls back to syntax-only rules.
func NewClassifier(meta *terms.MetaTable) *Classifier {
	if meta == nil {
		meta = terms.NewMetaTable()
	}
	return &Classifier{meta: meta}
}

// Classify determines kind, variable and level for a raw term name. Every
// raw name maps to exactly one kind; interaction names decompose into their
// ordered constituents, each classified independently.
func (c *Classifier) Classify(raw string) terms.Term {
	if strings.Contains(raw, interactionDelimiter) {
		return c.classifyInteraction(raw)
	}
	return c.classifySingle(raw)
}

func (c *Classifier) classifyInteraction(raw string) terms.Term {
	kind := terms.KindInteraction
	if c.meta.Nested[raw] {
		kind = terms.KindNested
	}
	t := terms.Term{RawName: raw, Variable: raw, Kind: kind}
	for _, part := range strings.Split(raw, interactionDelimiter) {
		t.Constituents = append(t.Constituents, c.classifySingle(strings.TrimSpace(part)))
	}
	return t
}

func (c *Classifier) classifySingle(raw string) terms.Term {
	if call, ok := ParseWrapper(raw); ok {
		if t, ok := c.classifyWrapper(raw, call); ok {
			return t
		}
	}
	if t, ok := c.classifyFactor(raw); ok {
		return t
	}
	// A constituent that appears only inside interactions has no primary
	// term; its metadata lives in the secondary table.
	if m, ok := c.meta.Secondary[raw]; ok {
		return terms.Term{RawName: raw, Variable: m.Variable, Kind: m.Kind, Level: m.Level}
	}
	return terms.Term{RawName: raw, Variable: raw, Kind: terms.KindPlain}
}

func (c *Classifier) classifyWrapper(raw string, call WrapperCall) (terms.Term, bool) {
	var variable string
	if len(call.Args) > 0 {
		variable = call.Args[0]
	}

	switch {
	case call.Function == "poly":
		kind := terms.KindPoly
		if polyIsRaw(call.Args) {
			kind = terms.KindPolyRaw
		}
		return terms.Term{RawName: raw, Variable: variable, Kind: kind, Level: call.Suffix}, true
	case splineFunctions[call.Function]:
		return terms.Term{RawName: raw, Variable: variable, Kind: terms.KindSpline, Level: call.Suffix}, true
	case logFunctions[call.Function]:
		return terms.Term{RawName: raw, Variable: variable, Kind: terms.KindLogarithm, Level: call.Function}, true
	case call.Function == "exp":
		return terms.Term{RawName: raw, Variable: variable, Kind: terms.KindExponentiation, Level: call.Function}, true
	case call.Function == "sqrt":
		return terms.Term{RawName: raw, Variable: variable, Kind: terms.KindSquareRoot, Level: call.Function}, true
	case call.Function == "I":
		// Identity wrapper passes through unchanged.
		return terms.Term{RawName: raw, Variable: raw, Kind: terms.KindAsIs}, true
	case call.Function == "s":
		return terms.Term{RawName: raw, Variable: variable, Kind: terms.KindSmooth, Level: call.RawArgs}, true
	}
	return terms.Term{}, false
}

// classifyFactor matches raw against the factor variables of the model: a
// factor-coded term is the variable name with a level appended. The longest
// matching variable prefix wins; matching is case-insensitive because
// fitting procedures do not always preserve the variable's case in term
// names.
func (c *Classifier) classifyFactor(raw string) (terms.Term, bool) {
	var bestVar, bestLevel string
	for variable := range c.meta.FactorLevels {
		if len(variable) >= len(raw) {
			continue
		}
		if !strings.EqualFold(raw[:len(variable)], variable) {
			continue
		}
		if len(variable) > len(bestVar) {
			bestVar = variable
			bestLevel = raw[len(variable):]
		}
	}
	if bestVar == "" {
		return terms.Term{}, false
	}

	if c.meta.Ordered[bestVar] && orderedContrast.MatchString(bestLevel) {
		return terms.Term{RawName: raw, Variable: bestVar, Kind: terms.KindOrdered, Level: bestLevel}, true
	}
	if levels := c.meta.FactorLevels[bestVar]; len(levels) > 0 && !containsLevel(levels, bestLevel) {
		return terms.Term{}, false
	}
	return terms.Term{RawName: raw, Variable: bestVar, Kind: terms.KindFactor, Level: bestLevel}, true
}

func containsLevel(levels []string, level string) bool {
	for _, l := range levels {
		if l == level {
			return true
		}
	}
	return false
}

func polyIsRaw(args []string) bool {
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found {
			continue
		}
		if strings.TrimSpace(key) == "raw" && strings.EqualFold(strings.TrimSpace(value), "TRUE") {
			return true
		}
	}
	return false
}
