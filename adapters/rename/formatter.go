package rename

import (
	"fmt"
	"strconv"
	"strings"

	"goparam/domain/terms"
)

// FormatTerm renders the display label for one classified term. The function
// is total over all kinds and has no side effects; interaction and nested
// terms are rendered by composing their formatted constituents.
func FormatTerm(t terms.Term) string {
	switch t.Kind {
	case terms.KindPlain, terms.KindAsIs:
		return t.Variable
	case terms.KindFactor:
		return fmt.Sprintf("%s [%s]", t.Variable, t.Level)
	case terms.KindPoly, terms.KindPolyRaw, terms.KindSpline:
		return fmt.Sprintf("%s [%s degree]", t.Variable, ordinal(degreeOf(t.Level)))
	case terms.KindLogarithm, terms.KindExponentiation, terms.KindSquareRoot:
		return fmt.Sprintf("%s [%s]", t.Variable, t.Level)
	case terms.KindSmooth:
		return "Smooth term (" + t.Level + ")"
	case terms.KindOrdered:
		return t.Variable + " " + orderedLabel(t.Level)
	case terms.KindInteraction, terms.KindNested:
		labels := make([]string, len(t.Constituents))
		for i, sub := range t.Constituents {
			labels[i] = FormatTerm(sub)
		}
		return Compose(labels, t.Kind == terms.KindNested, true)
	}
	return t.RawName
}

// degreeOf parses a polynomial or spline degree from the term's level
// suffix, defaulting to 1 when absent.
func degreeOf(level string) int {
	n, err := strconv.Atoi(strings.TrimSpace(level))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// ordinal renders the numeric (non-textual) ordinal form: 1st, 2nd, 3rd,
// 4th, ... with the 11-13 exception.
func ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return strconv.Itoa(n) + suffix
}

// orderedLabel renders an ordered-factor contrast code: .L, .Q and .C map to
// the named contrasts, higher orders to their ordinal degree.
func orderedLabel(code string) string {
	switch code {
	case ".L":
		return "[linear]"
	case ".Q":
		return "[quadratic]"
	case ".C":
		return "[cubic]"
	}
	if n, err := strconv.Atoi(strings.TrimLeft(code, "^.")); err == nil {
		return fmt.Sprintf("[%s degree]", ordinal(n))
	}
	return "[" + code + "]"
}
