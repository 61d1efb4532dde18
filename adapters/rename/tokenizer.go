package rename

import (
	"strings"
)

// WrapperCall is the structured form of a transform-wrapper term name such as
// poly(Sepal.Width, 2)1 or log(income): the wrapper function, its parsed
// arguments, the raw argument text, and any trailing index appended by the
// fitting procedure.
type WrapperCall struct {
	Function string
	Args     []string
	RawArgs  string
	Suffix   string
}

// ParseWrapper parses raw as a function-call wrapper. The second return is
// false when raw is not of the form name(args...)suffix.
func ParseWrapper(raw string) (WrapperCall, bool) {
	open := strings.IndexByte(raw, '(')
	if open <= 0 {
		return WrapperCall{}, false
	}
	fn := raw[:open]
	if !isIdentifier(fn) {
		return WrapperCall{}, false
	}

	// Find the matching close paren; arguments may themselves contain
	// calls, e.g. I(log(x)).
	depth := 0
	close := -1
	for i := open; i < len(raw); i++ {
		switch raw[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				close = i
			}
		}
		if close >= 0 {
			break
		}
	}
	if close < 0 {
		return WrapperCall{}, false
	}

	inner := raw[open+1 : close]
	return WrapperCall{
		Function: fn,
		Args:     splitArgs(inner),
		RawArgs:  inner,
		Suffix:   raw[close+1:],
	}, true
}

// splitArgs splits an argument list on top-level commas, trimming whitespace.
func splitArgs(inner string) []string {
	var args []string
	depth := 0
	start := 0
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(inner[start:i]))
				start = i + 1
			}
		}
	}
	if arg := strings.TrimSpace(inner[start:]); arg != "" {
		args = append(args, arg)
	}
	return args
}

// isIdentifier reports whether s looks like a wrapper-function name. Dots
// are allowed because spline constructors may be namespace-qualified
// (splines::ns renders as a dotted name in some fits).
func isIdentifier(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_', c == '.':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return len(s) > 0
}
