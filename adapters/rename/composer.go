package rename

import "strings"

const (
	nestedSeparator         = " : "
	multiplicativeSeparator = " * "
)

// Compose joins the already-formatted constituent labels of an interaction.
// Nested terms (hierarchical variable structure) use " : ", multiplicative
// interactions " * ". With more than two constituents, non-nested
// interactions group all but the last constituent in parentheses so
// high-order labels stay readable: (a * b) * c. Nested terms never group.
func Compose(labels []string, nested, multiplicative bool) string {
	sep := multiplicativeSeparator
	if nested || !multiplicative {
		sep = nestedSeparator
	}

	switch {
	case len(labels) <= 2:
		return strings.Join(labels, sep)
	case nested:
		return strings.Join(labels, nestedSeparator)
	default:
		head := strings.Join(labels[:len(labels)-1], multiplicativeSeparator)
		return "(" + head + ")" + sep + labels[len(labels)-1]
	}
}
