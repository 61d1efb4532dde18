package rename

import "testing"

func TestCompose(t *testing.T) {
	tests := []struct {
		name           string
		labels         []string
		nested         bool
		multiplicative bool
		want           string
	}{
		{
			name:           "two-way multiplicative has no parentheses",
			labels:         []string{"Species [B]", "Petal.Length"},
			multiplicative: true,
			want:           "Species [B] * Petal.Length",
		},
		{
			name:   "two-way nested",
			labels: []string{"site", "plot"},
			nested: true,
			want:   "site : plot",
		},
		{
			name:           "three-way non-nested groups the first two",
			labels:         []string{"Species [B]", "Sepal.Width", "Petal.Length"},
			multiplicative: true,
			want:           "(Species [B] * Sepal.Width) * Petal.Length",
		},
		{
			name:           "four-way non-nested groups all but the last",
			labels:         []string{"a", "b", "c", "d"},
			multiplicative: true,
			want:           "(a * b * c) * d",
		},
		{
			name:   "three-way nested stays flat",
			labels: []string{"a", "b", "c"},
			nested: true,
			want:   "a : b : c",
		},
		{
			name:   "single label",
			labels: []string{"a"},
			want:   "a",
		},
	}

	for _, tc := range tests {
		if got := Compose(tc.labels, tc.nested, tc.multiplicative); got != tc.want {
			t.Errorf("%s: Compose = %q, want %q", tc.name, got, tc.want)
		}
	}
}
