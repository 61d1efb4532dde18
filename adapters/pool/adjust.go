package pool

import (
	"fmt"
	"math"
	"sort"

	"goparam/domain/pooling"
)

// Adjust applies a multiple-comparison adjustment across a set of p-values,
// returning a new slice in the input order. Adjusted values are clipped to 1.
func Adjust(p []float64, method pooling.AdjustMethod) ([]float64, error) {
	switch method {
	case pooling.AdjustNone, "":
		return append([]float64(nil), p...), nil
	case pooling.AdjustBonferroni:
		return bonferroni(p), nil
	case pooling.AdjustHolm:
		return holm(p), nil
	case pooling.AdjustHochberg:
		return hochberg(p), nil
	case pooling.AdjustBH:
		return benjaminiHochberg(p, 1), nil
	case pooling.AdjustBY:
		return benjaminiHochberg(p, harmonic(len(p))), nil
	}
	return nil, fmt.Errorf("unknown p-value adjustment method %q", method)
}

func bonferroni(p []float64) []float64 {
	m := float64(len(p))
	out := make([]float64, len(p))
	for i, v := range p {
		out[i] = clip(v * m)
	}
	return out
}

// holm is the step-down method: ascending p-values, factor (n - rank),
// running maximum so the adjusted sequence stays monotone.
func holm(p []float64) []float64 {
	n := len(p)
	out := make([]float64, n)
	running := 0.0
	for rank, i := range sortedIndex(p, true) {
		v := clip(float64(n-rank) * p[i])
		if v < running {
			v = running
		}
		running = v
		out[i] = v
	}
	return out
}

// hochberg is the step-up method: descending p-values, factor (rank + 1),
// running minimum.
func hochberg(p []float64) []float64 {
	n := len(p)
	out := make([]float64, n)
	running := math.Inf(1)
	for rank, i := range sortedIndex(p, false) {
		v := clip(float64(rank+1) * p[i])
		if v > running {
			v = running
		}
		running = v
		out[i] = v
	}
	return out
}

// benjaminiHochberg controls the false discovery rate; scale 1 gives BH,
// scale harmonic(n) gives the BY variant valid under dependence.
func benjaminiHochberg(p []float64, scale float64) []float64 {
	n := len(p)
	out := make([]float64, n)
	running := math.Inf(1)
	for rank, i := range sortedIndex(p, false) {
		v := clip(scale * float64(n) / float64(n-rank) * p[i])
		if v > running {
			v = running
		}
		running = v
		out[i] = v
	}
	return out
}

func harmonic(n int) float64 {
	var h float64
	for k := 1; k <= n; k++ {
		h += 1 / float64(k)
	}
	return h
}

// sortedIndex returns the indices of p ordered by value.
func sortedIndex(p []float64, ascending bool) []int {
	idx := make([]int, len(p))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		if ascending {
			return p[idx[a]] < p[idx[b]]
		}
		return p[idx[a]] > p[idx[b]]
	})
	return idx
}

func clip(v float64) float64 {
	if v > 1 {
		return 1
	}
	return v
}
