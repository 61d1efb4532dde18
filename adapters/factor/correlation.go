package factor

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"goparam/domain/core"
)

// PairwiseCorrelation builds a Pearson correlation matrix from data columns
// using pairwise-complete observations: a NaN cell drops the row only from
// the pairs it participates in, so partially missing data still yields a
// full matrix. Columns must share the same length.
func PairwiseCorrelation(columns [][]float64) (*mat.Dense, error) {
	p := len(columns)
	if p < 2 {
		return nil, core.ErrTooFewVariables
	}
	n := len(columns[0])
	for _, col := range columns {
		if len(col) != n {
			return nil, core.NewDimensionError(len(col), n)
		}
	}
	if n < 2 {
		return nil, core.ErrTooFewRows
	}

	r := mat.NewDense(p, p, nil)
	for i := 0; i < p; i++ {
		r.Set(i, i, 1)
		for j := i + 1; j < p; j++ {
			x, y := completePairs(columns[i], columns[j])
			if len(x) < 2 {
				return nil, core.ErrTooFewRows
			}
			c := stat.Correlation(x, y, nil)
			r.Set(i, j, c)
			r.Set(j, i, c)
		}
	}
	return r, nil
}

// completePairs filters both slices down to indices where neither value is
// missing.
func completePairs(a, b []float64) ([]float64, []float64) {
	x := make([]float64, 0, len(a))
	y := make([]float64, 0, len(b))
	for i := range a {
		if math.IsNaN(a[i]) || math.IsNaN(b[i]) {
			continue
		}
		x = append(x, a[i])
		y = append(y, b[i])
	}
	return x, y
}
