// Package factor implements the factor-analysis suitability checks: the
// Kaiser-Meyer-Olkin measure of sampling adequacy and Bartlett's test of
// sphericity, both over a correlation matrix.
package factor

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"goparam/domain/core"
	"goparam/domain/diagnostics"
)

// KMO computes the Kaiser-Meyer-Olkin measure of sampling adequacy for the
// correlation matrix r. Variable names are optional and only carried into
// the result for reporting.
//
// The anti-image approach inverts r, converts the inverse to
// partial-correlation form, zeroes both diagonals, and compares squared
// correlations against squared partial correlations:
//
//	MSA = sum(R^2) / (sum(R^2) + sum(P^2))
//
// with the per-variable MSA as the column-wise analog. A singular matrix is
// a propagated error, never a fallback value.
func KMO(r *mat.Dense, names []string) (diagnostics.KMOResult, error) {
	p, err := squareDim(r)
	if err != nil {
		return diagnostics.KMOResult{}, err
	}

	var inv mat.Dense
	if err := inv.Inverse(r); err != nil {
		return diagnostics.KMOResult{}, fmt.Errorf("%w: %v", core.ErrSingularMatrix, err)
	}

	// Partial correlations from the inverse: P[i,j] = -Q[i,j]/sqrt(Q[i,i]*Q[j,j]).
	partial := mat.NewDense(p, p, nil)
	for i := 0; i < p; i++ {
		for j := 0; j < p; j++ {
			if i == j {
				continue
			}
			partial.Set(i, j, -inv.At(i, j)/math.Sqrt(inv.At(i, i)*inv.At(j, j)))
		}
	}

	// Off-diagonal sums of squares, overall and per column.
	var sumR, sumP float64
	colR := make([]float64, p)
	colP := make([]float64, p)
	for i := 0; i < p; i++ {
		for j := 0; j < p; j++ {
			if i == j {
				continue
			}
			r2 := r.At(i, j) * r.At(i, j)
			p2 := partial.At(i, j) * partial.At(i, j)
			sumR += r2
			sumP += p2
			colR[j] += r2
			colP[j] += p2
		}
	}

	perVariable := make([]float64, p)
	for j := 0; j < p; j++ {
		perVariable[j] = colR[j] / (colR[j] + colP[j])
	}

	return diagnostics.KMOResult{
		MSA:         sumR / (sumR + sumP),
		PerVariable: perVariable,
		Variables:   names,
	}, nil
}

// squareDim validates that r is a square matrix of at least two variables
// and returns its dimension.
func squareDim(r *mat.Dense) (int, error) {
	rows, cols := r.Dims()
	if rows != cols {
		return 0, fmt.Errorf("%w: %dx%d", core.ErrNotSquare, rows, cols)
	}
	if rows < 2 {
		return 0, core.ErrTooFewVariables
	}
	return rows, nil
}
