package factor

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"goparam/domain/core"
	"goparam/domain/diagnostics"
)

// Sphericity runs Bartlett's test of sphericity on the correlation matrix r
// computed from n observations:
//
//	statistic = -ln(det(R)) * (n - 1 - (2p+5)/6)
//	df        = p(p-1)/2
//
// with the p-value as the upper chi-square tail at df. A non-positive
// determinant leaves the logarithm undefined and is a propagated error.
func Sphericity(r *mat.Dense, n int) (diagnostics.SphericityResult, error) {
	p, err := squareDim(r)
	if err != nil {
		return diagnostics.SphericityResult{}, err
	}
	if n < 2 {
		return diagnostics.SphericityResult{}, core.ErrTooFewRows
	}

	// A zero determinant surfaces as logDet = -Inf with positive sign.
	logDet, sign := mat.LogDet(r)
	if sign <= 0 || math.IsInf(logDet, -1) || math.IsNaN(logDet) {
		return diagnostics.SphericityResult{}, fmt.Errorf("%w (sign %v)", core.ErrNonPositiveDeterminant, sign)
	}

	pf := float64(p)
	statistic := -logDet * (float64(n) - 1 - (2*pf+5)/6)
	df := p * (p - 1) / 2

	chi := distuv.ChiSquared{K: float64(df)}
	return diagnostics.SphericityResult{
		ChiSquare: statistic,
		DF:        df,
		PValue:    1 - chi.CDF(statistic),
		N:         n,
	}, nil
}
