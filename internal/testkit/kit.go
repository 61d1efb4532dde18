// Package testkit provides shared fixtures for tests: model term structures,
// synthetic imputation tables and reference correlation matrices.
package testkit

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"goparam/adapters/introspection"
	"goparam/domain/pooling"
	"goparam/domain/terms"
)

// IrisModel returns a StaticModel shaped like the classic regression of a
// petal measurement on species and the other measurements, including factor
// levels, a polynomial term and factor-by-measurement interactions.
func IrisModel() *introspection.StaticModel {
	table := terms.NewMetaTable()
	table.FactorLevels["Species"] = []string{"versicolor", "virginica"}
	return &introspection.StaticModel{
		Params: []string{
			"(Intercept)",
			"Speciesversicolor",
			"Speciesvirginica",
			"poly(Sepal.Width, 2)1",
			"poly(Sepal.Width, 2)2",
			"Petal.Length",
			"Speciesversicolor:Petal.Length",
			"Speciesvirginica:Petal.Length",
		},
		Table: table,
	}
}

// SyntheticEstimates builds m imputations of a three-parameter fit with
// stable coefficients and mild between-imputation jitter. The complete-data
// df is finite, so pooled rows get a Barnard-Rubin adjustment.
func SyntheticEstimates(m int, seed int64) []pooling.ImputationEstimate {
	rng := rand.New(rand.NewSource(seed))
	type param struct {
		name string
		coef float64
		se   float64
	}
	params := []param{
		{"(Intercept)", 21.5, 2.2},
		{"age", -0.35, 0.09},
		{"chl", 0.006, 0.002},
	}

	var estimates []pooling.ImputationEstimate
	for i := 0; i < m; i++ {
		for _, p := range params {
			coef := p.coef + rng.NormFloat64()*p.se*0.3
			estimates = append(estimates, pooling.ImputationEstimate{
				Parameter:     p.name,
				Coefficient:   coef,
				StandardError: p.se * (1 + 0.1*rng.Float64()),
				Statistic:     coef / p.se,
				DF:            20,
			})
		}
	}
	return estimates
}

// EquicorrelatedMatrix returns the p x p correlation matrix with every
// off-diagonal entry equal to r. Its inverse is known in closed form, which
// makes hand-checked KMO expectations possible.
func EquicorrelatedMatrix(p int, r float64) *mat.Dense {
	m := mat.NewDense(p, p, nil)
	for i := 0; i < p; i++ {
		for j := 0; j < p; j++ {
			if i == j {
				m.Set(i, j, 1)
			} else {
				m.Set(i, j, r)
			}
		}
	}
	return m
}

// NearCollinearColumns returns three data columns where the third is a
// near-perfect linear combination of the first two, for the end-to-end
// degenerate-structure scenario.
func NearCollinearColumns(n int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	x1 := make([]float64, n)
	x2 := make([]float64, n)
	x3 := make([]float64, n)
	for i := 0; i < n; i++ {
		x1[i] = rng.NormFloat64()
		x2[i] = rng.NormFloat64()
		x3[i] = 0.6*x1[i] + 0.4*x2[i] + 1e-3*rng.NormFloat64()
	}
	return [][]float64{x1, x2, x3}
}

// WithMissing copies a column and replaces every k-th value with NaN.
func WithMissing(col []float64, k int) []float64 {
	out := append([]float64(nil), col...)
	for i := k - 1; i < len(out); i += k {
		out[i] = math.NaN()
	}
	return out
}
