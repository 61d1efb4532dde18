package pooling

import "math"

// ImputationEstimate is one coefficient's estimate from one completed
// imputation. Response and Component are optional grouping columns: Response
// distinguishes sub-models of a multivariate fit, Component distinguishes
// model parts such as the zero-inflation part of a hurdle model.
type ImputationEstimate struct {
	Parameter string
	Response  string
	Component string

	Coefficient   float64
	StandardError float64
	Statistic     float64
	// DF is the complete-data degrees of freedom when the source model
	// provides one. Use math.Inf(1) or NaN for z-based models.
	DF float64
}

// GroupKey identifies one pooled row: rows sharing the full key tuple are
// combined together.
type GroupKey struct {
	Parameter string
	Response  string
	Component string
}

// Key returns the grouping key of the estimate.
func (e ImputationEstimate) Key() GroupKey {
	return GroupKey{Parameter: e.Parameter, Response: e.Response, Component: e.Component}
}

// PooledEstimate is the result of Rubin's rules for one parameter group.
type PooledEstimate struct {
	Parameter string
	Response  string
	Component string

	Coefficient   float64
	StandardError float64
	CILow         float64
	CIHigh        float64
	Statistic     float64
	// DF is the Barnard-Rubin adjusted degrees of freedom; +Inf when no
	// finite complete-data df was available (normal approximation).
	DF     float64
	PValue float64
	// M is the number of imputations combined into this row.
	M int
}

// NormalApproximation reports whether the pooled interval fell back to the
// normal approximation.
func (p PooledEstimate) NormalApproximation() bool {
	return math.IsInf(p.DF, 1)
}

// AdjustMethod selects a p-value adjustment for multiple comparisons,
// applied across all pooled rows together.
type AdjustMethod string

const (
	AdjustNone       AdjustMethod = "none"
	AdjustHolm       AdjustMethod = "holm"
	AdjustBonferroni AdjustMethod = "bonferroni"
	AdjustHochberg   AdjustMethod = "hochberg"
	AdjustBH         AdjustMethod = "BH"
	AdjustBY         AdjustMethod = "BY"
)

// Options configures pooling.
type Options struct {
	// CI is the confidence level, default 0.95.
	CI float64
	// Adjust is the p-value adjustment method, default AdjustNone.
	Adjust AdjustMethod
	// StatisticName labels the statistic column in reports; reuse the
	// source model's name (z, t, F) when known. Default "Statistic".
	StatisticName string
}

// DefaultOptions returns the standard pooling configuration.
func DefaultOptions() Options {
	return Options{CI: 0.95, Adjust: AdjustNone, StatisticName: "Statistic"}
}

// Normalize fills zero values with defaults.
func (o Options) Normalize() Options {
	if o.CI == 0 {
		o.CI = 0.95
	}
	if o.Adjust == "" {
		o.Adjust = AdjustNone
	}
	if o.StatisticName == "" {
		o.StatisticName = "Statistic"
	}
	return o
}
