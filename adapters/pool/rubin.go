// Package pool combines per-imputation parameter estimates into pooled
// estimates using Rubin's rules with the Barnard-Rubin degrees-of-freedom
// adjustment.
package pool

import (
	"context"
	"math"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat/distuv"

	"goparam/domain/core"
	"goparam/domain/pooling"
)

// lambdaFloor keeps the fraction of missing information away from zero so
// the old degrees of freedom stay finite.
const lambdaFloor = 1e-4

// Pooler pools estimate tables under a fixed set of options.
type Pooler struct {
	opts pooling.Options
}

// New creates a pooler; zero-valued options fall back to defaults
// (95% CI, no adjustment).
func New(opts pooling.Options) *Pooler {
	return &Pooler{opts: opts.Normalize()}
}

// Options returns the normalized options the pooler runs with.
func (p *Pooler) Options() pooling.Options {
	return p.opts
}

// Pool groups estimates by their full key tuple (parameter, response,
// component) and combines each group independently. Groups are processed
// concurrently, but the output always has one row per group in
// first-encountered key order. An empty table is an input error.
func (p *Pooler) Pool(ctx context.Context, estimates []pooling.ImputationEstimate) ([]pooling.PooledEstimate, error) {
	if len(estimates) == 0 {
		return nil, core.ErrEmptyTable
	}

	// Explicit grouping map, built once.
	var order []pooling.GroupKey
	groups := make(map[pooling.GroupKey][]pooling.ImputationEstimate)
	for _, est := range estimates {
		key := est.Key()
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], est)
	}

	results := make([]pooling.PooledEstimate, len(order))
	g, _ := errgroup.WithContext(ctx)
	for i, key := range order {
		i, key := i, key
		g.Go(func() error {
			row, err := combine(groups[key], p.opts.CI)
			if err != nil {
				return err
			}
			results[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if p.opts.Adjust != pooling.AdjustNone {
		ps := make([]float64, len(results))
		for i := range results {
			ps[i] = results[i].PValue
		}
		adjusted, err := Adjust(ps, p.opts.Adjust)
		if err != nil {
			return nil, err
		}
		for i := range results {
			results[i].PValue = adjusted[i]
		}
	}
	return results, nil
}

// combine applies Rubin's rules to the m estimates of one group.
func combine(group []pooling.ImputationEstimate, ci float64) (pooling.PooledEstimate, error) {
	m := len(group)
	coefs := make([]float64, m)
	sq := make([]float64, m)
	for i, est := range group {
		coefs[i] = est.Coefficient
		sq[i] = est.StandardError * est.StandardError
	}

	pooled, err := stats.Mean(coefs)
	if err != nil {
		return pooling.PooledEstimate{}, err
	}
	ubar, err := stats.Mean(sq)
	if err != nil {
		return pooling.PooledEstimate{}, err
	}

	// Between-imputation variance; zero for a single imputation.
	var b float64
	if m > 1 {
		if b, err = stats.SampleVariance(coefs); err != nil {
			return pooling.PooledEstimate{}, err
		}
	}

	mf := float64(m)
	variance := ubar + (1+1/mf)*b
	se := math.Sqrt(variance)
	statistic := pooled / se

	dfcom := completeDataDF(group)
	df := barnardRubin(m, b, variance, dfcom)
	low, high, pval := interval(pooled, se, statistic, df, ci)

	first := group[0]
	return pooling.PooledEstimate{
		Parameter:     first.Parameter,
		Response:      first.Response,
		Component:     first.Component,
		Coefficient:   pooled,
		StandardError: se,
		CILow:         low,
		CIHigh:        high,
		Statistic:     statistic,
		DF:            df,
		PValue:        pval,
		M:             m,
	}, nil
}

// barnardRubin computes the adjusted degrees of freedom. With no finite
// complete-data df (z-based models) the result is infinite and intervals
// reduce to the normal approximation. A single imputation carries the
// complete-data df through unadjusted.
func barnardRubin(m int, b, variance, dfcom float64) float64 {
	if math.IsNaN(dfcom) || math.IsInf(dfcom, 0) {
		return math.Inf(1)
	}
	if m == 1 {
		return dfcom
	}
	lambda := (1 + 1/float64(m)) * b / variance
	if lambda < lambdaFloor {
		lambda = lambdaFloor
	}
	dfold := float64(m-1) / (lambda * lambda)
	dfobs := (dfcom + 1) / (dfcom + 3) * dfcom * (1 - lambda)
	return dfold * dfobs / (dfold + dfobs)
}

// completeDataDF returns the largest finite complete-data df observed in the
// group, or +Inf when none is available.
func completeDataDF(group []pooling.ImputationEstimate) float64 {
	dfcom := math.Inf(1)
	found := false
	for _, est := range group {
		if math.IsNaN(est.DF) || math.IsInf(est.DF, 0) || est.DF <= 0 {
			continue
		}
		if !found || est.DF > dfcom {
			dfcom = est.DF
		}
		found = true
	}
	if !found {
		return math.Inf(1)
	}
	return dfcom
}

// interval returns the two-sided confidence bounds and p-value at level ci.
func interval(coef, se, statistic, df, ci float64) (low, high, p float64) {
	prob := (1 + ci) / 2
	if math.IsInf(df, 1) {
		q := distuv.UnitNormal.Quantile(prob)
		p = 2 * (1 - distuv.UnitNormal.CDF(math.Abs(statistic)))
		return coef - q*se, coef + q*se, p
	}
	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	q := t.Quantile(prob)
	p = 2 * (1 - t.CDF(math.Abs(statistic)))
	return coef - q*se, coef + q*se, p
}
