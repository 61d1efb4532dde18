package pool

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goparam/domain/core"
	"goparam/domain/pooling"
	"goparam/internal/testkit"
)

func estimate(param string, coef, se, df float64) pooling.ImputationEstimate {
	return pooling.ImputationEstimate{Parameter: param, Coefficient: coef, StandardError: se, DF: df}
}

func TestPool_RubinRules(t *testing.T) {
	// Hand-computed: coefficients 1.0, 1.2, 0.8 with SEs 0.5, 0.4, 0.6
	// and complete-data df 20.
	//   ubar = (0.25+0.16+0.36)/3 = 0.256667
	//   b    = var(1.0, 1.2, 0.8) = 0.04
	//   T    = ubar + (4/3)*0.04  = 0.31
	//   lambda = (4/3)*0.04/0.31  = 0.172043
	//   dfold  = 2/lambda^2       = 67.5703
	//   dfobs  = 21/23*20*(1-lambda) = 15.1193
	//   df     = dfold*dfobs/(dfold+dfobs) = 12.355
	estimates := []pooling.ImputationEstimate{
		estimate("age", 1.0, 0.5, 20),
		estimate("age", 1.2, 0.4, 20),
		estimate("age", 0.8, 0.6, 20),
	}

	pooled, err := New(pooling.DefaultOptions()).Pool(context.Background(), estimates)
	require.NoError(t, err)
	require.Len(t, pooled, 1)

	row := pooled[0]
	assert.Equal(t, "age", row.Parameter)
	assert.Equal(t, 3, row.M)
	assert.InDelta(t, 1.0, row.Coefficient, 1e-12)
	assert.InDelta(t, math.Sqrt(0.31), row.StandardError, 1e-9)
	assert.InDelta(t, 1.0/math.Sqrt(0.31), row.Statistic, 1e-9)
	assert.InDelta(t, 12.355, row.DF, 0.01)
	assert.False(t, row.NormalApproximation())

	assert.Less(t, row.CILow, row.Coefficient)
	assert.Greater(t, row.CIHigh, row.Coefficient)
	assert.Greater(t, row.PValue, 0.0)
	assert.Less(t, row.PValue, 1.0)
}

func TestPool_SingleImputationDegenerates(t *testing.T) {
	// m=1: no between-imputation variance, the pooled row is the single
	// estimate itself.
	pooled, err := New(pooling.DefaultOptions()).Pool(context.Background(),
		[]pooling.ImputationEstimate{estimate("chl", 0.006, 0.002, 24)})
	require.NoError(t, err)
	require.Len(t, pooled, 1)

	row := pooled[0]
	assert.Equal(t, 1, row.M)
	assert.InDelta(t, 0.006, row.Coefficient, 1e-12)
	assert.InDelta(t, 0.002, row.StandardError, 1e-12)
	assert.InDelta(t, 24, row.DF, 1e-12)
}

func TestPool_InfiniteDFWithoutCompleteDataDF(t *testing.T) {
	// z-based models carry no complete-data df; the pooled df is infinite
	// and the interval reduces to the normal approximation.
	estimates := []pooling.ImputationEstimate{
		estimate("x", 0.5, 0.1, math.Inf(1)),
		estimate("x", 0.6, 0.1, math.Inf(1)),
		estimate("x", 0.4, 0.1, math.NaN()),
	}

	pooled, err := New(pooling.DefaultOptions()).Pool(context.Background(), estimates)
	require.NoError(t, err)
	require.Len(t, pooled, 1)
	assert.True(t, pooled[0].NormalApproximation())

	// 95% normal interval: coefficient +/- 1.96*SE.
	row := pooled[0]
	assert.InDelta(t, row.Coefficient-1.959964*row.StandardError, row.CILow, 1e-4)
	assert.InDelta(t, row.Coefficient+1.959964*row.StandardError, row.CIHigh, 1e-4)
}

func TestPool_GroupsByFullKeyTuple(t *testing.T) {
	estimates := []pooling.ImputationEstimate{
		{Parameter: "x", Component: "count", Coefficient: 1, StandardError: 0.1},
		{Parameter: "x", Component: "zero", Coefficient: -2, StandardError: 0.2},
		{Parameter: "x", Component: "count", Coefficient: 1.1, StandardError: 0.1},
		{Parameter: "x", Component: "zero", Coefficient: -2.1, StandardError: 0.2},
	}

	pooled, err := New(pooling.DefaultOptions()).Pool(context.Background(), estimates)
	require.NoError(t, err)
	require.Len(t, pooled, 2)

	// One row per key tuple, in first-encountered order.
	assert.Equal(t, "count", pooled[0].Component)
	assert.Equal(t, "zero", pooled[1].Component)
	assert.Equal(t, 2, pooled[0].M)
	assert.InDelta(t, 1.05, pooled[0].Coefficient, 1e-12)
	assert.InDelta(t, -2.05, pooled[1].Coefficient, 1e-12)
}

func TestPool_DeterministicFirstSeenOrder(t *testing.T) {
	estimates := testkit.SyntheticEstimates(5, 99)

	want := []string{"(Intercept)", "age", "chl"}
	for i := 0; i < 10; i++ {
		pooled, err := New(pooling.DefaultOptions()).Pool(context.Background(), estimates)
		require.NoError(t, err)
		require.Len(t, pooled, 3)
		for j, row := range pooled {
			assert.Equal(t, want[j], row.Parameter)
		}
	}
}

func TestPool_EmptyTableIsInputError(t *testing.T) {
	_, err := New(pooling.DefaultOptions()).Pool(context.Background(), nil)
	assert.True(t, errors.Is(err, core.ErrEmptyTable))
}

func TestPool_AppliesAdjustmentAcrossRows(t *testing.T) {
	estimates := testkit.SyntheticEstimates(5, 3)

	plain, err := New(pooling.DefaultOptions()).Pool(context.Background(), estimates)
	require.NoError(t, err)

	opts := pooling.DefaultOptions()
	opts.Adjust = pooling.AdjustBonferroni
	adjusted, err := New(opts).Pool(context.Background(), estimates)
	require.NoError(t, err)

	for i := range plain {
		want := plain[i].PValue * float64(len(plain))
		if want > 1 {
			want = 1
		}
		assert.InDelta(t, want, adjusted[i].PValue, 1e-12)
	}
}
