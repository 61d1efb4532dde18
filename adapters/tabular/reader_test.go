package tabular

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadEstimates_CSV(t *testing.T) {
	path := writeTemp(t, "estimates.csv",
		"parameter,component,estimate,se,statistic,df\n"+
			"(Intercept),,21.5,2.2,9.77,20\n"+
			"age,,-0.35,0.09,-3.88,20\n"+
			"x,zero,0.5,0.1,5.0,NA\n")

	estimates, err := NewReader(path).ReadEstimates()
	require.NoError(t, err)
	require.Len(t, estimates, 3)

	assert.Equal(t, "(Intercept)", estimates[0].Parameter)
	assert.InDelta(t, 21.5, estimates[0].Coefficient, 1e-12)
	assert.InDelta(t, 2.2, estimates[0].StandardError, 1e-12)
	assert.InDelta(t, 20, estimates[0].DF, 1e-12)

	assert.Equal(t, "zero", estimates[2].Component)
	// NA df means no finite complete-data df.
	assert.True(t, math.IsInf(estimates[2].DF, 1))
}

func TestReadEstimates_MissingDFColumnDefaultsToInfinite(t *testing.T) {
	path := writeTemp(t, "estimates.csv",
		"parameter,coefficient,se\nage,-0.35,0.09\n")

	estimates, err := NewReader(path).ReadEstimates()
	require.NoError(t, err)
	require.Len(t, estimates, 1)
	assert.True(t, math.IsInf(estimates[0].DF, 1))
}

func TestReadEstimates_RequiredColumns(t *testing.T) {
	path := writeTemp(t, "estimates.csv", "parameter,coefficient\nage,-0.35\n")
	_, err := NewReader(path).ReadEstimates()
	assert.Error(t, err)

	path = writeTemp(t, "estimates2.csv", "term,se\nage,0.09\n")
	_, err = NewReader(path).ReadEstimates()
	assert.Error(t, err)
}

func TestReadMatrix_CSV(t *testing.T) {
	path := writeTemp(t, "data.csv",
		"x1,x2,x3\n1.0,2.0,3.0\n4.0,,6.0\n7.0,8.0,oops\n")

	headers, columns, err := NewReader(path).ReadMatrix()
	require.NoError(t, err)
	assert.Equal(t, []string{"x1", "x2", "x3"}, headers)
	require.Len(t, columns, 3)

	assert.Equal(t, []float64{1.0, 4.0, 7.0}, columns[0])
	// Blank and non-numeric cells become NaN for pairwise handling.
	assert.True(t, math.IsNaN(columns[1][1]))
	assert.True(t, math.IsNaN(columns[2][2]))
}

func TestReader_MissingFile(t *testing.T) {
	_, _, err := NewReader("/does/not/exist.csv").ReadMatrix()
	assert.Error(t, err)
}

func TestReader_HeaderOnly(t *testing.T) {
	path := writeTemp(t, "empty.csv", "x1,x2\n")
	_, _, err := NewReader(path).ReadMatrix()
	assert.Error(t, err)
}
