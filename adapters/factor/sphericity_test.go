package factor

import (
	"errors"
	"math"
	"testing"

	"goparam/domain/core"
	"goparam/internal/testkit"
)

func TestSphericity_IdentityMatrix(t *testing.T) {
	// ln(det(I)) = 0, so the statistic is 0 and the p-value is 1: an
	// uncorrelated matrix never rejects sphericity.
	res, err := Sphericity(testkit.EquicorrelatedMatrix(4, 0), 50)
	if err != nil {
		t.Fatalf("Sphericity: %v", err)
	}
	if math.Abs(res.ChiSquare) > 1e-12 {
		t.Errorf("statistic = %v, want 0", res.ChiSquare)
	}
	if res.PValue != 1 {
		t.Errorf("p = %v, want 1", res.PValue)
	}
	if res.DF != 6 {
		t.Errorf("df = %d, want 6", res.DF)
	}
	if res.Sufficient() {
		t.Error("identity matrix must not show sufficient correlation")
	}
}

func TestSphericity_StrongCorrelationRejects(t *testing.T) {
	res, err := Sphericity(testkit.EquicorrelatedMatrix(3, 0.8), 100)
	if err != nil {
		t.Fatalf("Sphericity: %v", err)
	}
	if !res.Sufficient() {
		t.Errorf("r=0.8, n=100 should reject sphericity, p = %v", res.PValue)
	}
}

func TestSphericity_NonPositiveDeterminantPropagates(t *testing.T) {
	r := testkit.EquicorrelatedMatrix(3, 1.0)
	_, err := Sphericity(r, 100)
	if !errors.Is(err, core.ErrNonPositiveDeterminant) {
		t.Fatalf("err = %v, want ErrNonPositiveDeterminant", err)
	}
}

func TestSphericity_TooFewRows(t *testing.T) {
	if _, err := Sphericity(testkit.EquicorrelatedMatrix(3, 0.5), 1); !errors.Is(err, core.ErrTooFewRows) {
		t.Errorf("err = %v, want ErrTooFewRows", err)
	}
}

// End-to-end: with one variable a near-perfect linear combination of the
// others, sphericity rejects the identity hypothesis while KMO flags low
// sampling adequacy, lowest for the dependent variable.
func TestDiagnostics_NearCollinearScenario(t *testing.T) {
	columns := testkit.NearCollinearColumns(200, 42)
	r, err := PairwiseCorrelation(columns)
	if err != nil {
		t.Fatalf("PairwiseCorrelation: %v", err)
	}

	sphericity, err := Sphericity(r, 200)
	if err != nil {
		t.Fatalf("Sphericity: %v", err)
	}
	if !sphericity.Sufficient() {
		t.Errorf("p = %v, want < 0.001", sphericity.PValue)
	}

	kmo, err := KMO(r, []string{"x1", "x2", "x3"})
	if err != nil {
		t.Fatalf("KMO: %v", err)
	}
	if kmo.Adequate() {
		t.Errorf("MSA = %v, want < 0.5 for a degenerate structure", kmo.MSA)
	}
	if kmo.PerVariable[2] >= 0.5 {
		t.Errorf("dependent variable MSA = %v, want < 0.5", kmo.PerVariable[2])
	}
}

func TestPairwiseCorrelation_ToleratesMissingValues(t *testing.T) {
	columns := testkit.NearCollinearColumns(200, 7)
	columns[0] = testkit.WithMissing(columns[0], 10)
	columns[1] = testkit.WithMissing(columns[1], 7)

	r, err := PairwiseCorrelation(columns)
	if err != nil {
		t.Fatalf("PairwiseCorrelation: %v", err)
	}
	p, _ := r.Dims()
	for i := 0; i < p; i++ {
		for j := 0; j < p; j++ {
			if math.IsNaN(r.At(i, j)) {
				t.Fatalf("r[%d,%d] is NaN despite pairwise deletion", i, j)
			}
		}
	}
	if r.At(0, 0) != 1 {
		t.Errorf("diagonal = %v, want 1", r.At(0, 0))
	}
}

func TestPairwiseCorrelation_InputValidation(t *testing.T) {
	if _, err := PairwiseCorrelation([][]float64{{1, 2, 3}}); !errors.Is(err, core.ErrTooFewVariables) {
		t.Errorf("single column: err = %v", err)
	}
	if _, err := PairwiseCorrelation([][]float64{{1, 2}, {1, 2, 3}}); !errors.Is(err, core.ErrDimensionMismatch) {
		t.Errorf("ragged columns: err = %v", err)
	}
}
