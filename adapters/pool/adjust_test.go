package pool

import (
	"math"
	"testing"

	"goparam/domain/pooling"
)

func TestAdjust_KnownVectors(t *testing.T) {
	p := []float64{0.01, 0.02, 0.03, 0.04}
	by := 0.04 * (1 + 0.5 + 1.0/3 + 0.25)

	tests := []struct {
		method pooling.AdjustMethod
		want   []float64
	}{
		{pooling.AdjustNone, []float64{0.01, 0.02, 0.03, 0.04}},
		{pooling.AdjustBonferroni, []float64{0.04, 0.08, 0.12, 0.16}},
		{pooling.AdjustHolm, []float64{0.04, 0.06, 0.06, 0.06}},
		{pooling.AdjustHochberg, []float64{0.04, 0.04, 0.04, 0.04}},
		{pooling.AdjustBH, []float64{0.04, 0.04, 0.04, 0.04}},
		{pooling.AdjustBY, []float64{by, by, by, by}},
	}

	for _, tc := range tests {
		got, err := Adjust(p, tc.method)
		if err != nil {
			t.Fatalf("%s: %v", tc.method, err)
		}
		for i := range tc.want {
			if math.Abs(got[i]-tc.want[i]) > 1e-9 {
				t.Errorf("%s[%d] = %v, want %v", tc.method, i, got[i], tc.want[i])
			}
		}
	}
}

func TestAdjust_ClipsAtOne(t *testing.T) {
	got, err := Adjust([]float64{0.4, 0.5, 0.9}, pooling.AdjustBonferroni)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range got {
		if v > 1 {
			t.Errorf("adjusted[%d] = %v > 1", i, v)
		}
	}
}

func TestAdjust_DoesNotMutateInput(t *testing.T) {
	p := []float64{0.03, 0.01, 0.02}
	if _, err := Adjust(p, pooling.AdjustHolm); err != nil {
		t.Fatal(err)
	}
	if p[0] != 0.03 || p[1] != 0.01 || p[2] != 0.02 {
		t.Errorf("input mutated: %v", p)
	}
}

func TestAdjust_UnknownMethod(t *testing.T) {
	if _, err := Adjust([]float64{0.5}, "fisher"); err == nil {
		t.Fatal("expected error for unknown method")
	}
}
