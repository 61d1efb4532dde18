package diagnostics

// Thresholds for the advisory verdicts. Callers branch on the returned
// records, not on console output.
const (
	// AdequacyThreshold is the MSA value below which the data are
	// considered inappropriate for factor analysis.
	AdequacyThreshold = 0.5
	// SphericityAlpha is the p-value below which the correlation matrix
	// is considered sufficiently different from identity.
	SphericityAlpha = 0.001
)

// KMOResult is the Kaiser-Meyer-Olkin measure of sampling adequacy for a
// correlation matrix. Immutable once produced.
type KMOResult struct {
	// MSA is the overall measure of sampling adequacy in [0, 1].
	MSA float64
	// PerVariable holds the per-variable MSA, one entry per matrix column.
	PerVariable []float64
	// Variables names the columns; may be empty when the caller supplied
	// an unnamed matrix.
	Variables []string
}

// Adequate reports whether the overall MSA clears the adequacy threshold.
func (r KMOResult) Adequate() bool {
	return r.MSA >= AdequacyThreshold
}

// SphericityResult is Bartlett's test of sphericity for a correlation matrix.
type SphericityResult struct {
	ChiSquare float64
	DF        int
	PValue    float64
	// N is the number of observations the correlation matrix was computed
	// from, carried along for reporting.
	N int
}

// Sufficient reports whether the matrix shows enough correlation structure
// for factor analysis.
func (r SphericityResult) Sufficient() bool {
	return r.PValue < SphericityAlpha
}
