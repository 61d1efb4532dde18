// Package app wires the post-processing components behind one service:
// parameter renaming, factor-analysis suitability diagnostics and pooling of
// multiply-imputed estimates, plus report rendering.
package app

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/gomarkdown/markdown"

	"goparam/adapters/factor"
	"goparam/adapters/pool"
	"goparam/adapters/rename"
	"goparam/domain/core"
	"goparam/domain/diagnostics"
	"goparam/domain/pooling"
	"goparam/domain/terms"
	"goparam/internal"
	"goparam/internal/apperr"
	"goparam/ports"
)

// AnalysisService orchestrates the toolkit. All operations are synchronous
// computations over in-memory tables; the service holds no mutable state
// beyond its configuration.
type AnalysisService struct {
	logger   *internal.Logger
	reporter ports.VerdictReporterPort
	renamer  *rename.Renamer
	pooler   *pool.Pooler
}

// NewAnalysisService creates the service. The reporter may be nil to
// suppress console verdicts.
func NewAnalysisService(reporter ports.VerdictReporterPort, opts pooling.Options) *AnalysisService {
	return &AnalysisService{
		logger:   internal.NewDefaultLogger().Named("analysis"),
		reporter: reporter,
		renamer:  rename.NewRenamer(),
		pooler:   pool.New(opts),
	}
}

// Renamer exposes the renaming pipeline so callers can extend its family
// rewrite table.
func (s *AnalysisService) Renamer() *rename.Renamer {
	return s.renamer
}

// Diagnose computes the pairwise-complete correlation matrix of the data
// columns, then runs the KMO sampling-adequacy and Bartlett sphericity
// checks on it. Verdicts are reported to the console as advisory output;
// callers branch on the returned records.
func (s *AnalysisService) Diagnose(columns [][]float64, names []string) (diagnostics.KMOResult, diagnostics.SphericityResult, error) {
	r, err := factor.PairwiseCorrelation(columns)
	if err != nil {
		return diagnostics.KMOResult{}, diagnostics.SphericityResult{}, apperr.Wrap(err, "correlation matrix")
	}

	kmo, err := factor.KMO(r, names)
	if err != nil {
		return diagnostics.KMOResult{}, diagnostics.SphericityResult{}, apperr.Wrap(err, "KMO")
	}
	sphericity, err := factor.Sphericity(r, len(columns[0]))
	if err != nil {
		return diagnostics.KMOResult{}, diagnostics.SphericityResult{}, apperr.Wrap(err, "sphericity")
	}

	s.logger.Debug("diagnostics: MSA=%.3f chi2=%.2f p=%.4g", kmo.MSA, sphericity.ChiSquare, sphericity.PValue)
	if s.reporter != nil {
		s.reporter.ReportKMO(kmo)
		s.reporter.ReportSphericity(sphericity)
	}
	return kmo, sphericity, nil
}

// RenameParameters returns the display-name overlay for the model's
// parameters, keyed by its original raw term names.
func (s *AnalysisService) RenameParameters(model ports.ModelIntrospectorPort) *terms.RenameOverlay {
	overlay := s.renamer.Rename(model)
	s.logger.Debug("renamed %d parameters", overlay.Len())
	return overlay
}

// PoolEstimates combines per-imputation estimates with Rubin's rules.
func (s *AnalysisService) PoolEstimates(ctx context.Context, estimates []pooling.ImputationEstimate) ([]pooling.PooledEstimate, error) {
	pooled, err := s.pooler.Pool(ctx, estimates)
	if err != nil {
		return nil, apperr.Wrap(err, "pooling")
	}
	s.logger.Debug("pooled %d estimates into %d rows", len(estimates), len(pooled))
	return pooled, nil
}

// PoolingReport renders the pooled rows as a markdown table. The overlay is
// optional; when given, parameter names are replaced by their display names.
func (s *AnalysisService) PoolingReport(pooled []pooling.PooledEstimate, overlay *terms.RenameOverlay) string {
	opts := s.pooler.Options()
	ci := int(math.Round(opts.CI * 100))

	var b strings.Builder
	fmt.Fprintf(&b, "# Pooled parameters (analysis %s)\n\n", core.NewID())
	fmt.Fprintf(&b, "| Parameter | Coefficient | SE | %d%% CI | %s | df | p |\n", ci, opts.StatisticName)
	b.WriteString("|---|---|---|---|---|---|---|\n")
	for _, row := range pooled {
		name := row.Parameter
		if overlay != nil {
			name = overlay.DisplayName(name)
		}
		if row.Component != "" {
			name = row.Component + ": " + name
		}
		if row.Response != "" {
			name = row.Response + ": " + name
		}
		fmt.Fprintf(&b, "| %s | %.3f | %.3f | [%.3f, %.3f] | %.3f | %s | %s |\n",
			name, row.Coefficient, row.StandardError, row.CILow, row.CIHigh,
			row.Statistic, formatDF(row.DF), formatP(row.PValue))
	}
	return b.String()
}

// HTMLReport renders a markdown report as standalone HTML.
func (s *AnalysisService) HTMLReport(md string) []byte {
	return markdown.ToHTML([]byte(md), nil, nil)
}

func formatDF(df float64) string {
	if math.IsInf(df, 1) {
		return "Inf"
	}
	return fmt.Sprintf("%.1f", df)
}

func formatP(p float64) string {
	if p < 0.001 {
		return "< .001"
	}
	return fmt.Sprintf("%.3f", p)
}
