package ports

import (
	"goparam/domain/diagnostics"
)

// VerdictReporterPort renders human-readable pass/fail messages for
// diagnostic results. Reporting is advisory only; callers must branch on the
// returned records, never on console output.
type VerdictReporterPort interface {
	ReportKMO(res diagnostics.KMOResult)
	ReportSphericity(res diagnostics.SphericityResult)
}
