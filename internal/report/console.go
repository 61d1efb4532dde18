// Package report renders advisory console output for diagnostic results.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"goparam/domain/diagnostics"
	"goparam/ports"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	dimStyle  = lipgloss.NewStyle().Faint(true)
)

// ConsoleReporter prints colored pass/fail messages for diagnostic results.
// Output is informational only; callers branch on the returned records.
type ConsoleReporter struct {
	out io.Writer
}

var _ ports.VerdictReporterPort = (*ConsoleReporter)(nil)

// NewConsoleReporter writes to stdout.
func NewConsoleReporter() *ConsoleReporter {
	return &ConsoleReporter{out: os.Stdout}
}

// NewConsoleReporterTo writes to the given writer.
func NewConsoleReporterTo(out io.Writer) *ConsoleReporter {
	return &ConsoleReporter{out: out}
}

func (r *ConsoleReporter) ReportKMO(res diagnostics.KMOResult) {
	if res.Adequate() {
		fmt.Fprintf(r.out, "%s The overall measure of sampling adequacy is %.2f: the data appear appropriate for factor analysis.\n",
			okStyle.Render("OK"), res.MSA)
	} else {
		fmt.Fprintf(r.out, "%s The overall measure of sampling adequacy is %.2f: the data are likely inappropriate for factor analysis.\n",
			warnStyle.Render("Warning:"), res.MSA)
	}
	for i, msa := range res.PerVariable {
		name := fmt.Sprintf("variable %d", i+1)
		if i < len(res.Variables) {
			name = res.Variables[i]
		}
		fmt.Fprintln(r.out, dimStyle.Render(fmt.Sprintf("  MSA %s = %.2f", name, msa)))
	}
}

func (r *ConsoleReporter) ReportSphericity(res diagnostics.SphericityResult) {
	if res.Sufficient() {
		fmt.Fprintf(r.out, "%s There is sufficient significant correlation in the data for factor analysis (chi2(%d) = %.2f, %s).\n",
			okStyle.Render("OK"), res.DF, res.ChiSquare, formatP(res.PValue))
	} else {
		fmt.Fprintf(r.out, "%s There is insufficient significant correlation in the data for factor analysis (chi2(%d) = %.2f, %s).\n",
			warnStyle.Render("Warning:"), res.DF, res.ChiSquare, formatP(res.PValue))
	}
}

func formatP(p float64) string {
	if p < 0.001 {
		return "p < .001"
	}
	return fmt.Sprintf("p = %.3f", p)
}
