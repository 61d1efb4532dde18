package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"goparam/adapters/introspection"
	"goparam/adapters/tabular"
	"goparam/app"
	"goparam/domain/pooling"
	"goparam/internal/report"
)

func main() {
	// Optional .env for LOG_LEVEL and friends; absence is fine.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "goparam",
		Short: "Post-processing toolkit for regression model parameters",
	}

	rootCmd.AddCommand(
		newDiagnoseCmd(),
		newPoolCmd(),
		newRenameCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newDiagnoseCmd() *cobra.Command {
	var sheet string

	cmd := &cobra.Command{
		Use:   "diagnose [data-file]",
		Short: "Run KMO sampling-adequacy and Bartlett sphericity checks on a data file",
		Long: `Read a numeric data matrix (csv or xlsx, header row required), build its
pairwise-complete correlation matrix and run the factor-analysis suitability
checks.

Example: goparam diagnose survey.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, columns, err := tabular.NewReader(args[0]).WithSheet(sheet).ReadMatrix()
			if err != nil {
				return err
			}

			service := app.NewAnalysisService(report.NewConsoleReporter(), pooling.DefaultOptions())
			kmo, sphericity, err := service.Diagnose(columns, names)
			if err != nil {
				return err
			}

			fmt.Printf("\nMSA = %.3f, chi2(%d) = %.2f, p = %.4g\n",
				kmo.MSA, sphericity.DF, sphericity.ChiSquare, sphericity.PValue)
			return nil
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "Sheet1", "Excel sheet to read")
	return cmd
}

func newPoolCmd() *cobra.Command {
	var (
		sheet     string
		ci        float64
		adjust    string
		statistic string
		html      bool
	)

	cmd := &cobra.Command{
		Use:   "pool [estimates-file]",
		Short: "Pool per-imputation estimates with Rubin's rules",
		Long: `Read an estimate table (one row per parameter per imputation; parameter,
coefficient and se columns required) and pool it across imputations.

Example: goparam pool estimates.csv --ci 0.95 --adjust holm`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			estimates, err := tabular.NewReader(args[0]).WithSheet(sheet).ReadEstimates()
			if err != nil {
				return err
			}

			opts := pooling.Options{
				CI:            ci,
				Adjust:        pooling.AdjustMethod(adjust),
				StatisticName: statistic,
			}
			service := app.NewAnalysisService(nil, opts)
			pooled, err := service.PoolEstimates(cmd.Context(), estimates)
			if err != nil {
				return err
			}

			md := service.PoolingReport(pooled, nil)
			if html {
				os.Stdout.Write(service.HTMLReport(md))
				return nil
			}
			fmt.Print(md)
			return nil
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "Sheet1", "Excel sheet to read")
	cmd.Flags().Float64Var(&ci, "ci", 0.95, "confidence level")
	cmd.Flags().StringVar(&adjust, "adjust", "none", "p-value adjustment (none, holm, bonferroni, hochberg, BH, BY)")
	cmd.Flags().StringVar(&statistic, "statistic", "Statistic", "statistic column label (z, t, F)")
	cmd.Flags().BoolVar(&html, "html", false, "render the report as HTML")
	return cmd
}

func newRenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename [model-spec.json]",
		Short: "Prettify model parameter names from a term-structure description",
		Long: `Read a JSON description of a fitted model's term structure (parameters,
family, factor levels, interactions) and print the display name for every
parameter.

Example: goparam rename model.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := introspection.LoadModelSpec(args[0])
			if err != nil {
				return err
			}

			service := app.NewAnalysisService(nil, pooling.DefaultOptions())
			overlay := service.RenameParameters(spec.Build())
			for _, original := range overlay.Order {
				fmt.Printf("%-40s %s\n", original, overlay.Names[original])
			}
			return nil
		},
	}
	return cmd
}
