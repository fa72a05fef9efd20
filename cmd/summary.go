package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quantara/salesdash/diagnostics"
	"github.com/quantara/salesdash/regression"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the regression summary and assumption tests to stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		fm, err := regression.FitDataset()
		if err != nil {
			return err
		}

		if err := fm.TablePrint(os.Stdout, "", "  "); err != nil {
			return err
		}

		report, err := diagnostics.Run(fm, cfg.Alpha)
		if err != nil {
			return err
		}

		fmt.Println("\nAssumptions:")
		for _, res := range []diagnostics.Result{report.DurbinWatson, report.BreuschPagan, report.Lilliefors} {
			fmt.Printf("  %s: statistic=%.4f p=%.4f (%s)\n", res.Name, res.Statistic, res.PValue, res.Verdict)
		}
		fmt.Println("  VIF:")
		for _, v := range report.VIF {
			fmt.Printf("    %s: %.2f (%s)\n", v.Name, v.VIF, v.Verdict)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
