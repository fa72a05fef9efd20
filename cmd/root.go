package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "github.com/quantara/salesdash/config"
)

var (
	cfgFile string

	cfg *cfgpkg.Config
)

var rootCmd = &cobra.Command{
	Use:   "salesdash",
	Short: "salesdash: OLS regression dashboard over a fixed monthly sales dataset",
	Long: `salesdash serves an interactive dashboard that fits an ordinary least
squares regression of monthly sales on five predictors, renders descriptive
statistics and regression diagnostics, and predicts sales for hypothetical
predictor values.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML, optional)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		cfg = cfgpkg.Default()
		return
	}
	cfg = c
}
