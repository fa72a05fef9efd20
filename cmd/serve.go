package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quantara/salesdash/server"
)

var (
	flagAddr  string
	flagAlpha float64
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("addr") {
			cfg.Addr = flagAddr
		}
		if cmd.Flags().Changed("alpha") {
			cfg.Alpha = flagAlpha
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		fmt.Printf("serving sales dashboard on %s\n", cfg.Addr)
		return server.New(cfg).Run()
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", ":8080", "listen address (overrides config)")
	serveCmd.Flags().Float64Var(&flagAlpha, "alpha", 0.05, "significance level for diagnostic verdicts (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
