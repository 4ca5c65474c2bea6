package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "meanrev",
	Short: "Replay historical ticks against an RSI mean-reversion rule",
	Long: `Meanrev is an offline research tool for validating a mean-reversion
trading rule against historical tick data before live use.

It provides tools for:
  - Replaying a tick CSV through the RSI(30/70) rule deterministically
  - Generating synthetic placeholder data for quick experiments
  - Journaling trade events to CSV or SQLite
  - Reporting final balance, trade count and win rate as text or JSON`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
