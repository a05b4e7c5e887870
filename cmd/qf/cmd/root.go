package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "qf",
	Short: "A quantitative trading backtesting and analytics toolkit",
	Long: `qf is a backtesting and analytics toolkit written in Go.

It provides tools for:
  - Position accounting with directional consistency and cost-basis tracking
  - Replaying quote datasets through a portfolio with pluggable strategies
  - Journaling fills, closed trades and valuations to CSV or SQLite
  - Ticker screening with an SQN-based objective score`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
