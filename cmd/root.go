// Package cmd defines the tollscope CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tollscope/tollscope/internal/config"
	"github.com/tollscope/tollscope/internal/logger"
)

// cfgFile is the path to the configuration file, overridable with --config.
var cfgFile string

// verbose forces debug logging regardless of the configured level.
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "tollscope",
	Short: "Analyze highway-toll statement exports",
	Long: `tollscope ingests a toll operator's statement export (CSV or Excel),
normalizes its inconsistently formatted rows into canonical transaction
records, and derives spending and travel analytics: daily trend, per-vehicle
breakdown, top toll locations, inferred journeys and weekly travel rates.

Example usage:
  tollscope analyze statement.csv
  tollscope analyze statement.xlsx --period month --anchor 2024-01-15
  tollscope analyze statement.csv --tags "e-zpass,1541" --json
  tollscope serve --addr :8085`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "tollscope.yaml", "path to the configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// loadConfig resolves configuration and the logger for a command run.
func loadConfig() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	level := logger.ParseLevel(cfg.LogLevel)
	if verbose {
		level = zerolog.DebugLevel
	}
	return cfg, logger.New(level), nil
}
