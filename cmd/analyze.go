package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tollscope/tollscope/internal/analytics"
	"github.com/tollscope/tollscope/internal/plaza"
	"github.com/tollscope/tollscope/internal/report"
	"github.com/tollscope/tollscope/internal/toll"
)

var (
	analyzePeriod string
	analyzeAnchor string
	analyzeStart  string
	analyzeEnd    string
	analyzeTags   string
	analyzeTop    int
	analyzeJSON   bool

	fuelMilesPerTrip float64
	fuelMPG          float64
	fuelGasPrice     float64
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <statement-file>",
	Short: "Analyze one toll statement export and print a report",
	Long: `The analyze command normalizes a single statement export (CSV or Excel)
and prints the derived analytics for the requested period.

Periods:
  all      every transaction (default)
  month    the calendar month containing --anchor (or today)
  quarter  the calendar quarter containing --anchor (or today)
  year     the calendar year containing --anchor (or today)
  custom   the inclusive day range [--start, --end]

Rows with a non-positive amount (refunds/credits) are excluded from all
analytics; rows whose date cannot be parsed appear only in unbounded views.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze(args[0])
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzePeriod, "period", "all", "analysis period: all, month, quarter, year or custom")
	analyzeCmd.Flags().StringVar(&analyzeAnchor, "anchor", "", "anchor date (YYYY-MM-DD) selecting the month/quarter/year")
	analyzeCmd.Flags().StringVar(&analyzeStart, "start", "", "custom period start date (YYYY-MM-DD)")
	analyzeCmd.Flags().StringVar(&analyzeEnd, "end", "", "custom period end date (YYYY-MM-DD)")
	analyzeCmd.Flags().StringVar(&analyzeTags, "tags", "", "vehicle tag query: comma/space separated transponder substrings")
	analyzeCmd.Flags().IntVar(&analyzeTop, "top", 0, "size of the top-locations ranking (default from config)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "emit the report as JSON instead of text")

	analyzeCmd.Flags().Float64Var(&fuelMilesPerTrip, "avg-miles-per-trip", 0, "your average miles per trip, enables the fuel estimate")
	analyzeCmd.Flags().Float64Var(&fuelMPG, "mpg", 0, "your vehicle's miles per gallon")
	analyzeCmd.Flags().Float64Var(&fuelGasPrice, "gas-price", 0, "gas price per gallon in dollars")
}

func runAnalyze(path string) error {
	started := time.Now()

	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	period, err := analytics.ParsePeriod(analyzePeriod, analyzeAnchor, analyzeStart, analyzeEnd)
	if err != nil {
		return err
	}

	plazas, err := plaza.Load(cfg.PlazaNamesFile)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read statement: %w", err)
	}

	records, err := toll.Normalize(data)
	if err != nil {
		return fmt.Errorf("normalize %s: %w", path, err)
	}
	log.Debug().
		Str("file", path).
		Str("format", string(toll.DetectFormat(data))).
		Int("records", len(records)).
		Msg("statement normalized")

	opts := report.Options{
		Period:   period,
		Tags:     analytics.ParseTags(analyzeTags),
		TopLimit: cfg.TopLocationsLimit,
	}
	if analyzeTop > 0 {
		opts.TopLimit = analyzeTop
	}
	if fuelMilesPerTrip > 0 {
		opts.Fuel = &report.FuelInputs{
			AvgMilesPerTrip: fuelMilesPerTrip,
			MPG:             fuelMPG,
			GasPricePerGal:  fuelGasPrice,
		}
	}

	rep := report.Build(records, opts, plazas)

	if analyzeJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
	} else if err := rep.WriteText(os.Stdout); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	log.Debug().Dur("elapsed", time.Since(started)).Msg("analysis complete")
	return nil
}
