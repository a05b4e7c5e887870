package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/natwijaya19/qf-lib/analysis"
	"github.com/natwijaya19/qf-lib/config"
	"github.com/natwijaya19/qf-lib/journal"
)

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Screen tickers by objective score over journaled trades",
	Long: `Evaluate every ticker found in the journal's closed trades against the
configured thresholds and print the selected/rejected tables.

Examples:
  qf screen --db qf.sqlite
  qf screen --db qf.sqlite --from 2024-01-01 --to 2024-12-31`,
	RunE: runScreen,
}

var (
	screenConfigPath string
	screenDBPath     string
	screenFrom       string
	screenTo         string
)

func init() {
	rootCmd.AddCommand(screenCmd)

	screenCmd.Flags().StringVarP(&screenConfigPath, "config", "c", "", "path to config file (YAML or JSON)")
	screenCmd.Flags().StringVarP(&screenDBPath, "db", "d", "./qf.sqlite", "path to SQLite journal DB")
	screenCmd.Flags().StringVar(&screenFrom, "from", "", "period start (YYYY-MM-DD, default: first trade)")
	screenCmd.Flags().StringVar(&screenTo, "to", "", "period end (YYYY-MM-DD, default: last trade)")
}

func runScreen(cmd *cobra.Command, args []string) error {
	thresholds := analysis.DefaultThresholds()
	if screenConfigPath != "" {
		cfg, err := config.LoadFromFile(screenConfigPath)
		if err != nil {
			return err
		}
		thresholds = analysis.Thresholds{
			MinScore:         cfg.Screening.MinScore,
			MinTradesPerYear: cfg.Screening.MinTradesPerYear,
		}
	}

	from, to, err := screenPeriod()
	if err != nil {
		return err
	}

	j, err := journal.NewSQLite(screenDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	recs, err := j.ListTradesClosedBetween(from, to)
	if err != nil {
		return fmt.Errorf("query trades: %w", err)
	}
	if len(recs) == 0 {
		return fmt.Errorf("no closed trades in journal between %s and %s",
			from.Format("2006-01-02"), to.Format("2006-01-02"))
	}

	trades := make([]analysis.Trade, len(recs))
	start, end := recs[0].OpenTime, recs[0].CloseTime
	for i, rec := range recs {
		trades[i] = analysis.Trade{
			Ticker: rec.Instrument,
			Return: rec.Return,
			Open:   rec.OpenTime,
			Close:  rec.CloseTime,
		}
		if rec.OpenTime.Before(start) {
			start = rec.OpenTime
		}
		if rec.CloseTime.After(end) {
			end = rec.CloseTime
		}
	}

	s := analysis.Screening{Start: start, End: end, Thresholds: thresholds}
	analysis.WriteReport(os.Stdout, s.Evaluate(trades))
	return nil
}

// screenPeriod resolves the query window. Defaults cover all journaled
// history; the screening period itself still comes from the trades found.
func screenPeriod() (time.Time, time.Time, error) {
	from := time.Time{}
	to := time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC)

	if screenFrom != "" {
		t, err := time.ParseInLocation("2006-01-02", screenFrom, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("from: %w", err)
		}
		from = t
	}
	if screenTo != "" {
		t, err := time.ParseInLocation("2006-01-02", screenTo, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("to: %w", err)
		}
		to = t.Add(24 * time.Hour)
	}
	return from, to, nil
}
