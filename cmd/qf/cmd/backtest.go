package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/natwijaya19/qf-lib/backtest"
	"github.com/natwijaya19/qf-lib/config"
	"github.com/natwijaya19/qf-lib/journal"
	"github.com/natwijaya19/qf-lib/portfolio"
)

var backtestCmd = &cobra.Command{
	Use:   "backtest",
	Short: "Replay a quote dataset through a portfolio",
	Long: `Replay a CSV quote dataset (time,instrument,bid,ask) through a portfolio
using the selected strategy, journaling fills, closed trades and valuations.

Examples:
  qf backtest --config qf.yaml
  qf backtest --config qf.yaml --strategy open-once --instrument AAPL --quantity 100`,
	RunE: runBacktest,
}

var (
	backtestConfigPath string
	backtestDataset    string
	backtestStrategy   string
	backtestInstrument string
	backtestQuantity   float64
)

func init() {
	rootCmd.AddCommand(backtestCmd)

	backtestCmd.Flags().StringVarP(&backtestConfigPath, "config", "c", "", "path to config file (YAML or JSON)")
	backtestCmd.Flags().StringVar(&backtestDataset, "dataset", "", "quote CSV path (overrides config)")
	backtestCmd.Flags().StringVar(&backtestStrategy, "strategy", "noop", "strategy: noop or open-once")
	backtestCmd.Flags().StringVar(&backtestInstrument, "instrument", "", "instrument for open-once")
	backtestCmd.Flags().Float64Var(&backtestQuantity, "quantity", 0, "signed quantity for open-once")
}

func runBacktest(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if backtestConfigPath != "" {
		loaded, err := config.LoadFromFile(backtestConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	dataset := cfg.Backtest.Dataset
	if backtestDataset != "" {
		dataset = backtestDataset
	}

	strat, err := strategyByName(backtestStrategy)
	if err != nil {
		return err
	}

	j, err := openJournal(cfg.Journal)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer j.Close()

	feed, err := backtest.NewCSVQuoteFeed(dataset, time.Time{}, time.Time{})
	if err != nil {
		return fmt.Errorf("open dataset: %w", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	pf := portfolio.NewPortfolio(cfg.Account.Currency, cfg.Account.Cash)
	pf.SetJournal(j)

	runner := &backtest.Runner{
		Portfolio: pf,
		Feed:      feed,
		Strategy:  strat,
		Options: backtest.RunnerOptions{
			CloseEnd:      cfg.Backtest.CloseEnd,
			SnapshotEvery: cfg.Backtest.SnapshotEvery,
		},
		Logger: logger,
	}

	res, err := runner.Run(context.Background())
	if err != nil {
		return fmt.Errorf("run backtest: %w", err)
	}

	backtest.PrintResult(os.Stdout, res)
	return nil
}

func strategyByName(name string) (backtest.Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "noop", "none", "":
		return backtest.Noop{}, nil

	case "open-once":
		if backtestInstrument == "" {
			return nil, fmt.Errorf("open-once: --instrument is required")
		}
		if backtestQuantity == 0 {
			return nil, fmt.Errorf("open-once: --quantity must be non-zero")
		}
		return &backtest.OpenOnce{
			Contract: portfolio.Contract{Symbol: backtestInstrument},
			Quantity: backtestQuantity,
		}, nil

	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}

func openJournal(cfg config.JournalConfig) (journal.Journal, error) {
	switch cfg.Type {
	case "csv":
		return journal.NewCSV(cfg.FillsFile, cfg.TradesFile, cfg.ValuationsFile)
	case "sqlite":
		return journal.NewSQLite(cfg.DBPath)
	default:
		return nil, fmt.Errorf("unknown journal type %q", cfg.Type)
	}
}
