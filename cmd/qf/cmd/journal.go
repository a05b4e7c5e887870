package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/natwijaya19/qf-lib/journal"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Query the SQLite journal",
	Long: `Query fill, trade and valuation records from the SQLite journal.

Examples:
  qf journal trade <trade-id>
  qf journal trades 2024-01-15
  qf journal fills 2024-01-15`,
}

var journalTradeCmd = &cobra.Command{
	Use:   "trade <trade-id>",
	Short: "Get details of a specific closed trade",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalTrade,
}

var journalTradesCmd = &cobra.Command{
	Use:   "trades <YYYY-MM-DD>",
	Short: "List trades closed on a specific day",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalTrades,
}

var journalFillsCmd = &cobra.Command{
	Use:   "fills <YYYY-MM-DD>",
	Short: "List fills recorded on a specific day",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalFills,
}

var journalDBPath string

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalTradeCmd)
	journalCmd.AddCommand(journalTradesCmd)
	journalCmd.AddCommand(journalFillsCmd)

	journalCmd.PersistentFlags().StringVarP(&journalDBPath, "db", "d", "./qf.sqlite", "path to SQLite journal DB")
}

func runJournalTrade(cmd *cobra.Command, args []string) error {
	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	rec, err := j.GetTrade(args[0])
	if err != nil {
		return fmt.Errorf("get trade: %w", err)
	}

	printTrade(rec)
	return nil
}

func runJournalTrades(cmd *cobra.Command, args []string) error {
	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	start, end, err := dayBounds(args[0])
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}

	recs, err := j.ListTradesClosedBetween(start, end)
	if err != nil {
		return fmt.Errorf("query trades: %w", err)
	}

	for _, rec := range recs {
		printTrade(rec)
	}
	fmt.Printf("%d trades\n", len(recs))
	return nil
}

func runJournalFills(cmd *cobra.Command, args []string) error {
	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	start, end, err := dayBounds(args[0])
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}

	recs, err := j.ListFillsBetween(start, end)
	if err != nil {
		return fmt.Errorf("query fills: %w", err)
	}

	for _, rec := range recs {
		fmt.Printf("%s  %-10s %+10.2f @ %.4f  commission %.2f  cash flow %+.2f\n",
			rec.Time.Format(time.RFC3339), rec.Instrument, rec.Quantity, rec.Price, rec.Commission, rec.CashFlow)
	}
	fmt.Printf("%d fills\n", len(recs))
	return nil
}

func printTrade(rec journal.TradeRecord) {
	fmt.Printf("%s  %-10s %-5s qty %.2f  avg %.4f  pnl %+.2f  return %+.4f  %s -> %s\n",
		rec.TradeID, rec.Instrument, rec.Direction, rec.Quantity, rec.AvgEntryPrice,
		rec.RealizedPnl, rec.Return,
		rec.OpenTime.Format(time.RFC3339), rec.CloseTime.Format(time.RFC3339))
}

func dayBounds(day string) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", day, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
	end := start.Add(24 * time.Hour)
	return start, end, nil
}
