package backtest

import (
	"fmt"
	"io"
	"time"
)

// PrintResult writes a plain-text summary of a backtest run.
func PrintResult(w io.Writer, r Result) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Backtest Result")
	fmt.Fprintln(w, "==================================================")

	fmt.Fprintln(w, "Period")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Start:          %s\n", r.Start.Format(time.RFC3339))
	fmt.Fprintf(w, "End:            %s\n", r.End.Format(time.RFC3339))
	fmt.Fprintf(w, "Quotes:         %d\n", r.Quotes)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Trade Statistics")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Closed Trades:  %d\n", r.Trades)
	fmt.Fprintf(w, "Wins:           %d\n", r.Wins)
	fmt.Fprintf(w, "Losses:         %d\n", r.Losses)
	if r.Trades > 0 {
		fmt.Fprintf(w, "Win Rate:       %.2f%%\n", 100*float64(r.Wins)/float64(r.Trades))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Portfolio")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Cash:           %.2f\n", r.Cash)
	fmt.Fprintf(w, "Net Liq:        %.2f\n", r.NetLiquidation)
	fmt.Fprintf(w, "Realized P/L:   %.2f\n", r.RealizedPnl)
	fmt.Fprintf(w, "Unrealized P/L: %.2f\n", r.UnrealizedPnl)

	fmt.Fprintln(w)
}
