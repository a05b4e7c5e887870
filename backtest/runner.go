package backtest

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/natwijaya19/qf-lib/market"
	"github.com/natwijaya19/qf-lib/portfolio"
)

// RunnerOptions controls how the backtest runner behaves.
type RunnerOptions struct {
	// If true, flatten all open positions at the end of the dataset using
	// the last stored quotes.
	CloseEnd bool

	// Snapshot the portfolio valuation to the journal every SnapshotEvery
	// quotes. Zero disables periodic snapshots; a final snapshot is always
	// taken when the portfolio has a journal attached.
	SnapshotEvery int
}

// Result is a lightweight summary of a backtest run.
type Result struct {
	Cash           float64
	NetLiquidation float64
	RealizedPnl    float64
	UnrealizedPnl  float64

	Quotes int
	Trades int
	Wins   int
	Losses int

	Start time.Time
	End   time.Time
}

// Runner drives a portfolio forward using a feed and strategy.
type Runner struct {
	Portfolio *portfolio.Portfolio
	Feed      QuoteFeed
	Strategy  Strategy
	Options   RunnerOptions
	Logger    *zap.Logger
}

// Run executes the backtest loop:
//  1. read next quote
//  2. store it and mark the portfolio
//  3. strategy.OnQuote(ctx, portfolio, quote)
//
// Wins and losses are counted over positions fully closed during the run.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	if r.Portfolio == nil {
		return Result{}, fmt.Errorf("backtest: Portfolio is required")
	}
	if r.Feed == nil {
		return Result{}, fmt.Errorf("backtest: Feed is required")
	}
	if r.Strategy == nil {
		return Result{}, fmt.Errorf("backtest: Strategy is required")
	}
	defer r.Feed.Close()

	log := r.Logger
	if log == nil {
		log = zap.NewNop()
	}

	quotes := market.NewQuoteStore()
	var start, end time.Time
	n := 0

	for {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		q, ok, err := r.Feed.Next()
		if err != nil {
			return Result{}, err
		}
		if !ok {
			break
		}
		n++

		if start.IsZero() || q.Time.Before(start) {
			start = q.Time
		}
		if end.IsZero() || q.Time.After(end) {
			end = q.Time
		}

		quotes.Set(q)
		if err := r.Portfolio.UpdateQuote(q); err != nil {
			return Result{}, err
		}
		if err := r.Strategy.OnQuote(ctx, r.Portfolio, q); err != nil {
			return Result{}, err
		}

		if r.Options.SnapshotEvery > 0 && n%r.Options.SnapshotEvery == 0 {
			if err := r.Portfolio.Snapshot(q.Time); err != nil {
				return Result{}, err
			}
		}
	}

	if r.Options.CloseEnd && len(r.Portfolio.OpenPositions()) > 0 {
		log.Info("closing open positions at end of dataset",
			zap.Int("open", len(r.Portfolio.OpenPositions())))
		if err := r.Portfolio.CloseAll(quotes, end); err != nil {
			return Result{}, err
		}
	}

	if err := r.Portfolio.Snapshot(end); err != nil {
		return Result{}, err
	}

	wins, losses := 0, 0
	closed := r.Portfolio.ClosedPositions()
	for _, pos := range closed {
		switch pnl := pos.RealizedPnl(); {
		case pnl > 0:
			wins++
		case pnl < 0:
			losses++
		}
	}

	res := Result{
		Cash:           r.Portfolio.Cash(),
		NetLiquidation: r.Portfolio.NetLiquidation(),
		RealizedPnl:    r.Portfolio.TotalRealizedPnl(),
		UnrealizedPnl:  r.Portfolio.TotalUnrealizedPnl(),
		Quotes:         n,
		Trades:         len(closed),
		Wins:           wins,
		Losses:         losses,
		Start:          start,
		End:            end,
	}

	log.Info("backtest finished",
		zap.Int("quotes", res.Quotes),
		zap.Int("trades", res.Trades),
		zap.Float64("realized_pnl", res.RealizedPnl),
		zap.Float64("net_liquidation", res.NetLiquidation),
	)

	return res, nil
}
