package backtest

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natwijaya19/qf-lib/market"
	"github.com/natwijaya19/qf-lib/portfolio"
)

// sliceFeed replays a fixed set of quotes.
type sliceFeed struct {
	quotes []market.Quote
	i      int
}

func (f *sliceFeed) Next() (market.Quote, bool, error) {
	if f.i >= len(f.quotes) {
		return market.Quote{}, false, nil
	}
	q := f.quotes[f.i]
	f.i++
	return q, true, nil
}

func (f *sliceFeed) Close() error { return nil }

func quotesAt(instrument string, start time.Time, bids ...float64) []market.Quote {
	out := make([]market.Quote, len(bids))
	for i, b := range bids {
		out[i] = market.Quote{
			Instrument: instrument,
			Bid:        b,
			Ask:        b + 0.2,
			Time:       start.Add(time.Duration(i) * time.Minute),
		}
	}
	return out
}

func TestRunnerRequiresWiring(t *testing.T) {
	t.Parallel()

	_, err := (&Runner{}).Run(context.Background())
	assert.Error(t, err)

	_, err = (&Runner{Portfolio: portfolio.NewPortfolio("USD", 1000)}).Run(context.Background())
	assert.Error(t, err)
}

func TestRunnerOpenOnceCloseEnd(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	aapl := portfolio.Contract{Symbol: "AAPL", SecurityType: "STK", Exchange: "NASDAQ"}

	pf := portfolio.NewPortfolio("USD", 10000)
	r := &Runner{
		Portfolio: pf,
		Feed:      &sliceFeed{quotes: quotesAt("AAPL", start, 100, 102, 104)},
		Strategy:  &OpenOnce{Contract: aapl, Quantity: 10},
		Options:   RunnerOptions{CloseEnd: true},
	}

	res, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, res.Quotes)
	assert.Equal(t, 1, res.Trades)
	assert.Equal(t, 1, res.Wins)
	assert.Equal(t, 0, res.Losses)

	// Bought 10 at the first ask (100.2), flattened at the last bid (104).
	assert.InDelta(t, 38.0, res.RealizedPnl, 1e-9)
	assert.InDelta(t, 10038.0, res.Cash, 1e-9)
	assert.InDelta(t, res.Cash, res.NetLiquidation, 1e-9)
	assert.Empty(t, pf.OpenPositions())

	assert.Equal(t, start, res.Start)
	assert.Equal(t, start.Add(2*time.Minute), res.End)
}

func TestRunnerShortLosingTrade(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	aapl := portfolio.Contract{Symbol: "AAPL", SecurityType: "STK", Exchange: "NASDAQ"}

	pf := portfolio.NewPortfolio("USD", 10000)
	r := &Runner{
		Portfolio: pf,
		Feed:      &sliceFeed{quotes: quotesAt("AAPL", start, 100, 103, 106)},
		Strategy:  &OpenOnce{Contract: aapl, Quantity: -10},
		Options:   RunnerOptions{CloseEnd: true},
	}

	res, err := r.Run(context.Background())
	require.NoError(t, err)

	// Shorted 10 at the first bid (100), covered at the last ask (106.2).
	assert.Equal(t, 1, res.Trades)
	assert.Equal(t, 1, res.Losses)
	assert.InDelta(t, -62.0, res.RealizedPnl, 1e-9)
}

func TestRunnerNoopLeavesPortfolioUntouched(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	pf := portfolio.NewPortfolio("USD", 5000)

	res, err := (&Runner{
		Portfolio: pf,
		Feed:      &sliceFeed{quotes: quotesAt("AAPL", start, 100, 101)},
		Strategy:  Noop{},
	}).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, res.Quotes)
	assert.Zero(t, res.Trades)
	assert.InDelta(t, 5000.0, res.Cash, 1e-9)
}

func TestRunnerContextCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	_, err := (&Runner{
		Portfolio: portfolio.NewPortfolio("USD", 1000),
		Feed:      &sliceFeed{quotes: quotesAt("AAPL", start, 100)},
		Strategy:  Noop{},
	}).Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestPrintResult(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	PrintResult(&buf, Result{
		Cash:           10038,
		NetLiquidation: 10038,
		RealizedPnl:    38,
		Quotes:         3,
		Trades:         1,
		Wins:           1,
		Start:          time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		End:            time.Date(2024, 3, 1, 10, 2, 0, 0, time.UTC),
	})

	out := buf.String()
	assert.Contains(t, out, "Backtest Result")
	assert.Contains(t, out, "Win Rate:       100.00%")
	assert.Contains(t, out, "Realized P/L:   38.00")
}
