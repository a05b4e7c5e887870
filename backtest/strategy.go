package backtest

import (
	"context"
	"fmt"

	"github.com/natwijaya19/qf-lib/market"
	"github.com/natwijaya19/qf-lib/portfolio"
)

// Strategy is the minimal interface a backtest strategy must implement.
// It is called once per quote, after the portfolio has been marked.
type Strategy interface {
	OnQuote(ctx context.Context, pf *portfolio.Portfolio, q market.Quote) error
}

// Noop does nothing; useful for replaying a dataset through valuation only.
type Noop struct{}

func (Noop) OnQuote(ctx context.Context, pf *portfolio.Portfolio, q market.Quote) error {
	return nil
}

// OpenOnce buys (or shorts, for negative quantity) the configured contract
// the first time it sees a quote for it. It's meant as a wiring test.
type OpenOnce struct {
	Contract   portfolio.Contract
	Quantity   float64
	Commission float64

	opened bool
}

func (s *OpenOnce) OnQuote(ctx context.Context, pf *portfolio.Portfolio, q market.Quote) error {
	if s.opened {
		return nil
	}
	if q.Instrument != s.Contract.Symbol {
		return nil
	}
	if s.Quantity == 0 {
		return fmt.Errorf("open-once: quantity must be non-zero")
	}

	price := q.Ask
	if s.Quantity < 0 {
		price = q.Bid
	}

	err := pf.Transact(portfolio.Transaction{
		Contract:   s.Contract,
		Quantity:   s.Quantity,
		Price:      price,
		Commission: s.Commission,
		Time:       q.Time,
	})
	if err != nil {
		return err
	}
	s.opened = true
	return nil
}
