package portfolio

import (
	"fmt"
	"math"
	"time"

	"github.com/natwijaya19/qf-lib/internal/id"
	"github.com/natwijaya19/qf-lib/journal"
	"github.com/natwijaya19/qf-lib/market"
)

// Portfolio is the sequential driver that owns position ledgers: it routes
// executions to the right per-contract position, tracks the cash impact of
// every fill, and aggregates valuation across open positions. Like the
// ledgers it owns, it expects a single processing loop and holds no locks.
type Portfolio struct {
	currency string
	cash     float64
	open     map[Contract]*Position
	closed   []*Position
	journal  journal.Journal
}

// NewPortfolio returns a portfolio holding cash in the given account currency.
func NewPortfolio(currency string, cash float64) *Portfolio {
	return &Portfolio{
		currency: currency,
		cash:     cash,
		open:     make(map[Contract]*Position),
	}
}

// SetJournal attaches a journal; every subsequent fill, closed trade and
// valuation snapshot is recorded to it. Optional.
func (pf *Portfolio) SetJournal(j journal.Journal) {
	pf.journal = j
}

func (pf *Portfolio) Currency() string { return pf.currency }
func (pf *Portfolio) Cash() float64    { return pf.cash }

// Position returns the open position for contract, if any.
func (pf *Portfolio) Position(c Contract) (*Position, bool) {
	p, ok := pf.open[c]
	return p, ok
}

// OpenPositions returns the currently open positions.
func (pf *Portfolio) OpenPositions() []*Position {
	out := make([]*Position, 0, len(pf.open))
	for _, p := range pf.open {
		out = append(out, p)
	}
	return out
}

// ClosedPositions returns positions that have gone back to flat, oldest first.
func (pf *Portfolio) ClosedPositions() []*Position {
	out := make([]*Position, len(pf.closed))
	copy(out, pf.closed)
	return out
}

// Transact applies an execution to the position for its contract, opening a
// fresh ledger when none is open, and adjusts cash by the fill's cash flow.
// A fill that brings the position back to flat retires the ledger to the
// closed list and journals the completed round trip.
func (pf *Portfolio) Transact(tx Transaction) error {
	if tx.ID == "" {
		tx.ID = id.New()
	}

	pos, ok := pf.open[tx.Contract]
	if !ok {
		pos = NewPosition(tx.Contract)
	}

	flow, err := pos.Transact(tx)
	if err != nil {
		return fmt.Errorf("portfolio transact: %w", err)
	}

	if !ok {
		pf.open[tx.Contract] = pos
	}
	pf.cash -= flow

	if pf.journal != nil {
		if err := pf.journal.RecordFill(journal.FillRecord{
			FillID:     tx.ID,
			Instrument: tx.Contract.Symbol,
			Quantity:   tx.Quantity,
			Price:      tx.Price,
			Commission: tx.Commission,
			CashFlow:   flow,
			Time:       tx.Time,
		}); err != nil {
			return fmt.Errorf("portfolio transact: record fill: %w", err)
		}
	}

	if pos.IsClosed() {
		delete(pf.open, tx.Contract)
		pf.closed = append(pf.closed, pos)

		if pf.journal != nil {
			if err := pf.journal.RecordTrade(closedTradeRecord(pos)); err != nil {
				return fmt.Errorf("portfolio transact: record trade: %w", err)
			}
		}
	}

	return nil
}

// UpdateQuote marks the open position for the quoted instrument, if any.
func (pf *Portfolio) UpdateQuote(q market.Quote) error {
	for c, pos := range pf.open {
		if c.Symbol != q.Instrument {
			continue
		}
		if err := pos.UpdatePrice(q.Bid, q.Ask); err != nil {
			return fmt.Errorf("portfolio update quote: %w", err)
		}
	}
	return nil
}

// UpdatePrices marks every open position that has a quote in the batch.
func (pf *Portfolio) UpdatePrices(quotes []market.Quote) error {
	for _, q := range quotes {
		if err := pf.UpdateQuote(q); err != nil {
			return err
		}
	}
	return nil
}

// CloseAll flattens every open position at the latest stored quote: longs
// sell at bid, shorts cover at ask. Commission-free, as there is no broker
// in the loop.
func (pf *Portfolio) CloseAll(quotes *market.QuoteStore, at time.Time) error {
	// Snapshot first: Transact mutates the open map.
	open := pf.OpenPositions()

	for _, pos := range open {
		q, err := quotes.Get(pos.Contract().Symbol)
		if err != nil {
			return fmt.Errorf("close all %s: %w", pos.Contract(), err)
		}

		price := q.Bid
		if pos.Direction() == Short {
			price = q.Ask
		}

		tx := Transaction{
			ID:       id.New(),
			Contract: pos.Contract(),
			Quantity: -pos.Quantity(),
			Price:    price,
			Time:     at,
		}
		if err := pf.Transact(tx); err != nil {
			return err
		}
	}
	return nil
}

// NetLiquidation is cash plus the market value of all open positions.
func (pf *Portfolio) NetLiquidation() float64 {
	total := pf.cash
	for _, p := range pf.open {
		total += p.MarketValue()
	}
	return total
}

// GrossExposure is the sum of absolute open market values.
func (pf *Portfolio) GrossExposure() float64 {
	var total float64
	for _, p := range pf.open {
		total += math.Abs(p.MarketValue())
	}
	return total
}

// TotalUnrealizedPnl sums paper P/L over open positions.
func (pf *Portfolio) TotalUnrealizedPnl() float64 {
	var total float64
	for _, p := range pf.open {
		total += p.UnrealizedPnl()
	}
	return total
}

// TotalRealizedPnl sums locked-in P/L over open and closed positions.
func (pf *Portfolio) TotalRealizedPnl() float64 {
	var total float64
	for _, p := range pf.open {
		total += p.RealizedPnl()
	}
	for _, p := range pf.closed {
		total += p.RealizedPnl()
	}
	return total
}

// Snapshot journals the current valuation. No-op without a journal.
func (pf *Portfolio) Snapshot(at time.Time) error {
	if pf.journal == nil {
		return nil
	}
	return pf.journal.RecordValuation(journal.ValuationSnapshot{
		Time:           at,
		Cash:           pf.cash,
		NetLiquidation: pf.NetLiquidation(),
		RealizedPnl:    pf.TotalRealizedPnl(),
		UnrealizedPnl:  pf.TotalUnrealizedPnl(),
	})
}

// closedTradeRecord summarizes a fully closed position as one round trip.
func closedTradeRecord(pos *Position) journal.TradeRecord {
	txs := pos.Transactions()

	var entryShares float64
	for _, tx := range txs {
		if directionOf(tx.Quantity) == pos.Direction() {
			entryShares += tx.Quantity
		}
	}
	entryShares = math.Abs(entryShares)

	avgCost := pos.AvgCostPerShare()
	realized := pos.RealizedPnl()

	var ret float64
	if invested := avgCost * entryShares; invested != 0 {
		ret = realized / invested
	}

	rec := journal.TradeRecord{
		TradeID:       id.New(),
		Instrument:    pos.Contract().Symbol,
		Direction:     pos.Direction().String(),
		Quantity:      entryShares,
		AvgEntryPrice: avgCost,
		RealizedPnl:   realized,
		Return:        ret,
	}
	if len(txs) > 0 {
		rec.OpenTime = txs[0].Time
		rec.CloseTime = txs[len(txs)-1].Time
	}
	return rec
}
