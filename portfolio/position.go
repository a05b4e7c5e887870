package portfolio

import "fmt"

// Position is a per-contract ledger of executions. It accumulates signed
// share quantity, tracks the conservative mark price, and derives cost basis
// and realized/unrealized P/L from its transaction log.
//
// A Position is owned by a single caller and must be driven sequentially; it
// holds no locks. Once the share count returns to exactly zero the position
// closes permanently and rejects further mutation.
type Position struct {
	contract       Contract
	closed         bool
	transactions   []Transaction
	numberOfShares float64
	currentPrice   float64
	direction      Direction
}

// NewPosition returns an empty, flat position bound to contract.
func NewPosition(contract Contract) *Position {
	return &Position{contract: contract}
}

func (p *Position) Contract() Contract   { return p.contract }
func (p *Position) Quantity() float64    { return p.numberOfShares }
func (p *Position) Direction() Direction { return p.direction }
func (p *Position) IsClosed() bool       { return p.closed }

// CurrentPrice returns the last bid/ask-adjusted mark applied via UpdatePrice.
func (p *Position) CurrentPrice() float64 { return p.currentPrice }

// Transactions returns a copy of the ordered execution log.
func (p *Position) Transactions() []Transaction {
	out := make([]Transaction, len(p.transactions))
	copy(out, p.transactions)
	return out
}

// Transact applies a single execution to the position and returns its signed
// cash flow: price*quantity + commission. For a buy this is positive (cash
// paid out), for a sell negative (cash received).
//
// The very first transaction fixes the position's direction. A transaction
// that returns the share count to exactly zero closes the position for good.
// All preconditions are checked before any state changes, so a returned error
// means the position is untouched.
func (p *Position) Transact(tx Transaction) (float64, error) {
	if p.closed {
		return 0, fmt.Errorf("transact %s: %w", p.contract, ErrPositionClosed)
	}
	if tx.Contract != p.contract {
		return 0, fmt.Errorf("transact %s: got contract %s: %w", p.contract, tx.Contract, ErrContractMismatch)
	}
	if tx.Quantity == 0 {
		return 0, fmt.Errorf("transact %s: quantity must be non-zero: %w", p.contract, ErrInvalidTransaction)
	}
	if tx.Price <= 0 {
		return 0, fmt.Errorf("transact %s: price %v must be positive: %w", p.contract, tx.Price, ErrInvalidTransaction)
	}

	after := p.numberOfShares + tx.Quantity
	if p.direction != Undefined && directionOf(after) != Undefined && directionOf(after) != p.direction {
		return 0, fmt.Errorf("transact %s: quantity %v would take %v shares %s: %w",
			p.contract, tx.Quantity, p.numberOfShares, directionOf(after), ErrDirectionChange)
	}

	if p.direction == Undefined {
		p.direction = directionOf(tx.Quantity)
	}

	p.transactions = append(p.transactions, tx)
	p.numberOfShares = after

	if p.numberOfShares == 0 {
		p.closed = true
	}

	return tx.CashFlow(), nil
}

// UpdatePrice sets the mark used for valuation, adjusted for the bid-ask
// spread: a long marks at bid (what selling would realize now), a short at
// ask (what covering would cost now). A flat position keeps its last mark.
func (p *Position) UpdatePrice(bid, ask float64) error {
	if p.closed {
		return fmt.Errorf("update price %s: %w", p.contract, ErrPositionClosed)
	}

	switch {
	case p.numberOfShares > 0:
		p.currentPrice = bid
	case p.numberOfShares < 0:
		p.currentPrice = ask
	}
	return nil
}

// MarketValue is the current valuation of the held shares at the mark price.
func (p *Position) MarketValue() float64 {
	return p.numberOfShares * p.currentPrice
}

// CostBasis is the net cash spent (or received, for a short) to reach the
// current share count, commissions included, summed over every transaction
// regardless of side. For a long it is the breakeven liquidation value; for a
// short, the breakeven buyback cost as a negative number. A flat position has
// a zero cost basis.
func (p *Position) CostBasis() float64 {
	if p.numberOfShares == 0 {
		return 0
	}

	var total float64
	for _, tx := range p.transactions {
		total += tx.CashFlow()
	}
	return total
}

// AvgCostPerShare is the volume-weighted average entry cost per share over
// the transactions that built the position (the ones whose sign matches the
// direction), entry commissions included. It is a positive magnitude for both
// longs and shorts.
func (p *Position) AvgCostPerShare() float64 {
	var cost, shares float64
	for _, tx := range p.transactions {
		if directionOf(tx.Quantity) == p.direction {
			cost += tx.CashFlow()
			shares += tx.Quantity
		}
	}
	if shares == 0 {
		return 0
	}
	return cost / shares
}

// UnrealizedPnl is the paper profit on the still-open portion, with all
// historical commissions embedded in the cost basis.
func (p *Position) UnrealizedPnl() float64 {
	return p.MarketValue() - p.CostBasis()
}

// RealizedPnl is the profit locked in by the closing transactions (the ones
// whose sign opposes the direction), measured against the average entry cost
// and net of closing commissions.
func (p *Position) RealizedPnl() float64 {
	avgCost := p.AvgCostPerShare()

	var pnl float64
	for _, tx := range p.transactions {
		if directionOf(tx.Quantity) != p.direction {
			// Flip the sign so closed quantity counts shares removed from
			// the position, for both long sells and short covers.
			closedQty := -tx.Quantity
			pnl += (tx.Price-avgCost)*closedQty - tx.Commission
		}
	}
	return pnl
}
