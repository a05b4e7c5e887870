// Package journal persists portfolio activity: individual fills, closed
// round-trip trades, and periodic valuation snapshots. The position ledger
// itself imposes no persistence format; the journal is the reporting boundary
// the rest of the toolkit (screening, CLI queries) reads from.
package journal

import "time"

// FillRecord is a single execution as applied to a position.
type FillRecord struct {
	FillID     string
	Instrument string
	Quantity   float64 // signed: + buy/cover, - sell/short
	Price      float64
	Commission float64
	CashFlow   float64 // price*quantity + commission
	Time       time.Time
}

// TradeRecord is a fully closed position: entry to flat.
type TradeRecord struct {
	TradeID       string
	Instrument    string
	Direction     string  // "long" or "short"
	Quantity      float64 // total shares built, positive magnitude
	AvgEntryPrice float64
	RealizedPnl   float64
	Return        float64 // realized pnl over invested capital
	OpenTime      time.Time
	CloseTime     time.Time
}

// ValuationSnapshot is a point-in-time portfolio valuation.
type ValuationSnapshot struct {
	Time           time.Time
	Cash           float64
	NetLiquidation float64
	RealizedPnl    float64
	UnrealizedPnl  float64
}

type Journal interface {
	RecordFill(FillRecord) error
	RecordTrade(TradeRecord) error
	RecordValuation(ValuationSnapshot) error
	Close() error
}
