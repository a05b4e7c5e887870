// Package market holds the quote types fed into portfolio valuation.
package market

import "time"

// Quote is a bid/ask pair for one instrument at a point in time.
type Quote struct {
	Instrument string
	Bid        float64
	Ask        float64
	Time       time.Time
}

func (q Quote) Mid() float64 {
	return (q.Bid + q.Ask) / 2
}

func (q Quote) Spread() float64 {
	return q.Ask - q.Bid
}
