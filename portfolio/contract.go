package portfolio

import (
	"fmt"
	"time"
)

// Contract identifies a tradable instrument. It is a plain comparable value
// so it can be used directly as a map key.
type Contract struct {
	Symbol       string
	SecurityType string // e.g. "STK", "FUT", "CASH"
	Exchange     string
}

func (c Contract) String() string {
	if c.SecurityType == "" && c.Exchange == "" {
		return c.Symbol
	}
	return fmt.Sprintf("%s/%s@%s", c.Symbol, c.SecurityType, c.Exchange)
}

// Transaction is a single execution against a contract. Quantity is signed:
// positive buys (or covers), negative sells (or shorts). Commission is the
// cost of the execution as reported by the broker, added verbatim to the
// transaction's cash flow.
type Transaction struct {
	ID         string
	Contract   Contract
	Quantity   float64
	Price      float64
	Commission float64
	Time       time.Time
}

// CashFlow returns the signed cash impact of the transaction, commission
// included. Positive for a buy (cash paid out), negative for a sell (cash
// received).
func (t Transaction) CashFlow() float64 {
	return t.Price*t.Quantity + t.Commission
}
