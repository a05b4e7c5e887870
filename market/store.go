package market

import (
	"errors"
	"sync"
)

// QuoteStore keeps the latest quote per instrument. It is shared between the
// feed side and valuation consumers, so access is guarded; the position
// ledgers themselves stay single-threaded.
type QuoteStore struct {
	mu     sync.RWMutex
	quotes map[string]Quote
}

func NewQuoteStore() *QuoteStore {
	return &QuoteStore{quotes: make(map[string]Quote)}
}

func (s *QuoteStore) Set(q Quote) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quotes[q.Instrument] = q
}

func (s *QuoteStore) Get(instrument string) (Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.quotes[instrument]
	if !ok {
		return Quote{}, errors.New("quote not found")
	}
	return q, nil
}

// Instruments returns the instruments currently quoted.
func (s *QuoteStore) Instruments() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.quotes))
	for instr := range s.quotes {
		out = append(out, instr)
	}
	return out
}
