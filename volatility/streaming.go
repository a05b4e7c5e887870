package volatility

import (
	"fmt"
	"math"
)

// Stream is a streaming realized-volatility calculator over a rolling window
// of log returns. Feed it raw prices; it maintains the window internally.
type Stream struct {
	window    int
	freq      Frequency
	lastPrice float64
	primed    bool
	returns   []float64
}

// NewStream creates a streaming calculator with the given rolling window of
// returns, annualised from freq.
func NewStream(window int, freq Frequency) *Stream {
	return &Stream{
		window:  window,
		freq:    freq,
		returns: make([]float64, 0, window),
	}
}

func (s *Stream) Name() string {
	return fmt.Sprintf("RealizedVol(%d,%s)", s.window, s.freq)
}

// Warmup returns how many price updates are needed before Ready.
func (s *Stream) Warmup() int {
	return s.window + 1
}

func (s *Stream) Reset() {
	s.lastPrice = 0
	s.primed = false
	s.returns = s.returns[:0]
}

// Update consumes the next price. Non-positive prices are ignored.
func (s *Stream) Update(price float64) {
	if price <= 0 {
		return
	}
	if !s.primed {
		s.lastPrice = price
		s.primed = true
		return
	}

	s.returns = append(s.returns, math.Log(price/s.lastPrice))
	s.lastPrice = price

	// Keep only the last 'window' returns.
	if len(s.returns) > s.window {
		s.returns = s.returns[1:]
	}
}

func (s *Stream) Ready() bool {
	return len(s.returns) >= s.window && s.window >= 2
}

// Value returns the annualised realized volatility of the window, or 0 until
// Ready.
func (s *Stream) Value() float64 {
	if !s.Ready() {
		return 0
	}
	v, err := Realized(s.returns)
	if err != nil {
		return 0
	}
	return Annualise(v, s.freq)
}
