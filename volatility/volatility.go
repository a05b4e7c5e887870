// Package volatility provides realized-volatility calculations over return
// series and the seam to external volatility-forecasting engines.
package volatility

import (
	"fmt"
	"math"
)

// Frequency is the sampling frequency of a return series, expressed as the
// number of observations in a year.
type Frequency int

const (
	Daily   Frequency = 252
	Weekly  Frequency = 52
	Monthly Frequency = 12
)

func (f Frequency) String() string {
	switch f {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	default:
		return fmt.Sprintf("Frequency(%d)", int(f))
	}
}

// Forecaster predicts volatility over a horizon from a return series. The
// econometric model fitting (GARCH-family and friends) lives behind this
// interface in an external engine; this package only provides the realized
// reference implementation below.
type Forecaster interface {
	// Forecast returns predicted volatility for the given horizon, expressed
	// in the frequency of the input returns.
	Forecast(returns []float64, horizon int) (float64, error)
}

// LogReturns converts a price series into log returns. Requires strictly
// positive prices.
func LogReturns(prices []float64) ([]float64, error) {
	if len(prices) < 2 {
		return nil, fmt.Errorf("log returns: need at least 2 prices, got %d", len(prices))
	}

	out := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		if prices[i-1] <= 0 || prices[i] <= 0 {
			return nil, fmt.Errorf("log returns: prices must be positive, got %v -> %v", prices[i-1], prices[i])
		}
		out = append(out, math.Log(prices[i]/prices[i-1]))
	}
	return out, nil
}

// Realized is the sample standard deviation of a return series, expressed in
// the frequency of the input.
func Realized(returns []float64) (float64, error) {
	n := len(returns)
	if n < 2 {
		return 0, fmt.Errorf("realized volatility: need at least 2 returns, got %d", n)
	}

	var sum float64
	for _, r := range returns {
		sum += r
	}
	mean := sum / float64(n)

	var ss float64
	for _, r := range returns {
		d := r - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(n-1)), nil
}

// Annualise scales a volatility from its sampling frequency to annual terms
// with the square-root-of-time rule.
func Annualise(vol float64, freq Frequency) float64 {
	return vol * math.Sqrt(float64(freq))
}

// Rolling computes realized volatility over a sliding window of returns,
// one value per window position. The result has len(returns)-window+1
// entries.
func Rolling(returns []float64, window int) ([]float64, error) {
	if window < 2 {
		return nil, fmt.Errorf("rolling volatility: window must be at least 2, got %d", window)
	}
	if len(returns) < window {
		return nil, fmt.Errorf("rolling volatility: need %d returns, got %d", window, len(returns))
	}

	out := make([]float64, 0, len(returns)-window+1)
	for i := 0; i+window <= len(returns); i++ {
		v, err := Realized(returns[i : i+window])
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
