// Package analysis computes portfolio-level statistics over closed trades:
// the SQN-style objective score and the ticker screening built on it.
package analysis

import (
	"math"
	"time"
)

// DaysPerYearAvg is the average calendar-year length used to annualise
// trade counts.
const DaysPerYearAvg = 365.25

// Trade is one closed round trip: a position taken from entry back to flat.
type Trade struct {
	Ticker string
	Return float64 // realized pnl over invested capital
	Open   time.Time
	Close  time.Time
}

// SQN is the system quality number of a return series: mean over sample
// standard deviation. Returns 0 for fewer than two trades or a flat series.
func SQN(returns []float64) float64 {
	n := len(returns)
	if n < 2 {
		return 0
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
	std := math.Sqrt(ss / float64(n-1))
	if std == 0 {
		return 0
	}

	return mean / std
}

// AvgTradesPerYear annualises a trade count over the backtest period and
// spreads it across the number of instruments tested.
func AvgTradesPerYear(trades int, start, end time.Time, instruments int) float64 {
	if instruments <= 0 || !end.After(start) {
		return 0
	}
	years := end.Sub(start).Hours() / 24 / DaysPerYearAvg
	return float64(trades) / years / float64(instruments)
}

// ObjectiveScore is the screening objective: SQN scaled by the square root
// of the average number of trades per year. More frequent systems of equal
// quality score higher.
func ObjectiveScore(trades []Trade, start, end time.Time, instruments int) float64 {
	returns := make([]float64, len(trades))
	for i, t := range trades {
		returns[i] = t.Return
	}

	avgPerYear := AvgTradesPerYear(len(trades), start, end, instruments)
	return SQN(returns) * math.Sqrt(avgPerYear)
}
